package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sinsoku/phony/pkg/format"
	"github.com/sinsoku/phony/pkg/logging"
	"github.com/sinsoku/phony/pkg/output"
	"github.com/sinsoku/phony/pkg/phony"
)

func newBatchCmd(opts *globalOptions) *cobra.Command {
	var (
		workers int
		stats   bool
		ff      formatFlags
	)

	cmd := &cobra.Command{
		Use:     "batch [FILE]",
		Short:   MsgBatchShort,
		Long:    MsgBatchLong,
		Example: MsgBatchExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := ff.overrides(cmd)
			if cmd.Flags().Changed("workers") {
				overrides["workers"] = workers
			}
			s, err := opts.open(cmd, overrides)
			if err != nil {
				return err
			}
			fopts, err := s.cfg.FormatOptions()
			if err != nil {
				return err
			}

			inputs, err := readNumbers(cmd, args)
			if err != nil {
				return fmt.Errorf(MsgErrReadInput, err)
			}

			logger := logging.GetLogger("cli")
			done := logging.LogOperationStart(logger, "batch")
			results, err := s.service.SplitBatch(cmd.Context(), inputs, s.cfg.Country, s.cfg.Workers)
			done()
			if err != nil {
				return err
			}

			batch := output.NewBatch(results, func(res phony.Result) string {
				return format.Format(res.Rule(), res.Decomposition, fopts)
			})
			if stats {
				if batch.Stats, err = s.metrics.Snapshot(); err != nil {
					return err
				}
			}
			if err := s.enc.Encode(batch); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf(MsgErrFailures, failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, MsgFlagWorkers)
	cmd.Flags().BoolVar(&stats, "stats", false, MsgFlagStats)
	ff.register(cmd)
	return cmd
}

// readNumbers reads one number per line from the file named in args, or
// from the command input when there is none or it is "-"
func readNumbers(cmd *cobra.Command, args []string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, scanner.Err()
}
