package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sinsoku/phony/pkg/format"
	"github.com/sinsoku/phony/pkg/output"
)

// eachNumber runs fn for every argument and encodes what it returns. A
// nil value means fn wrote its own output. Failures are encoded in place
// and reported together once every number was handled.
func (s *session) eachNumber(args []string, fn func(raw string) (any, error)) error {
	failed := 0
	for _, raw := range args {
		v, err := fn(raw)
		if err != nil {
			failed++
			v = output.NewFailure(raw, err)
		}
		if v == nil {
			continue
		}
		if err := s.enc.Encode(v); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf(MsgErrFailures, failed, len(args))
	}
	return nil
}

// formatFlags are shared by the commands that render numbers
type formatFlags struct {
	style       string
	spaces      string
	localSpaces string
	parentheses bool
}

func (f *formatFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.style, "style", "s", "", MsgFlagStyle)
	cmd.Flags().StringVar(&f.spaces, "spaces", "", MsgFlagSpaces)
	cmd.Flags().StringVar(&f.localSpaces, "local-spaces", "", MsgFlagLocalSpaces)
	cmd.Flags().BoolVar(&f.parentheses, "parentheses", false, MsgFlagParentheses)

	_ = cmd.RegisterFlagCompletionFunc("style", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(format.Styles))
		for i, s := range format.Styles {
			names[i] = string(s)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// overrides returns the flags the user set, keyed by config path
func (f *formatFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	o := map[string]interface{}{}
	if cmd.Flags().Changed("style") {
		o["format.style"] = f.style
	}
	if cmd.Flags().Changed("spaces") {
		o["format.spaces"] = f.spaces
	}
	if cmd.Flags().Changed("local-spaces") {
		o["format.local_spaces"] = f.localSpaces
	}
	if cmd.Flags().Changed("parentheses") {
		o["format.parentheses"] = f.parentheses
	}
	return o
}

func newSplitCmd(opts *globalOptions) *cobra.Command {
	var (
		withFormat bool
		ff         formatFlags
	)

	cmd := &cobra.Command{
		Use:     "split NUMBER...",
		Short:   MsgSplitShort,
		Example: MsgSplitExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, ff.overrides(cmd))
			if err != nil {
				return err
			}
			fopts, err := s.cfg.FormatOptions()
			if err != nil {
				return err
			}

			return s.eachNumber(args, func(raw string) (any, error) {
				res, err := s.service.Split(raw, s.cfg.Country)
				if err != nil {
					return nil, err
				}
				formatted := ""
				if withFormat {
					formatted = format.Format(res.Rule(), res.Decomposition, fopts)
				}
				return output.NewNumber(res, formatted), nil
			})
		},
	}
	cmd.Flags().BoolVarP(&withFormat, "format", "f", false, MsgFlagFormat)
	ff.register(cmd)
	return cmd
}

func newFormatCmd(opts *globalOptions) *cobra.Command {
	var ff formatFlags

	cmd := &cobra.Command{
		Use:     "format NUMBER...",
		Short:   MsgFormatShort,
		Example: MsgFormatExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, ff.overrides(cmd))
			if err != nil {
				return err
			}
			fopts, err := s.cfg.FormatOptions()
			if err != nil {
				return err
			}

			return s.eachNumber(args, func(raw string) (any, error) {
				formatted, err := s.service.Format(raw, s.cfg.Country, fopts)
				if err != nil {
					return nil, err
				}
				return output.Value{Input: raw, Kind: "formatted", Value: formatted}, nil
			})
		},
	}
	ff.register(cmd)
	return cmd
}

func newNormalizeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize NUMBER...",
		Short:   MsgNormalizeShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			return s.eachNumber(args, func(raw string) (any, error) {
				normalized, err := s.service.Normalize(raw, s.cfg.Country)
				if err != nil {
					return nil, err
				}
				return output.Value{Input: raw, Kind: "normalized", Value: normalized}, nil
			})
		},
	}
}

func newPlausibleCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "plausible NUMBER...",
		Short:   MsgPlausibleShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			return s.eachNumber(args, func(raw string) (any, error) {
				ok := s.service.Plausible(raw, s.cfg.Country)
				return output.Value{Input: raw, Kind: "plausible", Value: strconv.FormatBool(ok)}, nil
			})
		},
	}
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check NUMBER...",
		Short:   MsgCheckShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			return s.eachNumber(args, func(raw string) (any, error) {
				check, err := s.service.CrossCheck(raw, s.cfg.Country)
				if err != nil {
					return nil, err
				}
				return output.Check(check), nil
			})
		},
	}
}

func newExplainCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "explain NUMBER...",
		Short:   MsgExplainShort,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			return s.eachNumber(args, func(raw string) (any, error) {
				res, err := s.service.Split(raw, s.cfg.Country)
				if err != nil {
					return nil, err
				}
				if s.cfg.Output != "text" {
					return output.NewNumber(res, ""), nil
				}
				return nil, output.Explain(s.out, res, s.encOpts)
			})
		},
	}
}
