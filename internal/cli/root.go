package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sinsoku/phony/internal/version"
	"github.com/sinsoku/phony/pkg/config"
	"github.com/sinsoku/phony/pkg/definitions"
	"github.com/sinsoku/phony/pkg/logging"
	"github.com/sinsoku/phony/pkg/metrics"
	"github.com/sinsoku/phony/pkg/output"
	"github.com/sinsoku/phony/pkg/phony"
	"github.com/sinsoku/phony/pkg/registry"
)

// globalOptions are the persistent flags of the root command
type globalOptions struct {
	verbosity  int
	configPath string
	country    string
	output     string
	noColor    bool
}

// session is what a command works with once flags and config are resolved
type session struct {
	cfg     *config.Config
	service *phony.Service
	metrics *metrics.Metrics
	enc     output.Encoder
	out     io.Writer
	encOpts output.Options
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "phony",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	flags.StringVarP(&opts.country, "country", "c", "", MsgFlagCountry)
	flags.StringVarP(&opts.output, "output", "o", "", MsgFlagOutput)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return output.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "numbers",
		Title: "NUMBERS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSplitCmd(opts))
	rootCmd.AddCommand(newFormatCmd(opts))
	rootCmd.AddCommand(newNormalizeCmd(opts))
	rootCmd.AddCommand(newPlausibleCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newBatchCmd(opts))
	rootCmd.AddCommand(newCountriesCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// open loads the configuration, the definitions it names and the output
// encoder. overrides carry command flags keyed by config path; only flags
// the user set should be passed.
func (o *globalOptions) open(cmd *cobra.Command, overrides map[string]interface{}) (*session, error) {
	logger := logging.GetLogger("cli")

	if overrides == nil {
		overrides = map[string]interface{}{}
	}
	if cmd.Flags().Changed("country") {
		overrides["country"] = o.country
	}
	if cmd.Flags().Changed("output") {
		overrides["output"] = o.output
	}

	cfg, err := config.Load(config.Options{Path: o.configPath, Overrides: overrides})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	countries := registry.NewCountries()
	if len(cfg.Definitions.Builtin) > 0 {
		if _, err := definitions.LoadBuiltin(countries, cfg.Definitions.Builtin...); err != nil {
			return nil, fmt.Errorf(MsgErrLoadDefinitions, err)
		}
	}
	for _, path := range cfg.Definitions.Paths {
		if _, err := definitions.LoadFile(countries, path); err != nil {
			return nil, fmt.Errorf(MsgErrLoadDefinitions, err)
		}
	}
	logger.Debug().
		Int("countries", countries.Count()).
		Int("reserved", len(countries.Reserved())).
		Msg("definitions loaded")

	m := metrics.New()
	out := cmd.OutOrStdout()
	encOpts := output.Options{NoColor: o.noColor}
	enc, err := output.New(cfg.Output, out, encOpts)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("command", cmd.Name()).Str("output", cfg.Output).Str("country", cfg.Country).Msg("session ready")
	return &session{
		cfg:     cfg,
		service: phony.New(countries, phony.WithMetrics(m)),
		metrics: m,
		enc:     enc,
		out:     out,
		encOpts: encOpts,
	}, nil
}
