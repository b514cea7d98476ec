package aoc

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Command returns the root command of a solver binary for year. src is
// the solver's source and slvr a pointer to the solver struct, as for Run.
func Command(year int, src []byte, slvr any) *cobra.Command {
	var (
		opts       Options
		configPath string
	)
	cmd := &cobra.Command{
		Use:          fmt.Sprintf("aoc%d", year),
		Short:        fmt.Sprintf("Advent of Code %d solutions", year),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts.Debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			opts.Config = cfg
			opts.Log = logger.Sugar()
			opts.Out = cmd.OutOrStdout()
			return Run(year, src, slvr, opts)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.Day, "day", "d", -1, "day to run; -1 runs every day")
	f.StringVarP(&opts.Part, "part", "p", "", "part to run")
	f.BoolVar(&opts.OnlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.SkipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.Debug, "debug", false, "debug mode")
	f.StringVarP(&opts.Input, "input", "i", "", "input file; defaults to the cached puzzle input")
	f.StringVar(&configPath, "config", DefaultConfigFile, "config file")
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
