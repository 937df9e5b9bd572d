package main

import (
	"fmt"
	"os"

	"github.com/lukaszgryglicki/lenstrace/internal/lenstrace"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug   bool
	spotPNG bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "lenstrace",
	Short:         "Trace ray bundles through refracting surfaces and measure the spot size",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lenstrace.Debug = debug || os.Getenv("DEBUG") != ""
		lenstrace.PNG = spotPNG || os.Getenv("PNG") != ""

		config := zap.NewProductionConfig()
		if lenstrace.Debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		lenstrace.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace [config]",
	Short: "Trace the configured bundle and print the RMS spot radius",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := lenstrace.Run(configArg(args))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "output plane z=%.6g rms=%.6g (%s)\n", res.OutputZ, res.RMS, res.Report)
		return nil
	},
}

var focusCmd = &cobra.Command{
	Use:   "focus [config]",
	Short: "Estimate the paraxial focus with a probe ray",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		z, err := lenstrace.Focus(configArg(args))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "paraxial focus z=%.6g\n", z)
		return nil
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [config]",
	Short: "Minimise the RMS spot radius over surface curvatures",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := lenstrace.Optimize(configArg(args))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "curvatures=%v rms=%.6g iterations=%d\n", res.Curvatures, res.RMS, res.Iterations)
		return nil
	},
}

func configArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return lenstrace.DefaultConfig
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "v", false, "verbose debug logging")
	rootCmd.PersistentFlags().BoolVar(&spotPNG, "png", false, "save a spot diagram PNG (spot.png unless the config names one)")
	rootCmd.AddCommand(traceCmd, focusCmd, optimizeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
