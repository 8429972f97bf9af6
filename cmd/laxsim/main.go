package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	dataDir string
	verbose bool
	logger  = zap.NewNop()

	// run parameters
	gridSize    int
	steps       int
	courant     float64
	amplitude   float64
	center      float64
	width       float64
	output      string
	checkFinite bool
	configFile  string
	preset      string
	record      bool

	// inspection
	frameIndex int

	// live view
	liveSteps int
)

// main registers the commands and exits with status 1 when the command fails.
// Without a subcommand it runs the reference configuration.
func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "laxsim",
		Short:        "periodic 1D advection with the Lax scheme",
		SilenceUsage: true,
		RunE:         runSimulation,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".laxsim", "data directory for recorded runs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addRunFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and write frames",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [frames_file]",
		Short: "plot one frame of an output file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotFrame,
	}
	plotCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame to plot (negative counts from the end)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [frames_file]",
		Short: "spectral analysis of an output file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeFrames,
	}
	analyzeCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame to compare with the first (negative counts from the end)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&liveSteps, "live-steps", 0, "frames to animate (default: --steps)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the stepper",
		Args:  cobra.NoArgs,
		RunE:  benchStepper,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [courant...]",
		Short: "compare runs over several Courant values",
		Args:  cobra.MinimumNArgs(1),
		RunE:  sweepCourant,
	}
	addRunFlags(sweepCmd)

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, liveCmd, presetsCmd, benchCmd, sweepCmd)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&gridSize, "n", 101, "grid size")
	f.IntVar(&steps, "steps", 10000, "number of frames to emit")
	f.Float64VarP(&courant, "courant", "k", 0.49, "Courant parameter")
	f.Float64Var(&amplitude, "amplitude", 10, "initial profile amplitude")
	f.Float64Var(&center, "center", 50, "initial profile center")
	f.Float64Var(&width, "width", 10, "initial profile width")
	f.StringVarP(&output, "output", "o", "deriva_lax.txt", "output file")
	f.BoolVar(&checkFinite, "check-finite", false, "stop when the field contains NaN or Inf")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.BoolVar(&record, "record", false, "record the run in the data directory")
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
