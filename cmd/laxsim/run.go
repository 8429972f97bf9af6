package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/laxsim/internal/config"
	"github.com/san-kum/laxsim/internal/frame"
	"github.com/san-kum/laxsim/internal/metrics"
	"github.com/san-kum/laxsim/internal/sim"
	"github.com/san-kum/laxsim/internal/storage"
	"github.com/san-kum/laxsim/internal/viz"
)

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := cfg.ApplyFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.GridSize = gridSize
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("courant") {
		cfg.Courant = courant
	}
	if flags.Changed("amplitude") {
		cfg.Profile.Amplitude = amplitude
	}
	if flags.Changed("center") {
		cfg.Profile.Center = center
	}
	if flags.Changed("width") {
		cfg.Profile.Width = width
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("check-finite") {
		cfg.CheckFinite = checkFinite
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st, err := sim.Prepare(cfg)
	if err != nil {
		return err
	}

	sink, err := frame.Create(cfg.Output)
	if err != nil {
		return err
	}

	r := sim.New(st, sink, sim.WithLogger(logger))
	for _, m := range metrics.Defaults() {
		r.AddMetric(m)
	}

	logger.Info("running lax simulation",
		zap.Int("grid_size", cfg.GridSize),
		zap.Int("steps", cfg.Steps),
		zap.Float64("courant", cfg.Courant),
		zap.String("output", cfg.Output))

	result, runErr := r.Run(cmd.Context(), sim.Config{Steps: cfg.Steps, CheckFinite: cfg.CheckFinite})
	if err := sink.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close output %q: %w", cfg.Output, err)
	}
	if runErr != nil {
		return runErr
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("frames: %d -> %s\n", result.Frames, cfg.Output)
	printMetrics(result.Metrics)

	if record {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(cfg, result)
		if err != nil {
			return err
		}
		logger.Debug("run recorded", zap.String("id", runID), zap.String("dir", dataDir))
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, m[name])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st, err := sim.Prepare(cfg)
	if err != nil {
		return err
	}

	total := cfg.Steps
	if liveSteps > 0 {
		total = liveSteps
	}

	// without -o the viewer is display only and may be reset
	var sink sim.Sink
	if cmd.Flags().Changed("output") {
		s, err := frame.Create(cfg.Output)
		if err != nil {
			return err
		}
		sink = s
	}

	title := fmt.Sprintf("lax  n=%d  k=%g", cfg.GridSize, cfg.Courant)
	final, err := tea.NewProgram(viz.NewModel(st, sink, total, title)).Run()
	if sink != nil {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}
	if m, ok := final.(viz.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tN\tSTEPS\tK\tAMPLITUDE\tCENTER\tWIDTH")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%g\t%g\t%g\t%g\n",
			name, p.GridSize, p.Steps, p.Courant,
			p.Profile.Amplitude, p.Profile.Center, p.Profile.Width)
	}
	return w.Flush()
}

func benchStepper(cmd *cobra.Command, args []string) error {
	sizes := []int{101, 1001, 10001}
	stepCounts := []int{1000, 10000}

	fmt.Println("benchmarking lax stepper")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tSTEPS\tTIME\tCELLS/SEC")

	for _, n := range sizes {
		for _, s := range stepCounts {
			cfg := config.DefaultConfig()
			cfg.GridSize = n
			cfg.Steps = s
			cfg.Profile.Center = float64(n / 2)

			st, err := sim.Prepare(cfg)
			if err != nil {
				return err
			}
			start := time.Now()
			if _, err := sim.New(st, frame.Discard).Run(context.Background(), sim.Config{Steps: s}); err != nil {
				return err
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%d\t%v\t%.3g\n", n, s, elapsed, float64(n*s)/elapsed.Seconds())
		}
	}
	return w.Flush()
}

func sweepCourant(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	courants := make([]float64, len(args))
	for i, a := range args {
		k, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("courant %q: %w", a, err)
		}
		courants[i] = k
	}

	// frames are only written when an output was asked for; one file per k
	newSink := func(float64) (sim.Sink, error) { return frame.Discard, nil }
	if cmd.Flags().Changed("output") {
		newSink = func(k float64) (sim.Sink, error) {
			return frame.Create(fmt.Sprintf("%s.k%g", cfg.Output, k))
		}
	}

	logger.Info("sweeping courant values", zap.Float64s("courant", courants), zap.Int("steps", cfg.Steps))
	results, err := sim.Sweep(cmd.Context(), cfg, courants, newSink, metrics.Defaults)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "K\tFRAMES\tMAX_ABS\tMASS_DRIFT\tPEAK\tSTATUS")
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = res.Err.Error()
		}
		var m map[string]float64
		frames := 0
		if res.Result != nil {
			m, frames = res.Result.Metrics, res.Result.Frames
		}
		fmt.Fprintf(w, "%g\t%d\t%.6g\t%.3g\t%g\t%s\n",
			res.Courant, frames, m["max_abs"], m["mass_drift"], m["peak_index"], status)
	}
	return w.Flush()
}
