package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/laxsim/internal/analysis"
	"github.com/san-kum/laxsim/internal/config"
	"github.com/san-kum/laxsim/internal/frame"
	"github.com/san-kum/laxsim/internal/lax"
	"github.com/san-kum/laxsim/internal/storage"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tN\tFRAMES\tK\tMAX_ABS\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%g\t%.6g\t%.1fms\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Config.GridSize,
			run.Frames,
			run.Config.Courant,
			run.Metrics["max_abs"],
			run.ElapsedMS,
		)
	}

	return w.Flush()
}

func readFrames(args []string) (string, []frame.Frame, error) {
	path := config.DefaultOutput
	if len(args) > 0 {
		path = args[0]
	}
	frames, err := frame.ReadFile(path)
	if err != nil {
		return path, nil, err
	}
	if len(frames) == 0 {
		return path, nil, fmt.Errorf("no frames in %s", path)
	}
	logger.Debug("frames loaded", zap.String("path", path), zap.Int("frames", len(frames)))
	return path, frames, nil
}

// frameAt returns the frame at index i, negative values counting from the end.
func frameAt(frames []frame.Frame, i int) (lax.Grid, int, error) {
	if i < 0 {
		i += len(frames)
	}
	if i < 0 || i >= len(frames) {
		return nil, 0, fmt.Errorf("frame %d out of range (%d frames)", frameIndex, len(frames))
	}
	return frames[i].Values, i, nil
}

func plotFrame(cmd *cobra.Command, args []string) error {
	path, frames, err := readFrames(args)
	if err != nil {
		return err
	}
	g, idx, err := frameAt(frames, frameIndex)
	if err != nil {
		return err
	}
	if !g.IsFinite() {
		return fmt.Errorf("frame %d: %w", idx, lax.ErrNonFinite)
	}

	fmt.Printf("file: %s\n", path)
	fmt.Printf("frames: %d\n", len(frames))
	fmt.Printf("points: %d\n\n", len(g))

	graph := asciigraph.Plot(g,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("u(j) at frame %d", idx)),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("max |u|: %.6f at j=%d\n", g.MaxAbs(), g.ArgMax())
	fmt.Printf("sum u:   %.6f\n", g.Sum())
	return nil
}

func analyzeFrames(cmd *cobra.Command, args []string) error {
	path, frames, err := readFrames(args)
	if err != nil {
		return err
	}
	late, idx, err := frameAt(frames, frameIndex)
	if err != nil {
		return err
	}
	if !frames[0].Values.IsFinite() || !late.IsFinite() {
		return fmt.Errorf("cannot analyze %s: %w", path, lax.ErrNonFinite)
	}

	early := analysis.PowerSpectrum(frames[0].Values)
	ps := analysis.PowerSpectrum(late)

	fmt.Printf("spectral analysis: %s\n", path)
	fmt.Printf("frames: 0 vs %d\n\n", idx)

	if len(ps) > 1 {
		graph := asciigraph.PlotMany([][]float64{early[1:], ps[1:]},
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Default, asciigraph.Green),
			asciigraph.Caption("power spectrum |U(m)|, m >= 1 (frame 0, frame "+fmt.Sprint(idx)+")"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	fmt.Printf("dominant mode (frame 0):  %d\n", analysis.DominantMode(early))
	fmt.Printf("dominant mode (frame %d): %d\n", idx, analysis.DominantMode(ps))
	if e0 := analysis.Energy(early); e0 > 0 {
		fmt.Printf("spectral energy ratio:    %.6g\n", analysis.Energy(ps)/e0)
	}
	return nil
}
