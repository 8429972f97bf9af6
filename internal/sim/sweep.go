package sim

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/laxsim/internal/config"
)

// SweepResult pairs a Courant value with the outcome of its run.
type SweepResult struct {
	Courant float64
	Result  *Result
	Err     error
}

// Sweep runs one independent simulation per Courant value, concurrently,
// each with its own stepper and sink. newSink and newMetrics are called
// once per run. Run errors are reported per run in SweepResult.Err; a setup
// failure (invalid config or sink creation) cancels the remaining runs.
func Sweep(ctx context.Context, base *config.Config, courants []float64,
	newSink func(k float64) (Sink, error), newMetrics func() []Metric) ([]SweepResult, error) {

	results := make([]SweepResult, len(courants))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, k := range courants {
		g.Go(func() error {
			cfg := *base
			cfg.Courant = k
			results[i].Courant = k

			st, err := Prepare(&cfg)
			if err != nil {
				return err
			}
			sink, err := newSink(k)
			if err != nil {
				return err
			}

			r := New(st, sink)
			if newMetrics != nil {
				for _, m := range newMetrics() {
					r.AddMetric(m)
				}
			}
			res, runErr := r.Run(ctx, Config{Steps: cfg.Steps, CheckFinite: cfg.CheckFinite})
			if err := sink.Close(); err != nil && runErr == nil {
				runErr = err
			}
			results[i].Result, results[i].Err = res, runErr
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
