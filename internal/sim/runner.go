package sim

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/laxsim/internal/config"
	"github.com/san-kum/laxsim/internal/lax"
)

// Runner drives a Stepper: for each step it emits the current field to the
// sink, notifies observers, then advances.
type Runner struct {
	stepper   *lax.Stepper
	sink      Sink
	metrics   []Metric
	observers []Observer
	logger    *zap.Logger
}

type Option func(*Runner)

func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func New(stepper *lax.Stepper, sink Sink, opts ...Option) *Runner {
	r := &Runner{
		stepper:   stepper,
		sink:      sink,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prepare validates cfg and builds a stepper holding the initial profile.
func Prepare(cfg *config.Config) (*lax.Stepper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return lax.NewStepper(cfg.InitialGrid(), cfg.Courant)
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run emits exactly cfg.Steps frames, for t = 0..Steps-1, advancing after
// each one. The state after the last advance is never emitted. On error the
// partial Result is returned alongside it; Final is only set when every frame
// was written. The sink is not closed.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Steps < 0 {
		return nil, lax.ErrNegativeSteps
	}

	result := &Result{Metrics: make(map[string]float64)}
	for _, m := range r.metrics {
		m.Reset()
	}

	r.logger.Debug("run started",
		zap.Int("grid_size", r.stepper.Size()),
		zap.Int("steps", cfg.Steps),
		zap.Float64("courant", r.stepper.Courant()),
		zap.Bool("check_finite", cfg.CheckFinite))

	start := time.Now()
	err := r.loop(ctx, cfg, result)
	result.Elapsed = time.Since(start)

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	if err != nil {
		r.logger.Warn("run stopped", zap.Int("frames", result.Frames), zap.Error(err))
		return result, err
	}

	r.logger.Debug("run finished",
		zap.Int("frames", result.Frames),
		zap.Duration("elapsed", result.Elapsed))
	return result, nil
}

func (r *Runner) loop(ctx context.Context, cfg Config, result *Result) error {
	for t := 0; t < cfg.Steps; t++ {
		select {
		case <-ctx.Done():
			return &lax.StepError{Step: t, Wrapped: ctx.Err()}
		default:
		}

		cur := r.stepper.Current()
		if cfg.CheckFinite && !cur.IsFinite() {
			return &lax.StepError{Step: t, Wrapped: lax.ErrNonFinite}
		}
		if err := r.sink.WriteFrame(t, cur); err != nil {
			return &lax.StepError{Step: t, Wrapped: fmt.Errorf("write frame: %w", err)}
		}
		result.Frames++

		for _, m := range r.metrics {
			m.Observe(t, cur)
		}
		for _, obs := range r.observers {
			obs.OnFrame(t, cur)
		}
		if t == cfg.Steps-1 {
			result.Final = cur.Clone()
		}

		r.stepper.Advance()
	}
	return nil
}
