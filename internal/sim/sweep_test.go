package sim_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/laxsim/internal/frame"
	"github.com/san-kum/laxsim/internal/lax"
	"github.com/san-kum/laxsim/internal/metrics"
	"github.com/san-kum/laxsim/internal/sim"
)

func TestSweep(t *testing.T) {
	cfg := smallConfig()
	cfg.Steps = 50
	cfg.CheckFinite = true
	courants := []float64{0.1, 0.49, 1e10}

	results, err := sim.Sweep(context.Background(), cfg, courants,
		func(float64) (sim.Sink, error) { return frame.Discard, nil },
		metrics.Defaults)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, courants[i], res.Courant)
		require.NotNil(t, res.Result)
	}
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 50, results[1].Result.Frames)
	assert.ErrorIs(t, results[2].Err, lax.ErrNonFinite)
}

func TestSweep_SinkFailure(t *testing.T) {
	boom := errors.New("no space")
	_, err := sim.Sweep(context.Background(), smallConfig(), []float64{0.2, 0.3},
		func(float64) (sim.Sink, error) { return nil, boom }, nil)
	assert.ErrorIs(t, err, boom)
}
