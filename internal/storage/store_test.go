package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/laxsim/internal/config"
	"github.com/san-kum/laxsim/internal/lax"
	"github.com/san-kum/laxsim/internal/sim"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	cfg := config.DefaultConfig()
	cfg.Steps = 2
	result := &sim.Result{
		Frames:  2,
		Final:   lax.Grid{0.1, 1.0 / 3, 7},
		Metrics: map[string]float64{"max_abs": 7},
		Elapsed: 1500 * time.Microsecond,
	}

	runID, err := st.Save(cfg, result)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, meta.ID)
	assert.Equal(t, *cfg, meta.Config)
	assert.Equal(t, 2, meta.Frames)
	assert.Equal(t, 1.5, meta.ElapsedMS)
	assert.Equal(t, 7.0, meta.Metrics["max_abs"])

	final, err := st.LoadFinal(runID)
	require.NoError(t, err)
	assert.Equal(t, result.Final, final, "final frame must round-trip exactly")
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, st.Init())
	first, err := st.Save(config.DefaultConfig(), &sim.Result{})
	require.NoError(t, err)
	second, err := st.Save(config.DefaultConfig(), &sim.Result{Final: lax.Grid{1, 2, 3}})
	require.NoError(t, err)

	// stray files and broken runs are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "broken"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first, runs[0].ID)
	assert.Equal(t, second, runs[1].ID)
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Init())

	noFrames, err := st.Save(config.DefaultConfig(), &sim.Result{})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, noFrames, "metadata.json"))
	assert.NoFileExists(t, filepath.Join(dir, noFrames, "final.csv"))

	withFrames, err := st.Save(config.DefaultConfig(), &sim.Result{Frames: 1, Final: lax.Grid{1, 2, 3}})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, withFrames, "final.csv"))
}

func TestStoreNonFiniteMetrics(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Init())

	result := &sim.Result{
		Frames: 3,
		Final:  lax.Grid{math.NaN(), math.Inf(1), math.Inf(-1)},
		Metrics: map[string]float64{
			"max_abs":    math.Inf(1),
			"mass_drift": math.NaN(),
			"low":        math.Inf(-1),
			"peak_index": 2,
		},
	}

	runID, err := st.Save(config.DefaultConfig(), result)
	require.NoError(t, err, "an unstable run must still be recorded")

	runs, err := st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)

	m := runs[0].Metrics
	assert.True(t, math.IsInf(m["max_abs"], 1))
	assert.True(t, math.IsNaN(m["mass_drift"]))
	assert.True(t, math.IsInf(m["low"], -1))
	assert.Equal(t, 2.0, m["peak_index"])

	final, err := st.LoadFinal(runID)
	require.NoError(t, err)
	require.Len(t, final, 3)
	assert.True(t, math.IsNaN(final[0]))
	assert.True(t, math.IsInf(final[1], 1))
	assert.True(t, math.IsInf(final[2], -1))
}

func TestStoreSaveFailureLeavesNoRun(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	require.NoError(t, st.Init())

	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, nil, 0644))

	_, err := New(blocked).Save(config.DefaultConfig(), &sim.Result{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the blocking file may remain")
}

func TestMetricsJSON(t *testing.T) {
	data, err := Metrics{"a": math.NaN(), "b": 1.5}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"NaN","b":1.5}`, string(data))

	var m Metrics
	assert.Error(t, m.UnmarshalJSON([]byte(`{"a":"lots"}`)))
}
