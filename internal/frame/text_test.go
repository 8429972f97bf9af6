package frame

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/laxsim/internal/lax"
)

func TestTextSink_Encoding(t *testing.T) {
	var sb strings.Builder
	s := NewTextSink(&sb)

	require.NoError(t, s.WriteFrame(0, lax.Grid{0, 1.5, -2}))
	require.NoError(t, s.WriteFrame(1, lax.Grid{10, 0.0000004, 3.25}))
	require.NoError(t, s.Close())

	want := "0 0.000000\n1 1.500000\n2 -2.000000\n\n\n" +
		"0 10.000000\n1 0.000000\n2 3.250000\n\n\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("encoding mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate_TruncatesAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that must go\n"), 0644))

	s, err := Create(path)
	require.NoError(t, err)
	g := lax.Grid{1, 2, 3, 4}
	for step := 0; step < 3; step++ {
		require.NoError(t, s.WriteFrame(step, g))
	}
	require.NoError(t, s.Close())

	frames, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for i, f := range frames {
		assert.Equal(t, i, f.Step)
		assert.Equal(t, g, f.Values)
	}
}

func TestCreate_Unwritable(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "dir", "out.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "create output")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextSink_WriteErrorIsSticky(t *testing.T) {
	s := NewTextSink(failingWriter{})
	big := lax.NewGrid(20000)

	err := s.WriteFrame(0, big)
	require.Error(t, err)
	assert.Equal(t, err, s.WriteFrame(1, lax.Grid{1, 2, 3}))
	assert.Error(t, s.Close())
}

func TestFrameRecords(t *testing.T) {
	f := Frame{Step: 2, Values: lax.Grid{5, 6}}
	want := []Record{{Index: 0, Value: 5}, {Index: 1, Value: 6}}
	if diff := cmp.Diff(want, f.Records()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestMemorySink(t *testing.T) {
	m := &MemorySink{}
	_, ok := m.Last()
	assert.False(t, ok)

	g := lax.Grid{1, 2, 3}
	require.NoError(t, m.WriteFrame(0, g))
	g[0] = 99

	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, lax.Grid{1, 2, 3}, last.Values, "sink must copy the frame")
	require.NoError(t, m.Close())
	assert.True(t, m.Closed)
}
