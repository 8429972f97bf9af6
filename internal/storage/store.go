package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/laxsim/internal/config"
	"github.com/san-kum/laxsim/internal/lax"
	"github.com/san-kum/laxsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	finalFile    = "final.csv"
)

// Store records finished runs under baseDir, one directory per run.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Config    config.Config `json:"config"`
	Frames    int           `json:"frames"`
	ElapsedMS float64       `json:"elapsed_ms"`
	Metrics   Metrics       `json:"metrics"`
}

// Save writes metadata.json and, when the run emitted at least one frame,
// final.csv holding the last emitted frame. A failed save leaves no run
// directory behind.
func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("lax_%d", now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Config:    *cfg,
		Frames:    result.Frames,
		ElapsedMS: float64(result.Elapsed.Microseconds()) / 1000,
		Metrics:   Metrics(result.Metrics),
	}

	err := writeMetadata(filepath.Join(runDir, metadataFile), &meta)
	if err == nil && result.Final != nil {
		err = writeFinal(filepath.Join(runDir, finalFile), result.Final)
	}
	if err != nil {
		return "", errors.Join(err, os.RemoveAll(runDir))
	}
	return runID, nil
}

func writeMetadata(path string, meta *RunMetadata) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeFinal(path string, g lax.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range g {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'g', -1, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns recorded runs, oldest first. Unreadable entries are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadFinal reads the last emitted frame of a recorded run.
func (s *Store) LoadFinal(runID string) (lax.Grid, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, finalFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return lax.Grid{}, nil
	}

	g := make(lax.Grid, 0, len(records)-1)
	for i, rec := range records[1:] {
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", finalFile, i+1, err)
		}
		g = append(g, v)
	}
	return g, nil
}
