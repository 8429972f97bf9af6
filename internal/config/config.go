package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/laxsim/internal/lax"
)

const (
	DefaultGridSize  = 101
	DefaultSteps     = 10000
	DefaultCourant   = 0.49
	DefaultAmplitude = 10.0
	DefaultCenter    = 50.0
	DefaultWidth     = 10.0
	DefaultOutput    = "deriva_lax.txt"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	GridSize    int           `yaml:"grid_size" json:"grid_size"`
	Steps       int           `yaml:"steps" json:"steps"`
	Courant     float64       `yaml:"courant" json:"courant"`
	Profile     ProfileConfig `yaml:"profile" json:"profile"`
	Output      string        `yaml:"output" json:"output"`
	CheckFinite bool          `yaml:"check_finite" json:"check_finite"`
}

type ProfileConfig struct {
	Amplitude float64 `yaml:"amplitude" json:"amplitude"`
	Center    float64 `yaml:"center" json:"center"`
	Width     float64 `yaml:"width" json:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		GridSize: DefaultGridSize,
		Steps:    DefaultSteps,
		Courant:  DefaultCourant,
		Profile: ProfileConfig{
			Amplitude: DefaultAmplitude,
			Center:    DefaultCenter,
			Width:     DefaultWidth,
		},
		Output: DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.ApplyFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyFile overlays the keys present in the YAML file at path onto c.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the run invariants before anything is allocated or opened.
// The Courant parameter is only required to be finite.
func (c *Config) Validate() error {
	if c.GridSize < lax.MinGridSize {
		return fmt.Errorf("%w: grid_size %d: %w", ErrInvalid, c.GridSize, lax.ErrGridTooSmall)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps %d: %w", ErrInvalid, c.Steps, lax.ErrNegativeSteps)
	}
	for name, v := range map[string]float64{
		"courant":   c.Courant,
		"amplitude": c.Profile.Amplitude,
		"center":    c.Profile.Center,
		"width":     c.Profile.Width,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, name, v)
		}
	}
	if c.Profile.Width == 0 {
		return fmt.Errorf("%w: width must be non-zero", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	return nil
}

func (c *Config) Gaussian() lax.Gaussian {
	return lax.Gaussian{
		Amplitude: c.Profile.Amplitude,
		Center:    c.Profile.Center,
		Width:     c.Profile.Width,
	}
}

// InitialGrid evaluates the configured profile on a grid of GridSize points.
func (c *Config) InitialGrid() lax.Grid {
	g := lax.NewGrid(c.GridSize)
	c.Gaussian().Fill(g)
	return g
}
