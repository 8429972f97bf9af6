package config

import "sort"

var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"small": {
		GridSize: 21, Steps: 200, Courant: DefaultCourant, Output: DefaultOutput,
		Profile: ProfileConfig{Amplitude: 1, Center: 10, Width: 2},
	},
	"sharp": {
		GridSize: 201, Steps: 2000, Courant: 0.25, Output: DefaultOutput,
		Profile: ProfileConfig{Amplitude: 10, Center: 100, Width: 3},
	},
	"unstable": {
		GridSize: DefaultGridSize, Steps: 500, Courant: 1.5, Output: DefaultOutput, CheckFinite: true,
		Profile: ProfileConfig{Amplitude: DefaultAmplitude, Center: DefaultCenter, Width: DefaultWidth},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
