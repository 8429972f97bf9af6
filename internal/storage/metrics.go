package storage

import (
	"encoding/json"
	"fmt"
	"math"
)

// Metrics holds named run metrics. Unstable runs produce NaN and ±Inf,
// which JSON numbers cannot carry, so those are encoded as the strings
// "NaN", "+Inf" and "-Inf".
type Metrics map[string]float64

func (m Metrics) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	out := make(map[string]any, len(m))
	for name, v := range m {
		switch {
		case math.IsNaN(v):
			out[name] = "NaN"
		case math.IsInf(v, 1):
			out[name] = "+Inf"
		case math.IsInf(v, -1):
			out[name] = "-Inf"
		default:
			out[name] = v
		}
	}
	return json.Marshal(out)
}

func (m *Metrics) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*m = nil
		return nil
	}

	out := make(Metrics, len(raw))
	for name, msg := range raw {
		var v float64
		if err := json.Unmarshal(msg, &v); err == nil {
			out[name] = v
			continue
		}
		var s string
		if err := json.Unmarshal(msg, &s); err != nil {
			return fmt.Errorf("metric %q: %w", name, err)
		}
		switch s {
		case "NaN":
			out[name] = math.NaN()
		case "+Inf", "Inf":
			out[name] = math.Inf(1)
		case "-Inf":
			out[name] = math.Inf(-1)
		default:
			return fmt.Errorf("metric %q: invalid value %q", name, s)
		}
	}
	*m = out
	return nil
}
