package anneal

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Weights scales each term of the objective. A higher
//   - Normal weight spreads colours further apart under normal vision,
//   - Range weight spreads them more uniformly,
//   - Target weight keeps them closer to the target colours,
//   - Protanopia, Deuteranopia and Tritanopia weights spread them further
//     apart for the matching deficiency.
type Weights struct {
	Normal       float64 `json:"normal"`
	Range        float64 `json:"range"`
	Target       float64 `json:"target"`
	Protanopia   float64 `json:"protanopia"`
	Deuteranopia float64 `json:"deuteranopia"`
	Tritanopia   float64 `json:"tritanopia"`
}

// DefaultWeights returns the reference weighting.
func DefaultWeights() Weights {
	return Weights{
		Normal:       1,
		Range:        1,
		Target:       1,
		Protanopia:   0.33,
		Deuteranopia: 0.33,
		Tritanopia:   0.33,
	}
}

func (w *Weights) field(name string) *float64 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return &w.Normal
	case "range":
		return &w.Range
	case "target":
		return &w.Target
	case "protanopia":
		return &w.Protanopia
	case "deuteranopia":
		return &w.Deuteranopia
	case "tritanopia":
		return &w.Tritanopia
	default:
		return nil
	}
}

// Set overrides a single weight by (case-insensitive) name.
func (w *Weights) Set(name string, value float64) error {
	f := w.field(name)
	if f == nil {
		return &InvalidArgumentError{
			Name:   "weight",
			Value:  name,
			Reason: "expected one of normal, range, target, protanopia, deuteranopia, tritanopia",
		}
	}
	*f = value
	return nil
}

// ParseWeights applies name=value overrides on top of base.
func ParseWeights(base Weights, overrides map[string]string) (Weights, error) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	w := base
	for _, name := range names {
		raw := overrides[name]
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Weights{}, &InvalidArgumentError{Name: "weight " + name, Value: raw, Reason: "not a number"}
		}
		if err := w.Set(name, v); err != nil {
			return Weights{}, err
		}
	}
	return w, w.Validate()
}

// Validate checks every weight is finite.
func (w Weights) Validate() error {
	for name, v := range w.asMap() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidArgumentError{Name: "weight " + name, Value: v, Reason: "must be finite"}
		}
	}
	return nil
}

// String renders the weights as comma separated name=value pairs.
func (w Weights) String() string {
	return fmt.Sprintf("normal=%g,range=%g,target=%g,protanopia=%g,deuteranopia=%g,tritanopia=%g",
		w.Normal, w.Range, w.Target, w.Protanopia, w.Deuteranopia, w.Tritanopia)
}

func (w Weights) asMap() map[string]float64 {
	return map[string]float64{
		"normal":       w.Normal,
		"range":        w.Range,
		"target":       w.Target,
		"protanopia":   w.Protanopia,
		"deuteranopia": w.Deuteranopia,
		"tritanopia":   w.Tritanopia,
	}
}
