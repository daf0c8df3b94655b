package anneal

import (
	"math"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Config holds the annealing schedule and objective settings.
type Config struct {
	// ResultCount is the number of colours to generate.
	ResultCount int
	// Temperature is the starting temperature. Higher values accept more
	// worsening moves in early passes.
	Temperature float64
	// CoolingRate multiplies the temperature after every pass. Values closer
	// to 1 run more passes.
	CoolingRate float64
	// Cutoff is the temperature at or below which the search stops.
	Cutoff float64
	// Drift controls how far a single perturbation may move a channel.
	Drift float64
	// Weights scales the objective terms.
	Weights Weights
	// Parallel evaluates the vision spaces of each cost concurrently.
	Parallel bool
}

// DefaultConfig returns the reference schedule.
func DefaultConfig() Config {
	return Config{
		ResultCount: 5,
		Temperature: 1000,
		CoolingRate: 0.99,
		Cutoff:      0.0001,
		Drift:       colour.DefaultDrift,
		Weights:     DefaultWeights(),
	}
}

// Validate validates the configuration. Every schedule value must be finite
// so that the cooling loop terminates.
func (c Config) Validate() error {
	if c.ResultCount <= 0 {
		return &InvalidArgumentError{Name: "result count", Value: c.ResultCount, Reason: "must be greater than 0"}
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"temperature", c.Temperature},
		{"cooling rate", c.CoolingRate},
		{"cutoff", c.Cutoff},
		{"drift", c.Drift},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &InvalidArgumentError{Name: f.name, Value: f.value, Reason: "must be finite"}
		}
	}
	if c.Temperature <= 0 {
		return &InvalidArgumentError{Name: "temperature", Value: c.Temperature, Reason: "must be greater than 0"}
	}
	if c.CoolingRate <= 0 || c.CoolingRate >= 1 {
		return &InvalidArgumentError{Name: "cooling rate", Value: c.CoolingRate, Reason: "must be within (0, 1)"}
	}
	if c.Cutoff <= 0 {
		return &InvalidArgumentError{Name: "cutoff", Value: c.Cutoff, Reason: "must be greater than 0"}
	}
	if c.Drift <= 0 {
		return &InvalidArgumentError{Name: "drift", Value: c.Drift, Reason: "must be greater than 0"}
	}
	return c.Weights.Validate()
}

// Passes returns how many outer cooling passes the schedule runs before the
// temperature falls to or below the cutoff. Schedules that would never end
// (non-finite temperature, cooling rate outside (0, 1), cutoff not above 0)
// report 0; Validate rejects them.
func Passes(temperature, coolingRate, cutoff float64) int {
	if math.IsNaN(temperature) || math.IsInf(temperature, 0) ||
		!(coolingRate > 0 && coolingRate < 1) || !(cutoff > 0) {
		return 0
	}
	n := 0
	for t := temperature; t > cutoff; t *= coolingRate {
		n++
	}
	return n
}
