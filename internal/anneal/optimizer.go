package anneal

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/distinct/internal/colour"
)

// Pass describes the state at the end of one cooling pass, before the
// temperature is lowered.
type Pass struct {
	Index       int
	Temperature float64
	Cost        float64
	Accepted    int
}

// Result is the outcome of a completed optimization.
type Result struct {
	Palette   *colour.Palette
	Start     *colour.Palette
	StartCost float64
	FinalCost float64
	Passes    int
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger used for progress output.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Optimizer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers a callback invoked after every cooling pass.
func WithObserver(fn func(Pass)) Option {
	return func(o *Optimizer) {
		o.observer = fn
	}
}

// Optimizer runs simulated annealing over palettes.
// An Optimizer owns its random source and must not be used concurrently.
type Optimizer struct {
	cfg      Config
	rng      *rand.Rand
	logger   hclog.Logger
	observer func(Pass)
}

// New creates an Optimizer. The random source drives every random choice, so
// a seeded source makes runs reproducible.
func New(cfg Config, rng *rand.Rand, opts ...Option) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &InvalidArgumentError{Name: "random source", Value: nil, Reason: "must not be nil"}
	}

	o := &Optimizer{
		cfg:    cfg,
		rng:    rng,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Optimize searches for a palette of cfg.ResultCount colours that are
// distinguishable and close to targets. The context is checked once per
// pass; on cancellation no palette is returned.
func (o *Optimizer) Optimize(ctx context.Context, targets []colour.Color) (*Result, error) {
	objective, err := NewObjective(targets, o.cfg.Weights, o.cfg.Parallel)
	if err != nil {
		return nil, fmt.Errorf("failed to build objective: %w", err)
	}

	initial := make([]colour.Color, o.cfg.ResultCount)
	for i := range initial {
		initial[i] = colour.Random(o.rng)
	}

	current := colour.NewPalette(initial)
	start := current.Clone()
	currentCost := objective.Cost(current)
	startCost := currentCost

	o.logger.Debug("starting anneal",
		"targets", len(targets),
		"count", o.cfg.ResultCount,
		"temperature", o.cfg.Temperature,
		"cooling_rate", o.cfg.CoolingRate,
		"cutoff", o.cfg.Cutoff,
		"passes", Passes(o.cfg.Temperature, o.cfg.CoolingRate, o.cfg.Cutoff),
		"cost", startCost)

	temperature := o.cfg.Temperature
	passes := 0
	for temperature > o.cfg.Cutoff {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		accepted := 0
		for i := range current.Colors {
			neighbour := current.With(i, current.Colors[i].Nearby(o.rng, o.cfg.Drift))
			neighbourCost := objective.Cost(neighbour)

			// The Metropolis test also decides improving moves; exp(-delta/T)
			// is then >= 1 and always beats a draw from [0, 1).
			delta := neighbourCost - currentCost
			probability := math.Exp(-delta / temperature)
			if o.rng.Float64() < probability {
				current.Colors[i] = neighbour.Colors[i]
				currentCost = neighbourCost
				accepted++
			}
		}

		o.logger.Debug("pass complete",
			"pass", passes,
			"temperature", temperature,
			"cost", currentCost,
			"accepted", accepted)
		if o.observer != nil {
			o.observer(Pass{Index: passes, Temperature: temperature, Cost: currentCost, Accepted: accepted})
		}

		passes++
		temperature *= o.cfg.CoolingRate
	}

	o.logger.Info("anneal complete",
		"targets", colour.NewPalette(targets).ToHex(),
		"start", start.ToHex(),
		"final", current.ToHex(),
		"start_cost", startCost,
		"final_cost", currentCost,
		"difference", currentCost-startCost,
		"passes", passes)

	return &Result{
		Palette:   current,
		Start:     start,
		StartCost: startCost,
		FinalCost: currentCost,
		Passes:    passes,
	}, nil
}
