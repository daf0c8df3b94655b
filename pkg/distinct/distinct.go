// Package distinct provides the public API for generating colour palettes
// that stay distinguishable under colour-vision deficiencies while staying
// close to a set of target colours.
//
// Palettes go in and come out as hex strings:
//
//	palette, err := distinct.Optimize(ctx, []string{"#1f77b4", "#ff7f0e"},
//		distinct.WithResultCount(6),
//		distinct.WithSeed(42),
//	)
package distinct

import (
	"context"
	"math/rand/v2"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/distinct/internal/anneal"
	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/cvd"
	"github.com/jmylchreest/distinct/internal/seed"
)

// Error types surfaced by this package. Use errors.As to inspect them.
type (
	// ParseError reports a malformed hex colour.
	ParseError = colour.ParseError
	// InvalidArgumentError reports an out-of-range setting.
	InvalidArgumentError = anneal.InvalidArgumentError
	// UnknownVisionSpaceError reports an unsupported vision space name.
	UnknownVisionSpaceError = cvd.UnknownVisionSpaceError
)

// ErrEmptyInput is returned when no target colours are supplied.
var ErrEmptyInput = colour.ErrEmptyInput

// Weights scales each term of the objective.
type Weights = anneal.Weights

// DefaultWeights returns the reference weighting.
func DefaultWeights() Weights {
	return anneal.DefaultWeights()
}

type options struct {
	cfg    anneal.Config
	rng    *rand.Rand
	seed   *int64
	logger hclog.Logger
}

// Option configures Optimize.
type Option func(*options)

// WithResultCount sets how many colours to generate (default 5).
func WithResultCount(n int) Option {
	return func(o *options) { o.cfg.ResultCount = n }
}

// WithTemperature sets the starting temperature (default 1000).
func WithTemperature(t float64) Option {
	return func(o *options) { o.cfg.Temperature = t }
}

// WithCoolingRate sets the per-pass cooling factor (default 0.99).
func WithCoolingRate(r float64) Option {
	return func(o *options) { o.cfg.CoolingRate = r }
}

// WithCutoff sets the stopping temperature (default 0.0001).
func WithCutoff(c float64) Option {
	return func(o *options) { o.cfg.Cutoff = c }
}

// WithDrift sets the perturbation range (default 0.1).
func WithDrift(d float64) Option {
	return func(o *options) { o.cfg.Drift = d }
}

// WithWeights replaces the objective weights.
func WithWeights(w Weights) Option {
	return func(o *options) { o.cfg.Weights = w }
}

// WithParallel evaluates vision spaces concurrently within each cost.
func WithParallel(parallel bool) Option {
	return func(o *options) { o.cfg.Parallel = parallel }
}

// WithRand uses the given generator. It takes precedence over WithSeed.
// The generator must not be shared with concurrent runs.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds a private generator so runs are reproducible.
func WithSeed(s int64) Option {
	return func(o *options) { o.seed = &s }
}

// WithLogger receives progress output.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Optimize returns exactly the configured number of lowercase "#rrggbb"
// colours. Without WithRand or WithSeed every call uses a fresh random seed.
func Optimize(ctx context.Context, targets []string, opts ...Option) ([]string, error) {
	o := options{cfg: anneal.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	palette, err := colour.ParsePalette(targets)
	if err != nil {
		return nil, err
	}

	rng := o.rng
	if rng == nil {
		s := seed.GenerateRandomSeed()
		if o.seed != nil {
			s = *o.seed
		}
		rng = seed.NewRand(s)
	}

	optimizer, err := anneal.New(o.cfg, rng, anneal.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	result, err := optimizer.Optimize(ctx, palette.Colors)
	if err != nil {
		return nil, err
	}
	return result.Palette.ToHex(), nil
}

// Simulate returns how a hex colour appears in the named vision space,
// e.g. "Deuteranomaly".
func Simulate(hex, visionSpace string) (string, error) {
	c, err := colour.ParseHex(hex)
	if err != nil {
		return "", err
	}
	space, err := cvd.ParseVisionSpace(visionSpace)
	if err != nil {
		return "", err
	}
	return cvd.Simulate(c, space).Hex(), nil
}

// Distance returns the CIEDE2000 difference between two hex colours.
func Distance(a, b string) (float64, error) {
	ca, err := colour.ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := colour.ParseHex(b)
	if err != nil {
		return 0, err
	}
	return colour.Distance(ca, cb), nil
}

// VisionSpaces lists the names accepted by Simulate.
func VisionSpaces() []string {
	return cvd.VisionSpaceNames()
}
