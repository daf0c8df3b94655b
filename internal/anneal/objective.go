// Package anneal searches for distinguishable palettes with simulated
// annealing over a perceptual, CVD-aware objective.
package anneal

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/cvd"
)

// scoredSpaces are the vision spaces whose pairwise spread enters the cost.
var scoredSpaces = [...]cvd.VisionSpace{cvd.Normal, cvd.Protanopia, cvd.Deuteranopia, cvd.Tritanopia}

// Scores is the unweighted breakdown of one objective evaluation.
// The four vision-space scores are 100 minus the mean pairwise distance.
type Scores struct {
	Normal       float64 `json:"normal"`
	Protanopia   float64 `json:"protanopia"`
	Deuteranopia float64 `json:"deuteranopia"`
	Tritanopia   float64 `json:"tritanopia"`
	Range        float64 `json:"range"`
	Target       float64 `json:"target"`
}

// Weighted combines the scores into a single cost.
func (s Scores) Weighted(w Weights) float64 {
	return w.Normal*s.Normal +
		w.Target*s.Target +
		w.Range*s.Range +
		w.Protanopia*s.Protanopia +
		w.Deuteranopia*s.Deuteranopia +
		w.Tritanopia*s.Tritanopia
}

// Objective scores candidate palettes against a fixed target palette.
// It is safe for concurrent use.
type Objective struct {
	targets  []colour.Color
	weights  Weights
	parallel bool
}

// NewObjective binds the target colours and weights. parallel evaluates the
// vision spaces concurrently; results are identical either way.
func NewObjective(targets []colour.Color, weights Weights, parallel bool) (*Objective, error) {
	if len(targets) == 0 {
		return nil, colour.ErrEmptyInput
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Objective{
		targets:  slices.Clone(targets),
		weights:  weights,
		parallel: parallel,
	}, nil
}

// Weights returns the weighting in use.
func (o *Objective) Weights() Weights {
	return o.weights
}

// Cost returns the weighted objective for a candidate palette. Lower is better.
func (o *Objective) Cost(p *colour.Palette) float64 {
	return o.Scores(p).Weighted(o.weights)
}

// Scores returns the unweighted objective terms for a candidate palette.
func (o *Objective) Scores(p *colour.Palette) Scores {
	var distances [len(scoredSpaces)][]float64
	if o.parallel {
		var g errgroup.Group
		for i, space := range scoredSpaces {
			g.Go(func() error {
				distances[i] = cvd.PairwiseDistances(p.Colors, space)
				return nil
			})
		}
		g.Wait()
	} else {
		for i, space := range scoredSpaces {
			distances[i] = cvd.PairwiseDistances(p.Colors, space)
		}
	}

	return Scores{
		Normal:       100 - mean(distances[0]),
		Protanopia:   100 - mean(distances[1]),
		Deuteranopia: 100 - mean(distances[2]),
		Tritanopia:   100 - mean(distances[3]),
		Range:        spread(distances[0]),
		Target:       o.targetDistance(p.Colors),
	}
}

// targetDistance is the mean distance from each colour to its nearest target.
func (o *Objective) targetDistance(colors []colour.Color) float64 {
	if len(colors) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range colors {
		// targets is non-empty, so ClosestIn cannot fail.
		_, d, _ := colour.ClosestIn(c, o.targets)
		total += d
	}
	return total / float64(len(colors))
}

// mean of an empty slice is 0 so that single-colour palettes score cleanly.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

func spread(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Max(values) - slices.Min(values)
}
