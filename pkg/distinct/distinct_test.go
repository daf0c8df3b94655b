package distinct_test

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/distinct/pkg/distinct"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func fast() []distinct.Option {
	return []distinct.Option{
		distinct.WithTemperature(20),
		distinct.WithCoolingRate(0.8),
		distinct.WithCutoff(0.01),
	}
}

func TestOptimize(t *testing.T) {
	opts := append(fast(), distinct.WithResultCount(4), distinct.WithSeed(7))
	got, err := distinct.Optimize(context.Background(), []string{"#1f77b4", "#ff7f0e"}, opts...)
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("Optimize() returned %d colours, want 4", len(got))
	}
	for _, h := range got {
		if !hexPattern.MatchString(h) {
			t.Errorf("Optimize() colour %q is not a 6-digit hex string", h)
		}
	}
}

func TestOptimizeDefaultsSingleRedTarget(t *testing.T) {
	first, err := distinct.Optimize(context.Background(), []string{"#ff0000"},
		distinct.WithResultCount(1), distinct.WithSeed(1))
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	second, err := distinct.Optimize(context.Background(), []string{"#ff0000"},
		distinct.WithResultCount(1), distinct.WithRand(rand.New(rand.NewPCG(1, 1^0x9e3779b97f4a7c15))))
	if err != nil {
		t.Fatalf("Optimize() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("seeded runs differ (-WithSeed +WithRand):\n%s", diff)
	}
}

func TestOptimizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		opts    []distinct.Option
		check   func(error) bool
	}{
		{
			name:    "malformed target",
			targets: []string{"#ff0000", "not-a-colour"},
			check: func(err error) bool {
				var e *distinct.ParseError
				return errors.As(err, &e)
			},
		},
		{
			name:    "zero count",
			targets: []string{"#ff0000"},
			opts:    []distinct.Option{distinct.WithResultCount(0)},
			check: func(err error) bool {
				var e *distinct.InvalidArgumentError
				return errors.As(err, &e)
			},
		},
		{
			name:    "infinite temperature",
			targets: []string{"#ff0000"},
			opts:    []distinct.Option{distinct.WithTemperature(math.Inf(1))},
			check: func(err error) bool {
				var e *distinct.InvalidArgumentError
				return errors.As(err, &e)
			},
		},
		{
			name:    "negative temperature",
			targets: []string{"#ff0000"},
			opts:    []distinct.Option{distinct.WithTemperature(-1)},
			check: func(err error) bool {
				var e *distinct.InvalidArgumentError
				return errors.As(err, &e)
			},
		},
		{
			name:    "cooling rate out of range",
			targets: []string{"#ff0000"},
			opts:    []distinct.Option{distinct.WithCoolingRate(1)},
			check: func(err error) bool {
				var e *distinct.InvalidArgumentError
				return errors.As(err, &e)
			},
		},
		{
			name:    "zero cutoff",
			targets: []string{"#ff0000"},
			opts:    []distinct.Option{distinct.WithCutoff(0)},
			check: func(err error) bool {
				var e *distinct.InvalidArgumentError
				return errors.As(err, &e)
			},
		},
		{
			name:    "no targets",
			targets: []string{},
			opts:    fast(),
			check: func(err error) bool {
				return errors.Is(err, distinct.ErrEmptyInput)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := distinct.Optimize(context.Background(), tt.targets, tt.opts...)
			if !tt.check(err) {
				t.Fatalf("Optimize() error = %v, unexpected type", err)
			}
			if got != nil {
				t.Errorf("Optimize() returned %v alongside an error", got)
			}
		})
	}
}

func TestSimulate(t *testing.T) {
	got, err := distinct.Simulate("#ff0000", "Achromatopsia")
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if want := "#4c4c4c"; got != want {
		t.Errorf("Simulate(#ff0000, Achromatopsia) = %s, want %s", got, want)
	}

	if got, err := distinct.Simulate("#abcdef", "normal"); err != nil || got != "#abcdef" {
		t.Errorf("Simulate(normal) = %s, %v", got, err)
	}

	_, err = distinct.Simulate("#ff0000", "Xanthopia")
	var uerr *distinct.UnknownVisionSpaceError
	if !errors.As(err, &uerr) {
		t.Errorf("Simulate(Xanthopia) error = %v, want *UnknownVisionSpaceError", err)
	}
}

func TestDistance(t *testing.T) {
	d, err := distinct.Distance("#000000", "#000000")
	if err != nil || d != 0 {
		t.Errorf("Distance(black, black) = %v, %v", d, err)
	}
	if _, err := distinct.Distance("#000000", "#xyz"); err == nil {
		t.Error("Distance() with malformed colour error = nil")
	}
}
