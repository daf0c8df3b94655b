package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/anneal"
	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/config"
)

type scoreOptions struct {
	global *globalOptions

	file       string
	targets    []string
	targetFile string
	weights    weightsValue
	format     string
	output     string
}

func newScoreCmd(global *globalOptions) *cobra.Command {
	opts := &scoreOptions{global: global}

	cmd := &cobra.Command{
		Use:   "score --target hex [--target hex...] [hex...]",
		Short: "Break down the objective for an existing palette",
		Long: `Score an existing palette against target colours using the same weighted
objective the optimizer minimises, and show each term of it.

The vision terms are 100 minus the mean pairwise CIEDE2000 distance in that
vision space, range is the spread of normal-vision distances, and target is
the mean distance from each colour to its nearest target. Lower is better.

Examples:
  # Score a three colour palette against a brand red
  distinct score --target "#c8102e" "#d81b60" "#1e88e5" "#ffc107"

  # Score with custom weights as JSON
  distinct score --target "#c8102e" --weight range=0 -f json --file palette.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "palette file of colours to score")
	f.StringSliceVarP(&opts.targets, "target", "t", nil, "target colour (repeatable)")
	f.StringVar(&opts.targetFile, "target-file", "", "palette file of target colours")
	f.Var(&opts.weights, "weight", "objective weight override (normal, range, target, protanopia, deuteranopia, tritanopia); repeatable")
	f.StringVarP(&opts.format, "format", "f", "table", "output format (table, json)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// scoreReport is the JSON output of the score command.
type scoreReport struct {
	Palette []string       `json:"palette"`
	Targets []string       `json:"targets"`
	Weights anneal.Weights `json:"weights"`
	Scores  anneal.Scores  `json:"scores"`
	Cost    float64        `json:"cost"`
}

func runScore(cmd *cobra.Command, opts *scoreOptions, args []string) error {
	env, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return err
	}
	weights, err := resolveWeights(env.Weights, opts.weights)
	if err != nil {
		return err
	}

	targets, err := collectColours(opts.targetFile, opts.targets)
	if err != nil {
		return fmt.Errorf("targets: %w", err)
	}
	colors, err := collectColours(opts.file, args)
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		return fmt.Errorf("at least one colour is required: %w", colour.ErrEmptyInput)
	}

	objective, err := anneal.NewObjective(targets, weights, env.Parallel)
	if err != nil {
		return fmt.Errorf("at least one target colour is required: %w", err)
	}

	palette := colour.NewPalette(colors)
	scores := objective.Scores(palette)
	cost := scores.Weighted(weights)

	logger := opts.global.logger(cmd.ErrOrStderr())
	logger.Debug("scored palette", "colours", palette.Len(), "targets", len(targets), "cost", cost)

	var output string
	switch opts.format {
	case "json":
		data, err := json.MarshalIndent(scoreReport{
			Palette: palette.ToHex(),
			Targets: colour.NewPalette(targets).ToHex(),
			Weights: weights,
			Scores:  scores,
			Cost:    cost,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode scores: %w", err)
		}
		output = string(data) + "\n"
	case "table":
		output = formatScoreTable(scores, weights, cost)
	default:
		return fmt.Errorf("invalid format: %s (valid: table, json)", opts.format)
	}

	return writeOutput(cmd, opts.output, output)
}

func formatScoreTable(s anneal.Scores, w anneal.Weights, cost float64) string {
	table := NewTable([]string{"Term", "Score", "Weight", "Weighted"})
	table.AlignRight(1, 2, 3)

	terms := []struct {
		name          string
		score, weight float64
	}{
		{"normal", s.Normal, w.Normal},
		{"protanopia", s.Protanopia, w.Protanopia},
		{"deuteranopia", s.Deuteranopia, w.Deuteranopia},
		{"tritanopia", s.Tritanopia, w.Tritanopia},
		{"range", s.Range, w.Range},
		{"target", s.Target, w.Target},
	}
	for _, term := range terms {
		table.AddRow([]string{
			term.name,
			fmt.Sprintf("%.4f", term.score),
			fmt.Sprintf("%g", term.weight),
			fmt.Sprintf("%.4f", term.score*term.weight),
		})
	}
	table.AddRow([]string{"total", "", "", fmt.Sprintf("%.4f", cost)})

	return table.Render()
}
