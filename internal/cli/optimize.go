package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/anneal"
	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/config"
	"github.com/jmylchreest/distinct/internal/seed"
)

type optimizeOptions struct {
	global *globalOptions

	file        string
	count       int
	temperature float64
	coolingRate float64
	cutoff      float64
	drift       float64
	weights     weightsValue
	seedMode    string
	seedValue   int64
	parallel    bool
	timeout     time.Duration
	format      string
	preview     string
	output      string
}

func newOptimizeCmd(global *globalOptions) *cobra.Command {
	opts := &optimizeOptions{global: global}
	defaults := anneal.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "optimize [hex...]",
		Short: "Generate a colour-blind friendly palette near target colours",
		Long: `Generate a palette whose colours are far apart under normal vision and the
three dichromacies, while staying close to the given target colours.

Targets are hex colours or colour names such as "navy", given as arguments,
in a palette file, or both. Palette files hold one colour per line (bare
value or colourN=value, // comments) or a JSON array of strings.

Runs are reproducible: by default the random seed is derived from the target
colours, so the same targets always produce the same palette.

Environment:
  DISTINCT_COUNT      default number of colours
  DISTINCT_WEIGHTS    default weights, e.g. "normal=1,range=0.5"
  DISTINCT_SEED_MODE  default seed mode (content, manual, random)
  DISTINCT_SEED       default manual seed
  DISTINCT_PARALLEL   evaluate vision spaces concurrently (true/false)

Examples:
  # Five colours close to a brand red and blue
  distinct optimize "#c8102e" "#003da5"

  # Eight colours from a palette file, shown as a table with swatches
  distinct optimize -n 8 --file brand.txt -f table --preview always

  # Favour deuteranopia and loosen the pull towards the targets
  distinct optimize --weight deuteranopia=1 --weight target=0.5 "#c8102e"

  # A different palette on every run
  distinct optimize --seed-mode random "#c8102e"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "palette file of target colours")
	f.IntVarP(&opts.count, "count", "n", defaults.ResultCount, "number of colours to generate")
	f.Float64Var(&opts.temperature, "temperature", defaults.Temperature, "initial annealing temperature")
	f.Float64Var(&opts.coolingRate, "cooling-rate", defaults.CoolingRate, "temperature multiplier per pass, in (0, 1)")
	f.Float64Var(&opts.cutoff, "cutoff", defaults.Cutoff, "temperature at which annealing stops")
	f.Float64Var(&opts.drift, "drift", defaults.Drift, "size of random colour perturbations")
	f.Var(&opts.weights, "weight", "objective weight override (normal, range, target, protanopia, deuteranopia, tritanopia); repeatable")
	f.StringVar(&opts.seedMode, "seed-mode", string(seed.ModeContent), "seed mode (content, manual, random)")
	f.Int64Var(&opts.seedValue, "seed", 0, "seed value for manual seed mode")
	f.BoolVar(&opts.parallel, "parallel", false, "evaluate vision spaces concurrently")
	f.DurationVar(&opts.timeout, "timeout", 0, "abort the optimization after this long (0 disables)")
	f.StringVarP(&opts.format, "format", "f", "hex", "output format (hex, json, table)")
	f.StringVar(&opts.preview, "preview", previewAuto, "show colour swatches (auto, always, never)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// optimizeReport is the JSON output of the optimize command.
type optimizeReport struct {
	Seed      int64           `json:"seed"`
	SeedMode  seed.Mode       `json:"seed_mode"`
	Weights   anneal.Weights  `json:"weights"`
	Targets   []string        `json:"targets"`
	Start     []string        `json:"start"`
	StartCost float64         `json:"start_cost"`
	FinalCost float64         `json:"final_cost"`
	Passes    int             `json:"passes"`
	Palette   json.RawMessage `json:"palette"`
}

func runOptimize(cmd *cobra.Command, opts *optimizeOptions, args []string) error {
	env, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return err
	}

	cfg, err := opts.annealConfig(cmd, env)
	if err != nil {
		return err
	}

	targets, err := collectColours(opts.file, args)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("at least one target colour is required: %w", colour.ErrEmptyInput)
	}
	targetHexes := colour.NewPalette(targets).ToHex()

	seedConfig, err := opts.seedConfig(cmd, env)
	if err != nil {
		return err
	}
	seedValue, err := seed.Calculate(targetHexes, seedConfig)
	if err != nil {
		return err
	}

	switch opts.format {
	case "hex", "json", "table":
	default:
		return fmt.Errorf("invalid format: %s (valid: hex, json, table)", opts.format)
	}
	preview, err := wantPreview(cmd, opts.preview)
	if err != nil {
		return err
	}
	if opts.output != "" {
		preview = false
	}

	logger := opts.global.logger(cmd.ErrOrStderr())
	logger.Debug("resolved settings",
		"seed", seedValue,
		"seed_mode", seedConfig.Mode,
		"weights", cfg.Weights.String(),
		"parallel", cfg.Parallel)

	optimizer, err := anneal.New(cfg, seed.NewRand(seedValue), anneal.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	result, err := optimizer.Optimize(ctx, targets)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("optimization timed out after %s: %w", opts.timeout, err)
		}
		return fmt.Errorf("optimization failed: %w", err)
	}

	var output string
	switch opts.format {
	case "json":
		paletteJSON, err := result.Palette.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		data, err := json.MarshalIndent(optimizeReport{
			Seed:      seedValue,
			SeedMode:  seedConfig.Mode,
			Weights:   cfg.Weights,
			Targets:   targetHexes,
			Start:     result.Start.ToHex(),
			StartCost: result.StartCost,
			FinalCost: result.FinalCost,
			Passes:    result.Passes,
			Palette:   paletteJSON,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		output = string(data) + "\n"
	case "table":
		output = formatResultTable(result.Palette, targets)
		if preview {
			output += "\n" + colour.Swatches(result.Palette, 0)
		}
	default:
		var sb strings.Builder
		for _, c := range result.Palette.All() {
			if preview {
				sb.WriteString(colour.FormatColourWithPreview(c, 4))
			} else {
				sb.WriteString(c.Hex())
			}
			sb.WriteString("\n")
		}
		output = sb.String()
	}

	return writeOutput(cmd, opts.output, output)
}

// annealConfig merges defaults, environment and explicitly set flags.
func (o *optimizeOptions) annealConfig(cmd *cobra.Command, env config.Config) (anneal.Config, error) {
	cfg := anneal.DefaultConfig()
	cfg.Temperature = o.temperature
	cfg.CoolingRate = o.coolingRate
	cfg.Cutoff = o.cutoff
	cfg.Drift = o.drift

	cfg.ResultCount = o.count
	if env.Count > 0 && !cmd.Flags().Changed("count") {
		cfg.ResultCount = env.Count
	}

	cfg.Parallel = o.parallel || (env.Parallel && !cmd.Flags().Changed("parallel"))

	weights, err := resolveWeights(env.Weights, o.weights)
	if err != nil {
		return anneal.Config{}, err
	}
	cfg.Weights = weights

	return cfg, cfg.Validate()
}

// seedConfig resolves the seed mode; an explicit --seed implies manual mode.
func (o *optimizeOptions) seedConfig(cmd *cobra.Command, env config.Config) (seed.Config, error) {
	flags := cmd.Flags()

	modeName := o.seedMode
	if !flags.Changed("seed-mode") {
		switch {
		case flags.Changed("seed"):
			modeName = string(seed.ModeManual)
		case env.SeedMode != "":
			modeName = env.SeedMode
		}
	}

	mode, err := seed.ParseMode(modeName)
	if err != nil {
		return seed.Config{}, err
	}

	var value *int64
	switch {
	case flags.Changed("seed"):
		v := o.seedValue
		value = &v
	case env.Seed != nil:
		value = env.Seed
	}

	return seed.Config{Mode: mode, Value: value}, nil
}

// formatResultTable lists each generated colour with its nearest target.
func formatResultTable(p *colour.Palette, targets []colour.Color) string {
	table := NewTable([]string{"#", "Colour", "Name", "RGB", "Nearest target", "dE2000"})
	table.AlignRight(0, 5)

	for i, c := range p.All() {
		nearest, dist, err := colour.ClosestIn(c, targets)
		nearestHex := ""
		distText := ""
		if err == nil {
			nearestHex = nearest.Hex()
			distText = fmt.Sprintf("%.2f", dist)
		}
		name, _ := colour.NearestName(c)
		table.AddRow([]string{
			fmt.Sprintf("%d", i+1),
			c.Hex(),
			"~" + name,
			c.RGB().String(),
			nearestHex,
			distText,
		})
	}

	return table.Render()
}
