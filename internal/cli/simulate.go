package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/cvd"
)

type simulateOptions struct {
	global *globalOptions

	file    string
	vision  []string
	format  string
	preview string
	output  string
}

func newSimulateCmd(global *globalOptions) *cobra.Command {
	opts := &simulateOptions{global: global}

	cmd := &cobra.Command{
		Use:   "simulate [hex...]",
		Short: "Show how colours appear under colour vision deficiencies",
		Long: `Show how each colour appears under simulated colour vision deficiencies.

Dichromacies and anomalous trichromacies use the Brettel, Viénot and Mollon
model; achromatopsia and achromatomaly use a luma greyscale.

Vision spaces: ` + strings.Join(cvd.VisionSpaceNames(), ", ") + `

Examples:
  # Every vision space for two colours
  distinct simulate "#ff0000" "#00ff00"

  # Only red-green deficiencies, with swatches
  distinct simulate --vision protanopia --vision deuteranopia --preview always "#ff0000"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.file, "file", "", "palette file of colours to simulate")
	f.StringSliceVar(&opts.vision, "vision", nil, "vision spaces to show (default: all)")
	f.StringVarP(&opts.format, "format", "f", "table", "output format (table, json)")
	f.StringVar(&opts.preview, "preview", previewAuto, "show colour swatches (auto, always, never)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// simulation is one colour and its appearance in each requested vision space.
type simulation struct {
	Colour   string            `json:"colour"`
	Variants map[string]string `json:"variants"`
}

func runSimulate(cmd *cobra.Command, opts *simulateOptions, args []string) error {
	colors, err := collectColours(opts.file, args)
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		return fmt.Errorf("at least one colour is required: %w", colour.ErrEmptyInput)
	}

	spaces := cvd.AllVisionSpaces()
	if len(opts.vision) > 0 {
		spaces = make([]cvd.VisionSpace, len(opts.vision))
		for i, name := range opts.vision {
			space, err := cvd.ParseVisionSpace(name)
			if err != nil {
				return err
			}
			spaces[i] = space
		}
	}

	preview, err := wantPreview(cmd, opts.preview)
	if err != nil {
		return err
	}
	if opts.output != "" {
		preview = false
	}

	logger := opts.global.logger(cmd.ErrOrStderr())
	logger.Debug("simulating", "colours", len(colors), "vision_spaces", len(spaces))

	variants := make([]cvd.Variants, len(colors))
	for i, c := range colors {
		variants[i] = cvd.NewVariants(c)
	}

	var output string
	switch opts.format {
	case "json":
		sims := make([]simulation, len(colors))
		for i, c := range colors {
			sims[i] = simulation{Colour: c.Hex(), Variants: make(map[string]string, len(spaces))}
			for _, space := range spaces {
				sims[i].Variants[space.String()] = variants[i].Get(space).Hex()
			}
		}
		data, err := json.MarshalIndent(sims, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode simulation: %w", err)
		}
		output = string(data) + "\n"
	case "table":
		headers := []string{"Colour"}
		for _, space := range spaces {
			headers = append(headers, space.String())
		}
		table := NewTable(headers)
		for i, c := range colors {
			row := []string{c.Hex()}
			for _, space := range spaces {
				row = append(row, variants[i].Get(space).Hex())
			}
			table.AddRow(row)
		}
		output = table.Render()
		if preview {
			output += "\n" + formatSimulationSwatches(colors, variants, spaces)
		}
	default:
		return fmt.Errorf("invalid format: %s (valid: table, json)", opts.format)
	}

	return writeOutput(cmd, opts.output, output)
}

// formatSimulationSwatches renders one line per vision space with a swatch
// for every colour as it appears in that space.
func formatSimulationSwatches(colors []colour.Color, variants []cvd.Variants, spaces []cvd.VisionSpace) string {
	labelWidth := len("normal")
	for _, space := range spaces {
		labelWidth = max(labelWidth, len(space.String()))
	}

	var sb strings.Builder
	for _, space := range spaces {
		fmt.Fprintf(&sb, "%-*s ", labelWidth, space.String())
		for i := range colors {
			sb.WriteString(colour.ColourPreview(variants[i].Get(space).RGB(), 6))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
