package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/distinct/internal/anneal"
	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/config"
	"github.com/jmylchreest/distinct/internal/palettefile"
)

// weightsValue collects repeatable --weight name=value pairs.
type weightsValue map[string]string

var _ pflag.Value = (*weightsValue)(nil)

func (w *weightsValue) String() string {
	if w == nil || len(*w) == 0 {
		return ""
	}
	names := make([]string, 0, len(*w))
	for name := range *w {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = name + "=" + (*w)[name]
	}
	return strings.Join(pairs, ",")
}

// Set accepts name=value, or several comma separated pairs.
func (w *weightsValue) Set(s string) error {
	pairs, err := config.ParsePairs(s)
	if err != nil {
		return err
	}
	if *w == nil {
		*w = make(weightsValue)
	}
	for name, value := range pairs {
		(*w)[name] = value
	}
	return nil
}

func (w *weightsValue) Type() string {
	return "name=value"
}

// resolveWeights layers env weights and then --weight flags over the defaults.
func resolveWeights(env map[string]string, flags weightsValue) (anneal.Weights, error) {
	w, err := anneal.ParseWeights(anneal.DefaultWeights(), env)
	if err != nil {
		return anneal.Weights{}, err
	}
	return anneal.ParseWeights(w, flags)
}

// collectColours gathers colours from an optional palette file followed by
// positional arguments (hex or colour names).
func collectColours(file string, args []string) ([]colour.Color, error) {
	var colors []colour.Color
	if file != "" {
		loaded, err := palettefile.Load(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load colours: %w", err)
		}
		colors = append(colors, loaded...)
	}

	parsed, err := colour.ParseList(args)
	if err != nil {
		return nil, err
	}
	return append(colors, parsed...), nil
}

// Preview modes for --preview.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// wantPreview reports whether ANSI swatches should be written to cmd's output.
// In auto mode previews are shown only when stdout is a terminal.
func wantPreview(cmd *cobra.Command, mode string) (bool, error) {
	switch mode {
	case previewAlways:
		return true, nil
	case previewNever:
		return false, nil
	case previewAuto, "":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil // #nosec G115 -- file descriptors fit in int
	default:
		return false, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
	}
}

// writeOutput writes content to the named file, or to cmd's output when path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 -- palette files are not sensitive
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
