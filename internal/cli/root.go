// Package cli provides the command-line interface for distinct.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/distinct/internal/version"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	quiet   bool
}

// logger returns an hclog logger writing to w at the level selected by the
// global flags: Debug with --verbose, Off with --quiet, Info otherwise.
func (g *globalOptions) logger(w io.Writer) hclog.Logger {
	if g.quiet {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "distinct",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	level := hclog.Info
	if g.verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "distinct",
		Output: w,
		Level:  level,
	})
}

// NewRootCmd builds the distinct command tree.
func NewRootCmd() *cobra.Command {
	global := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "distinct",
		Short: "Generate colour palettes that stay distinct under colour blindness",
		Long: `distinct generates colour palettes whose colours remain distinguishable for
people with normal vision and with protanopia, deuteranopia or tritanopia,
while staying perceptually close to a set of target colours.

Palettes are found by simulated annealing over a weighted objective of
CIEDE2000 distances measured under simulated colour vision deficiencies.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&global.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newOptimizeCmd(global))
	rootCmd.AddCommand(newSimulateCmd(global))
	rootCmd.AddCommand(newScoreCmd(global))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(version.GetInfo())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")

	return cmd
}
