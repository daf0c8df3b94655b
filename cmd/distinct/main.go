// distinct - colour-blind friendly palette generation
//
// distinct searches for colour palettes that remain distinguishable under
// normal vision and the common colour vision deficiencies, while staying
// close to a set of target colours.
package main

import (
	"os"

	"github.com/jmylchreest/distinct/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
