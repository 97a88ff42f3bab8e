// sheathcalc-cli estimates sheathing panels from the command line.
//
// Build:
//   go build -o sheathcalc-cli ./cmd/sheathcalc-cli
package main

import (
	"os"

	"github.com/piwi3910/sheathcalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
