// SPDX-License-Identifier: MIT

// Command jmatrix reports build and error-registry information for the
// jmatrix library.
package main

import (
	"os"

	"github.com/katalvlaran/jmatrix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
