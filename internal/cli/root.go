// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for jmatrix.
//
// The binary is informational only: it reports the release version, license
// notice and the error-code registry. Matrix construction and arithmetic are
// library concerns; there is no data format to feed through a terminal.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "jmatrix",
	Short: "jmatrix — dense matrix and error-identity library",
	Long: `jmatrix is a Go library providing a dense float64 matrix with an explicit
uninitialized state, and a closed registry of error identities with stable
numeric codes.

This binary only reports build and registry information:

  jmatrix version    print the release version
  jmatrix about      print author and license information
  jmatrix codes      print the error-identity registry`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(versionCmd, aboutCmd, codesCmd)
}

// Execute runs the root command and returns its error, if any.
func Execute() error {
	return rootCmd.Execute()
}
