// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/jmatrix/internal/version"
	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Print author and license information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info, err := version.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, info)
		fmt.Fprintf(out, "Author:  %s\n", info.Author)
		fmt.Fprintf(out, "License: %s\n", info.License)

		return nil
	},
}
