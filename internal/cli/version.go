// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/jmatrix/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the release version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		info, err := version.Load()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), info)

		return nil
	},
}
