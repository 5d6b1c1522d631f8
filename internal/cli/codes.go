// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/jmatrix/errcode"
	"github.com/spf13/cobra"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Print the error-identity registry",
	Long: `Print every error identity with its canonical form, errno string and
message. The canonical form CODE[errno] is the exact token emitted in logs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, ec := range []errcode.ErrorCode{
			errcode.InvalidIndex,
			errcode.InvalidType,
			errcode.NullMatrix,
			errcode.Unknown,
		} {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ec, ec.ErrnoStr(), ec.Message())
		}

		return w.Flush()
	},
}
