// Subtract command for the sparsem CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/internal/history"
	"github.com/dukaforge/sparsem/pkg/matrix"
)

var (
	subtractOutput string
	subtractFull   bool
)

var subtractCmd = &cobra.Command{
	Use:   "subtract <left-file> <right-file>",
	Short: "Subtract the second matrix from the first",
	Long: `Subtract loads two matrix files of identical dimensions and writes
their difference.

By default only coordinates stored in the second matrix are written to
the result; an entry present only in the first matrix reads back as
zero. This matches the historical behavior of the operation. Pass
--full to subtract over the union of both entry sets instead.

Example:
  sparsem subtract a.txt b.txt
  sparsem subtract a.txt b.txt --full --output diff.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if subtractFull {
			return runBinaryOp(history.OpSubtractFull, (*matrix.Matrix).SubtractFull, args[0], args[1], subtractOutput)
		}
		return runBinaryOp(history.OpSubtract, (*matrix.Matrix).Subtract, args[0], args[1], subtractOutput)
	},
}

func init() {
	subtractCmd.Flags().StringVar(&subtractOutput, "output", "", "result file (default: subtraction_output.txt)")
	subtractCmd.Flags().BoolVar(&subtractFull, "full", false, "subtract over the union of both entry sets")
}
