// Multiply command for the sparsem CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/internal/history"
	"github.com/dukaforge/sparsem/pkg/matrix"
)

var multiplyOutput string

var multiplyCmd = &cobra.Command{
	Use:   "multiply <left-file> <right-file>",
	Short: "Multiply two matrices",
	Long: `Multiply loads two matrix files and writes their matrix product. The
column count of the first operand must equal the row count of the
second.

Example:
  sparsem multiply a.txt b.txt
  sparsem multiply a.txt b.txt --output product.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBinaryOp(history.OpMultiply, (*matrix.Matrix).Multiply, args[0], args[1], multiplyOutput)
	},
}

func init() {
	multiplyCmd.Flags().StringVar(&multiplyOutput, "output", "", "result file (default: multiplication_output.txt)")
}
