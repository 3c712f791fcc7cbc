// Add command for the sparsem CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/internal/history"
	"github.com/dukaforge/sparsem/pkg/matrix"
)

var addOutput string

var addCmd = &cobra.Command{
	Use:   "add <left-file> <right-file>",
	Short: "Add two matrices",
	Long: `Add loads two matrix files of identical dimensions and writes their
element-wise sum.

Example:
  sparsem add a.txt b.txt
  sparsem add a.txt b.txt --output sum.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBinaryOp(history.OpAdd, (*matrix.Matrix).Add, args[0], args[1], addOutput)
	},
}

func init() {
	addCmd.Flags().StringVar(&addOutput, "output", "", "result file (default: addition_output.txt)")
}
