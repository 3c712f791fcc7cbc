// Show command for the sparsem CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/pkg/matrix"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a matrix file",
	Long: `Show loads a matrix file and prints its dimensions and stored entries
in row-major order.

Example:
  sparsem show m.txt
  sparsem show m.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return fmt.Errorf("load matrix: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"file":    args[0],
				"rows":    m.Rows(),
				"cols":    m.Cols(),
				"nonzero": m.NonZero(),
			})
		}

		fmt.Printf("%s: %dx%d, %d stored entries\n", args[0], m.Rows(), m.Cols(), m.NonZero())
		return matrix.Encode(m, os.Stdout)
	},
}
