// New command for the sparsem CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/internal/paths"
	"github.com/dukaforge/sparsem/pkg/matrix"
)

var (
	newRows int
	newCols int
)

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty matrix file",
	Long: `New writes a matrix file with the given dimensions and no stored
entries.

Example:
  sparsem new m.txt --rows 3 --cols 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := matrix.New(newRows, newCols)
		if err != nil {
			return fmt.Errorf("new matrix: %w", err)
		}

		path := paths.Normalize(args[0])
		if err := matrix.WriteFile(m, path); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"file": path,
				"rows": m.Rows(),
				"cols": m.Cols(),
			})
		}
		fmt.Printf("Created %s (%dx%d)\n", path, m.Rows(), m.Cols())
		return nil
	},
}

func init() {
	newCmd.Flags().IntVar(&newRows, "rows", 0, "row count")
	newCmd.Flags().IntVar(&newCols, "cols", 0, "column count")
}
