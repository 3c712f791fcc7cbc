// Set command for the sparsem CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/internal/paths"
	"github.com/dukaforge/sparsem/pkg/matrix"
)

var setCmd = &cobra.Command{
	Use:   "set <file> <row> <col> <value>",
	Short: "Set one element of a matrix file",
	Long: `Set loads a matrix file, stores the value at the given coordinate, and
writes the file back. Setting a coordinate beyond the declared
dimensions grows the matrix.

Example:
  sparsem set m.txt 5 3 7`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid row %q", args[1])
		}
		col, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid column %q", args[2])
		}
		value, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", args[3])
		}

		path := paths.Normalize(args[0])
		m, err := matrix.ReadFile(path)
		if err != nil {
			return fmt.Errorf("load matrix: %w", err)
		}
		if err := m.Set(row, col, value); err != nil {
			return fmt.Errorf("set element: %w", err)
		}
		if err := matrix.WriteFile(m, path); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"file":  path,
				"row":   row,
				"col":   col,
				"value": value,
				"rows":  m.Rows(),
				"cols":  m.Cols(),
			})
		}
		fmt.Printf("Set (%d, %d) = %d in %s (now %dx%d)\n", row, col, value, path, m.Rows(), m.Cols())
		return nil
	},
}
