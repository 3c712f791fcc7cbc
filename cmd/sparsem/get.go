// Get command for the sparsem CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <row> <col>",
	Short: "Read one element of a matrix file",
	Long: `Get loads a matrix file and prints the value at the given coordinate.
A coordinate without a stored entry, including one outside the declared
dimensions, reads as zero.

Example:
  sparsem get m.txt 5 3`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid row %q", args[1])
		}
		col, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid column %q", args[2])
		}

		m, err := loadMatrix(args[0])
		if err != nil {
			return fmt.Errorf("load matrix: %w", err)
		}

		value := m.Get(row, col)
		if flagJSON {
			return printJSON(map[string]any{
				"row":   row,
				"col":   col,
				"value": value,
			})
		}
		fmt.Println(value)
		return nil
	},
}
