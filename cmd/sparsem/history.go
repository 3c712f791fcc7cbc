// History command for the sparsem CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/sparsem/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded operation runs",
	Long: `History lists journaled add, subtract, and multiply runs, newest
first.

Example:
  sparsem history
  sparsem history --limit 5 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		store, err := history.Open(dataDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "open run journal:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		runs, err := store.List(historyLimit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list runs:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			if runs == nil {
				runs = []history.Run{}
			}
			return printJSON(runs)
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%s  %-16s  %s %s -> %s (%dx%d, %d entries)\n",
				r.CreatedAt.Local().Format(time.DateTime), r.Operation,
				r.LeftPath, r.RightPath, r.OutputPath, r.Rows, r.Cols, r.NonZero)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum runs to list (0 for all)")
}
