// Shared helpers for sparsem CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dukaforge/sparsem/internal/history"
	"github.com/dukaforge/sparsem/internal/paths"
	"github.com/dukaforge/sparsem/pkg/matrix"
)

// loadMatrix normalizes a user-supplied path and loads the matrix file.
func loadMatrix(path string) (*matrix.Matrix, error) {
	return matrix.ReadFile(paths.Normalize(path))
}

// outputPath returns the destination for an operation result. An
// explicit --output flag wins; otherwise the name is derived from the
// operation, "<operation>_output.txt", placed in the configured output
// directory when one is set.
func outputPath(flag, operation string) string {
	if flag != "" {
		return paths.Normalize(flag)
	}
	name := operation + "_output.txt"
	if configOutputDir != "" {
		return filepath.Join(configOutputDir, name)
	}
	return name
}

// binaryResult is the JSON shape printed by add, subtract, and multiply.
type binaryResult struct {
	Operation string `json:"operation"`
	Output    string `json:"output"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	NonZero   int    `json:"nonzero"`
	RunID     string `json:"run_id,omitempty"`
}

// runBinaryOp drives one add/subtract/multiply invocation: load both
// operands, apply the operation, write the result, and journal the run.
func runBinaryOp(operation string, apply func(a, b *matrix.Matrix) (*matrix.Matrix, error), leftPath, rightPath, outFlag string) error {
	left, err := loadMatrix(leftPath)
	if err != nil {
		return fmt.Errorf("load first matrix: %w", err)
	}
	if !flagJSON {
		fmt.Printf("Loaded %s (%dx%d)\n", leftPath, left.Rows(), left.Cols())
	}

	right, err := loadMatrix(rightPath)
	if err != nil {
		return fmt.Errorf("load second matrix: %w", err)
	}
	if !flagJSON {
		fmt.Printf("Loaded %s (%dx%d)\n", rightPath, right.Rows(), right.Cols())
	}

	result, err := apply(left, right)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	out := outputPath(outFlag, operation)
	if err := matrix.WriteFile(result, out); err != nil {
		// A result that cannot be written is a system failure, not a
		// usage mistake.
		fmt.Fprintln(os.Stderr, "write result:", err)
		os.Exit(exitSysError)
	}

	runID := recordRun(operation, leftPath, rightPath, out, result)

	if flagJSON {
		return printJSON(binaryResult{
			Operation: operation,
			Output:    out,
			Rows:      result.Rows(),
			Cols:      result.Cols(),
			NonZero:   result.NonZero(),
			RunID:     runID,
		})
	}
	fmt.Printf("%s completed, result (%dx%d) written to %s\n",
		capitalize(operation), result.Rows(), result.Cols(), out)
	return nil
}

// recordRun journals a completed operation. Journal problems are
// reported as warnings and never fail the command; the result file is
// already on disk. Returns the run ID, or "" when nothing was recorded.
func recordRun(operation, leftPath, rightPath, out string, result *matrix.Matrix) string {
	if !configHistory {
		return ""
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: resolve data dir:", err)
		return ""
	}
	store, err := history.Open(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: open run journal:", err)
		return ""
	}
	defer store.Close()

	id, err := store.Record(&history.Run{
		Operation:  operation,
		LeftPath:   leftPath,
		RightPath:  rightPath,
		OutputPath: out,
		Rows:       result.Rows(),
		Cols:       result.Cols(),
		NonZero:    result.NonZero(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: record run:", err)
		return ""
	}
	return id
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// capitalize upper-cases the first byte of an ASCII operation name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
