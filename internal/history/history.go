// Package history keeps a journal of matrix operations in a SQLite
// database under the data directory. Each add, subtract, or multiply
// run is recorded with its operand paths and result shape so past work
// can be listed from the CLI.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Operation names accepted by Record.
const (
	OpAdd          = "addition"
	OpSubtract     = "subtraction"
	OpSubtractFull = "full-subtraction"
	OpMultiply     = "multiplication"
)

// validOperations is the set of recognized operation names.
var validOperations = map[string]bool{
	OpAdd:          true,
	OpSubtract:     true,
	OpSubtractFull: true,
	OpMultiply:     true,
}

var (
	// ErrUnknownOperation is returned by Record for an operation name
	// outside the Op* constants.
	ErrUnknownOperation = errors.New("history: unknown operation")

	// ErrClosed is returned when the store is used after Close.
	ErrClosed = errors.New("history: store is closed")
)

// DBFileName is the journal database file inside the data directory.
const DBFileName = "history.db"

// Run is one recorded operation.
type Run struct {
	RunID      string    // UUID v7, generated on record.
	Operation  string    // One of the Op* constants.
	LeftPath   string    // First operand file.
	RightPath  string    // Second operand file.
	OutputPath string    // Where the result was written.
	Rows       int       // Result row count.
	Cols       int       // Result column count.
	NonZero    int       // Result stored-entry count.
	CreatedAt  time.Time // Timestamp of the run.
}

// Store is a handle on the journal database.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the journal
// database inside it, and ensures the schema exists.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	if _, err := db.Exec(createRuns); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing journal schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle. Safe to call more than once.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record inserts a run into the journal. The RunID and CreatedAt fields
// of run are overwritten with a fresh UUID v7 and the current time, and
// the ID is returned.
func (s *Store) Record(run *Run) (string, error) {
	if s.db == nil {
		return "", ErrClosed
	}
	if !validOperations[run.Operation] {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, run.Operation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating run ID: %w", err)
	}
	run.RunID = id.String()
	run.CreatedAt = time.Now().UTC()

	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, operation, left_path, right_path, output_path, rows, cols, nonzero, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Operation, run.LeftPath, run.RightPath, run.OutputPath,
		run.Rows, run.Cols, run.NonZero, run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return run.RunID, nil
}

// List returns recorded runs, newest first. A non-positive limit
// returns every run.
func (s *Store) List(limit int) ([]Run, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	query := `SELECT run_id, operation, left_path, right_path, output_path, rows, cols, nonzero, created_at
	          FROM runs ORDER BY created_at DESC, run_id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.RunID, &r.Operation, &r.LeftPath, &r.RightPath,
			&r.OutputPath, &r.Rows, &r.Cols, &r.NonZero, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", createdAt, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
