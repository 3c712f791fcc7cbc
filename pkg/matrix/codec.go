// Text interchange format for sparse matrices.
//
// A matrix file holds two dimension lines followed by one line per
// stored entry:
//
//	rows=3
//	cols=4
//	(0, 1, 5)
//	(2, 3, -7)
//
// Lines are trimmed and blank lines are skipped on read.
package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Decode reads a matrix from r in the text format. It returns ErrFormat
// (wrapped with the offending line) for malformed input and ErrBadShape
// for a negative dimension header.
func Decode(r io.Reader) (*Matrix, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading matrix: %w", err)
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: must contain at least two lines for dimensions", ErrFormat)
	}
	rows, err := parseDimension(lines[0])
	if err != nil {
		return nil, err
	}
	cols, err := parseDimension(lines[1])
	if err != nil {
		return nil, err
	}

	m, err := New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrBadShape, rows, cols)
	}
	for _, line := range lines[2:] {
		r, c, v, err := parseEntry(line)
		if err != nil {
			return nil, err
		}
		// Set grows the matrix, so an entry beyond the declared
		// dimensions enlarges it rather than erroring.
		if err := m.Set(r, c, v); err != nil {
			return nil, fmt.Errorf("%w: element line %q", ErrFormat, line)
		}
	}
	return m, nil
}

// parseDimension extracts the integer after the first "=" in a header
// line such as "rows=3". The key name itself is not inspected, matching
// the historical reader.
func parseDimension(line string) (int, error) {
	parts := strings.Split(line, "=")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: dimension line %q", ErrFormat, line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: dimension line %q", ErrFormat, line)
	}
	return n, nil
}

// parseEntry parses an element line of the exact shape "(r, c, v)".
func parseEntry(line string) (r, c int, v int64, err error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return 0, 0, 0, fmt.Errorf("%w: element line %q", ErrFormat, line)
	}
	fields := strings.Split(line[1:len(line)-1], ",")
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: element line %q", ErrFormat, line)
	}
	r, err = strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: element line %q", ErrFormat, line)
	}
	c, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: element line %q", ErrFormat, line)
	}
	v, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: element line %q", ErrFormat, line)
	}
	return r, c, v, nil
}

// Encode writes m to w in the text format. Entries are emitted in
// row-major order so output is deterministic across runs.
func Encode(m *Matrix, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "rows=%d\n", m.rows)
	fmt.Fprintf(bw, "cols=%d\n", m.cols)

	keys := make([]Index, 0, len(m.data))
	for idx := range m.data {
		keys = append(keys, idx)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row != keys[j].Row {
			return keys[i].Row < keys[j].Row
		}
		return keys[i].Col < keys[j].Col
	})
	for _, idx := range keys {
		fmt.Fprintf(bw, "(%d, %d, %d)\n", idx.Row, idx.Col, m.data[idx])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing matrix: %w", err)
	}
	return nil
}

// ReadFile loads a matrix from the file at path. A missing file returns
// ErrNotFound wrapped with the path; malformed content returns the
// Decode errors wrapped with the path.
func ReadFile(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// WriteFile writes m to the file at path, creating or truncating it.
func WriteFile(m *Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(m, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
