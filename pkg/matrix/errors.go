package matrix

import "errors"

// Errors returned by construction, element access, and the binary
// operations. Callers match with errors.Is; the codec wraps ErrFormat
// and ErrNotFound with the offending line or path.
var (
	// ErrBadShape is returned when a matrix is constructed with a
	// negative row or column count.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNegativeIndex is returned by Set for a negative row or column.
	ErrNegativeIndex = errors.New("matrix: negative index")

	// ErrDimensionMismatch indicates incompatible operand shapes:
	// Add and Subtract require equal dimensions, Multiply requires the
	// left column count to equal the right row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrFormat indicates a malformed matrix file: a missing dimension
	// header, a non-integer field, or an element line that is not a
	// parenthesized triple.
	ErrFormat = errors.New("matrix: invalid format")

	// ErrNotFound indicates the matrix file does not exist.
	ErrNotFound = errors.New("matrix: file not found")
)
