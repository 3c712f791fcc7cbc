// Package matrix implements a sparse integer matrix stored as a mapping
// from (row, col) coordinates to nonzero values, together with a plain-text
// interchange format.
//
// A Matrix carries declared dimensions that grow automatically when an
// element is set outside the current bounds. Addition, subtraction, and
// multiplication allocate fresh result matrices and never mutate their
// operands. Values are int64 and overflow wraps, as Go arithmetic does.
package matrix
