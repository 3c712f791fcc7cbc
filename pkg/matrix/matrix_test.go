package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from explicit entries for test setup.
func mustMatrix(t *testing.T, rows, cols int, entries map[Index]int64) *Matrix {
	t.Helper()
	m, err := New(rows, cols)
	require.NoError(t, err)
	for idx, v := range entries {
		require.NoError(t, m.Set(idx.Row, idx.Col, v))
	}
	return m
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr error
	}{
		{name: "empty matrix", rows: 0, cols: 0},
		{name: "regular shape", rows: 3, cols: 5},
		{name: "negative rows rejected", rows: -1, cols: 2, wantErr: ErrBadShape},
		{name: "negative cols rejected", rows: 2, cols: -1, wantErr: ErrBadShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.rows, tt.cols)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, m.Rows())
			assert.Equal(t, tt.cols, m.Cols())
			assert.Equal(t, 0, m.NonZero())
		})
	}
}

func TestSetGrowsDimensions(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(5, 3, 7))

	assert.Equal(t, 6, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, int64(7), m.Get(5, 3))
}

func TestSetRejectsNegativeIndex(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set(-1, 0, 1), ErrNegativeIndex)
	assert.ErrorIs(t, m.Set(0, -1, 1), ErrNegativeIndex)
	// Dimensions are untouched by a rejected set.
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

func TestSetOverwritesAndKeepsZero(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 9))
	require.NoError(t, m.Set(1, 1, 0))

	// A stored zero keeps the key present but reads like absence.
	assert.Equal(t, int64(0), m.Get(1, 1))
	assert.Equal(t, 1, m.NonZero())
}

func TestGetOutsideDimensionsReadsZero(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(0), m.Get(10, 10))
	assert.Equal(t, 2, m.Rows(), "get never grows the matrix")
}

func TestAdd(t *testing.T) {
	a := mustMatrix(t, 3, 3, map[Index]int64{{0, 0}: 1, {1, 2}: 4})
	b := mustMatrix(t, 3, 3, map[Index]int64{{0, 0}: 2, {2, 1}: -3})

	sum, err := a.Add(b)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Rows())
	assert.Equal(t, 3, sum.Cols())
	// Every coordinate in the union of key sets holds the element-wise sum.
	assert.Equal(t, int64(3), sum.Get(0, 0))
	assert.Equal(t, int64(4), sum.Get(1, 2))
	assert.Equal(t, int64(-3), sum.Get(2, 1))
	assert.Equal(t, int64(0), sum.Get(1, 1))

	// Operands are untouched.
	assert.Equal(t, int64(1), a.Get(0, 0))
	assert.Equal(t, int64(2), b.Get(0, 0))
}

func TestAddDimensionMismatch(t *testing.T) {
	a := mustMatrix(t, 2, 3, nil)
	b := mustMatrix(t, 3, 3, nil)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSubtractAsymmetry(t *testing.T) {
	// Subtract only writes coordinates stored in the subtrahend. An
	// entry present only in the receiver never reaches the result.
	a := mustMatrix(t, 2, 2, map[Index]int64{{1, 1}: 9, {0, 0}: 5})
	b := mustMatrix(t, 2, 2, map[Index]int64{{0, 0}: 2})

	diff, err := a.Subtract(b)
	require.NoError(t, err)

	assert.Equal(t, int64(3), diff.Get(0, 0))
	assert.Equal(t, int64(0), diff.Get(1, 1), "receiver-only entry is dropped, not copied")
	assert.Equal(t, int64(9), a.Get(1, 1), "receiver is not mutated")
}

func TestSubtractFull(t *testing.T) {
	a := mustMatrix(t, 2, 2, map[Index]int64{{1, 1}: 9, {0, 0}: 5})
	b := mustMatrix(t, 2, 2, map[Index]int64{{0, 0}: 2, {0, 1}: 4})

	diff, err := a.SubtractFull(b)
	require.NoError(t, err)

	assert.Equal(t, int64(3), diff.Get(0, 0))
	assert.Equal(t, int64(9), diff.Get(1, 1), "receiver-only entry survives")
	assert.Equal(t, int64(-4), diff.Get(0, 1), "subtrahend-only entry is negated")
}

func TestSubtractDimensionMismatch(t *testing.T) {
	a := mustMatrix(t, 2, 2, nil)
	b := mustMatrix(t, 2, 3, nil)

	_, err := a.Subtract(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = a.SubtractFull(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMultiply(t *testing.T) {
	// (1×2) × (2×1): [2 3] × [4 5]^T = [2*4 + 3*5] = [23].
	a := mustMatrix(t, 1, 2, map[Index]int64{{0, 0}: 2, {0, 1}: 3})
	b := mustMatrix(t, 2, 1, map[Index]int64{{0, 0}: 4, {1, 0}: 5})

	prod, err := a.Multiply(b)
	require.NoError(t, err)

	assert.Equal(t, 1, prod.Rows())
	assert.Equal(t, 1, prod.Cols())
	assert.Equal(t, int64(23), prod.Get(0, 0))
}

func TestMultiplyDimensionMismatch(t *testing.T) {
	a := mustMatrix(t, 2, 3, nil)
	b := mustMatrix(t, 4, 2, nil)

	_, err := a.Multiply(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMultiplySparseAccumulation(t *testing.T) {
	// Two entries in the same column of a meet two entries in the same
	// row of b; every product lands on a distinct result coordinate.
	a := mustMatrix(t, 2, 2, map[Index]int64{{0, 1}: 3, {1, 1}: -2})
	b := mustMatrix(t, 2, 2, map[Index]int64{{1, 0}: 5, {1, 1}: 7})

	prod, err := a.Multiply(b)
	require.NoError(t, err)

	assert.Equal(t, int64(15), prod.Get(0, 0))
	assert.Equal(t, int64(21), prod.Get(0, 1))
	assert.Equal(t, int64(-10), prod.Get(1, 0))
	assert.Equal(t, int64(-14), prod.Get(1, 1))
}

func TestMultiplyZeroByAnything(t *testing.T) {
	a := mustMatrix(t, 2, 3, nil)
	b := mustMatrix(t, 3, 4, map[Index]int64{{0, 0}: 1})

	prod, err := a.Multiply(b)
	require.NoError(t, err)

	assert.Equal(t, 2, prod.Rows())
	assert.Equal(t, 4, prod.Cols())
	assert.Equal(t, 0, prod.NonZero())
}
