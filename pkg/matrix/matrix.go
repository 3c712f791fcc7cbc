package matrix

// Index is the composite coordinate key for a stored entry. Using a
// struct key gives structural equality; coordinates like (1,23) and
// (12,3) can never collide the way concatenated string keys can.
type Index struct {
	Row, Col int
}

// Matrix is a sparse integer matrix. Coordinates without a stored entry
// read as zero. The declared dimensions grow automatically whenever an
// element is set at or beyond the current bounds; they never shrink.
type Matrix struct {
	rows, cols int
	data       map[Index]int64
}

// New creates an empty matrix with the given declared dimensions.
// Returns ErrBadShape if either dimension is negative.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make(map[Index]int64),
	}, nil
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *Matrix) Cols() int { return m.cols }

// NonZero returns the number of stored entries. A stored zero counts;
// it occupies a key even though it reads the same as an absent entry.
func (m *Matrix) NonZero() int { return len(m.data) }

// Set stores v at (r, c), overwriting any prior value. If the
// coordinate lies outside the declared dimensions the matrix grows so
// that r and c become valid. Storing zero keeps the key present.
// Returns ErrNegativeIndex if r or c is negative.
func (m *Matrix) Set(r, c int, v int64) error {
	if r < 0 || c < 0 {
		return ErrNegativeIndex
	}
	m.set(Index{r, c}, v)
	return nil
}

// set grows the dimensions and stores the value. Callers guarantee
// non-negative coordinates.
func (m *Matrix) set(idx Index, v int64) {
	if idx.Row >= m.rows {
		m.rows = idx.Row + 1
	}
	if idx.Col >= m.cols {
		m.cols = idx.Col + 1
	}
	m.data[idx] = v
}

// Get returns the value stored at (r, c), or zero when no entry is
// present. Coordinates outside the declared dimensions are not an
// error; they simply read as zero.
func (m *Matrix) Get(r, c int) int64 {
	return m.data[Index{r, c}]
}

// Add returns the element-wise sum of m and other as a new matrix.
// Returns ErrDimensionMismatch unless both operands have identical
// declared dimensions. Neither operand is mutated.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	out := &Matrix{rows: m.rows, cols: m.cols, data: make(map[Index]int64, len(m.data)+len(other.data))}
	for idx, v := range m.data {
		out.set(idx, v)
	}
	for idx, v := range other.data {
		out.set(idx, out.data[idx]+v)
	}
	return out, nil
}

// Subtract returns m minus other as a new matrix, writing a result
// entry only for coordinates stored in other. An entry present only in
// m is never written and therefore reads back as zero, not as m's own
// value. This asymmetry is the historical contract of the operation;
// use SubtractFull for the variant that covers both key sets.
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	out := &Matrix{rows: m.rows, cols: m.cols, data: make(map[Index]int64, len(other.data))}
	for idx, v := range other.data {
		out.set(idx, m.data[idx]-v)
	}
	return out, nil
}

// SubtractFull returns m minus other over the union of both key sets,
// so entries present only in m survive into the result. This is the
// corrected difference, exposed under its own name rather than
// changing Subtract's contract.
func (m *Matrix) SubtractFull(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrDimensionMismatch
	}
	out := &Matrix{rows: m.rows, cols: m.cols, data: make(map[Index]int64, len(m.data)+len(other.data))}
	for idx, v := range m.data {
		out.set(idx, v-other.data[idx])
	}
	for idx, v := range other.data {
		if _, ok := m.data[idx]; !ok {
			out.set(idx, -v)
		}
	}
	return out, nil
}

// Multiply returns the matrix product of m and other as a new matrix
// of shape (m.Rows, other.Cols). Returns ErrDimensionMismatch unless
// m.Cols equals other.Rows.
//
// The algorithm scans every pair of stored entries and accumulates
// products where the contraction coordinates meet, O(nnz(m) ×
// nnz(other)). Fine for the sparse-but-small inputs this package
// targets.
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}
	out := &Matrix{rows: m.rows, cols: other.cols, data: make(map[Index]int64)}
	for a, va := range m.data {
		for b, vb := range other.data {
			if a.Col == b.Row {
				idx := Index{a.Row, b.Col}
				out.set(idx, out.data[idx]+va*vb)
			}
		}
	}
	return out, nil
}
