package gf2

import "github.com/katalvlaran/mbqcflow/internal/bitset"

// Matrix is a dense GF(2) matrix, one bitset.Set per row.
//
// Concurrency: Matrix is not safe for concurrent mutation. internal/peel
// builds a new Matrix for every layer step and discards it; Reduce works
// on its own copy of the rows, also allocated afresh on every call.
type Matrix struct {
	rows []*bitset.Set
	cols int
}

// NewMatrix allocates a zero rows x cols GF(2) matrix.
//
// Complexity: O(rows*cols/64).
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	m := &Matrix{rows: make([]*bitset.Set, rows), cols: cols}
	for i := range m.rows {
		m.rows[i] = bitset.New(cols)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Set assigns bit (r,c) to v. Returns ErrOutOfRange for invalid indices.
func (m *Matrix) Set(r, c int, v bool) error {
	if r < 0 || r >= len(m.rows) || c < 0 || c >= m.cols {
		return ErrOutOfRange
	}
	m.rows[r].PutBit(c, v)
	return nil
}

// At returns bit (r,c). Returns ErrOutOfRange for invalid indices.
func (m *Matrix) At(r, c int) (bool, error) {
	if r < 0 || r >= len(m.rows) || c < 0 || c >= m.cols {
		return false, ErrOutOfRange
	}
	return m.rows[r].Test(c), nil
}

// Row exposes row r as a read-only bitset. The returned *bitset.Set aliases
// internal storage; callers must not mutate it, mirroring the teacher's
// "treat returned *Edge as read-only" convention (core/methods_adjacent.go).
func (m *Matrix) Row(r int) (*bitset.Set, error) {
	if r < 0 || r >= len(m.rows) {
		return nil, ErrOutOfRange
	}
	return m.rows[r], nil
}

// SetRow replaces row r with a clone of bits. bits.Len() must equal m.Cols().
func (m *Matrix) SetRow(r int, bits *bitset.Set) error {
	if r < 0 || r >= len(m.rows) {
		return ErrOutOfRange
	}
	if bits.Len() != m.cols {
		return ErrDimensionMismatch
	}
	m.rows[r] = bits.Clone()
	return nil
}
