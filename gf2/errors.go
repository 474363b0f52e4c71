package gf2

import "errors"

// Sentinel errors for gf2, in the teacher's (lvlath/matrix) errors.go
// convention: package-prefixed, checked via errors.Is, never wrapped with
// %w for the sentinel itself.
var (
	// ErrBadShape is returned when a requested matrix shape is invalid
	// (rows or cols <= 0).
	ErrBadShape = errors.New("gf2: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates a row whose length differs from the
	// matrix's column count (Matrix.SetRow). Solve reports a row-count
	// mismatch between A and B as (nil, false) instead.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")
)
