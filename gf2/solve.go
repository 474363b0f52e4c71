package gf2

import "github.com/katalvlaran/mbqcflow/internal/bitset"

// Reduction is the deterministic row-echelon reduction of a fixed
// coefficient matrix A, together with the elementary row transform that
// produced it. Computing a Reduction once and calling SolveColumn many
// times avoids re-running elimination per right-hand side: the transform
// lets each new column be mapped into the reduced basis by a handful of
// GF(2) dot products. Each SolveColumn call still allocates its
// transformed right-hand side and its solution vector.
type Reduction struct {
	reduced    []*bitset.Set // row-echelon form of A, one row per original row
	transform  []*bitset.Set // transform[i] records which original rows XOR to reduced[i]
	pivotOfRow []int         // pivotOfRow[i] = pivot column of reduced[i], or -1
	nRows      int
	nCols      int
}

// Reduce computes the deterministic GF(2) row reduction of a.
//
// Pivoting is deterministic: columns are scanned left to right; for each
// column the lowest-index available row with a set bit becomes the pivot
// (spec.md §4.1, "pivot selection deterministic (lowest row index, then
// lowest column)"). Full reduction (not just downward elimination) is
// performed so back-substitution in SolveColumn needs no second pass.
//
// Complexity: O(nRows^2 * nCols / 64) — the elimination itself is
// O(nRows*nCols/64) words touched per pivot, times up to min(nRows,nCols)
// pivots, plus O(nRows^2/64) to carry the transform.
func Reduce(a *Matrix) *Reduction {
	nRows, nCols := a.Rows(), a.Cols()
	reduced := make([]*bitset.Set, nRows)
	transform := make([]*bitset.Set, nRows)
	for i := 0; i < nRows; i++ {
		row, _ := a.Row(i)
		reduced[i] = row.Clone()
		transform[i] = bitset.New(nRows)
		transform[i].SetBit(i)
	}
	pivotOfRow := make([]int, nRows)
	for i := range pivotOfRow {
		pivotOfRow[i] = -1
	}

	pivotRow := 0
	for col := 0; col < nCols && pivotRow < nRows; col++ {
		sel := -1
		for r := pivotRow; r < nRows; r++ {
			if reduced[r].Test(col) {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		reduced[pivotRow], reduced[sel] = reduced[sel], reduced[pivotRow]
		transform[pivotRow], transform[sel] = transform[sel], transform[pivotRow]

		for r := 0; r < nRows; r++ {
			if r != pivotRow && reduced[r].Test(col) {
				reduced[r].Xor(reduced[pivotRow])
				transform[r].Xor(transform[pivotRow])
			}
		}
		pivotOfRow[pivotRow] = col
		pivotRow++
	}

	return &Reduction{
		reduced:    reduced,
		transform:  transform,
		pivotOfRow: pivotOfRow,
		nRows:      nRows,
		nCols:      nCols,
	}
}

// Rank returns the number of pivot rows found during reduction.
func (red *Reduction) Rank() int {
	n := 0
	for _, p := range red.pivotOfRow {
		if p != -1 {
			n++
		}
	}
	return n
}

// SolveColumn solves A·x = b for a single right-hand-side column b
// (b.Len() must equal the original A's row count), reusing this
// Reduction's transform. Free variables (columns with no pivot row) are
// left at 0, matching spec.md §4.1's "free variables set to 0".
//
// Returns (x, true) if a solution exists, or (nil, false) if b is
// inconsistent with the reduced system.
func (red *Reduction) SolveColumn(b *bitset.Set) (*bitset.Set, bool) {
	if b.Len() != red.nRows {
		panic("gf2: rhs length mismatch")
	}

	// Apply the recorded row transform to b: bp[i] = <transform[i], b>.
	bp := bitset.New(red.nRows)
	for i := 0; i < red.nRows; i++ {
		bp.PutBit(i, red.transform[i].DotParity(b))
	}

	// Any all-zero reduced row whose transformed rhs bit is set makes the
	// system inconsistent for this column.
	for i := 0; i < red.nRows; i++ {
		if red.pivotOfRow[i] == -1 && bp.Test(i) {
			return nil, false
		}
	}

	x := bitset.New(red.nCols)
	for i := 0; i < red.nRows; i++ {
		if red.pivotOfRow[i] != -1 && bp.Test(i) {
			x.SetBit(red.pivotOfRow[i])
		}
	}
	return x, true
}

// Solve computes some X with A*X = B, solving each column of B
// independently against a single reduction of A (spec.md §4.1: "Columns
// are solved independently; particular solutions suffice"). It returns
// (nil, false) if any single column of B has no solution, matching the
// literal "None if infeasible for any column" contract; callers needing
// per-column results for a batch where some columns may fail (the
// gflow/pauliflow layer step) should call Reduce once and then
// Reduction.SolveColumn per column instead.
func Solve(a, b *Matrix) (*Matrix, bool) {
	if a.Rows() != b.Rows() {
		return nil, false
	}
	red := Reduce(a)
	out, err := NewMatrix(a.Cols(), b.Cols())
	if err != nil {
		// b has zero columns or a has zero columns; treat as vacuously solved.
		out = &Matrix{rows: nil, cols: b.Cols()}
	}
	for c := 0; c < b.Cols(); c++ {
		col := bitset.New(b.Rows())
		for r := 0; r < b.Rows(); r++ {
			v, _ := b.At(r, c)
			col.PutBit(r, v)
		}
		x, ok := red.SolveColumn(col)
		if !ok {
			return nil, false
		}
		for r := 0; r < a.Cols(); r++ {
			_ = out.Set(r, c, x.Test(r))
		}
	}
	return out, true
}
