// Package peel implements the backward GF(2)-solved layer-construction
// loop shared by gflow (C4) and pauliflow (C5), grounded on spec.md
// §4.4/§4.5's "Backward layer construction by GF(2) solving" and
// architecturally on lvlath/matrix/ops's "share the elimination core,
// vary the caller" factoring (matrix/ops splits lu.go/qr.go around one
// dense.Matrix core the way gflow/pauliflow vary around this one loop).
//
// Run drives the per-round matrix assembly (rows = unsolved candidates,
// cols = correctors) and batches gf2.Reduce + SolveColumn exactly once
// per round, reusing the reduction across every candidate column in that
// round per the C1 contract (gf2/solve.go). Plane/Pauli dispatch is
// injected by the caller via three small functions (CorrectorPool,
// RowTarget, NeedsSelf) rather than hard-coded, so gflow and pauliflow
// share the loop while differing only in corrector-pool membership and
// per-plane RHS construction.
package peel
