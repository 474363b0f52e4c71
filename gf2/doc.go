// Package gf2 implements dense boolean (GF(2)) matrices and a deterministic
// linear solver, the C1 component of the mbqcflow design: solving
// A·x = b for many right-hand sides b sharing the same A, which is the
// inner loop of both the generalized-flow (gflow) and Pauli-flow (pflow)
// finders — each backward layer step builds one coefficient matrix Γ from
// the graph adjacency and solves it against one right-hand-side column per
// candidate vertex.
//
// Architecture is grounded on the teacher's (lvlath/matrix) dense-matrix
// package — row-major storage, a thin Matrix type with At/Set accessors,
// and a separate elimination routine mirroring matrix/ops/lu.go's
// Doolittle-decomposition shape — rewritten for GF(2) (XOR addition, AND
// multiplication) instead of float64, since LU/QR/eigen/Floyd–Warshall
// have no meaningful GF(2) analogue (see DESIGN.md).
//
// Addition is XOR, multiplication is AND. Gaussian elimination uses
// deterministic pivoting: for each column left-to-right, the lowest-index
// available row becomes the pivot (matching spec.md §4.1's "pivot
// selection deterministic (lowest row index, then lowest column)"). Free
// variables are left at 0. A Reduction computed once from A is reused,
// without per-column allocation of the working matrix, to solve any number
// of right-hand-side columns — this is what lets gflow/pauliflow solve an
// entire layer's worth of candidates against one Γ in a single pass.
package gf2
