// Package gflow implements C4, the generalized-flow (gflow) finder and
// verifier: a subset-valued correction function over plane measurements
// {XY, YZ, XZ} (spec.md §4.4). Find drives internal/peel's backward
// GF(2)-solved layer construction with a plane-aware corrector pool and
// per-plane right-hand-side construction; Verify evaluates the
// correction axioms against Odd(f(u)), folded from the packed adjacency,
// and, when the layer is omitted, reconstructs one via package layer.
package gflow
