// Package causalflow implements the Mhalla-Perdrix maximally-delayed
// causal-flow finder and its verifier (spec.md §4.3), the weakest of the
// three flow regimes: a singleton-valued correction function f: V\O → V\I
// with {u, f(u)} ∈ E.
//
// Find drives the linear-time peel directly against ograph's packed
// adjacency (no GF(2) solving is needed for this regime — each step
// looks for a corrector candidate with exactly one unsolved neighbor,
// not a linear system). Verify checks that f(u) is a non-input neighbor
// of u and that f(u) and every other vertex of Odd({f(u)}) = N(f(u))
// lie in an earlier layer than u, reading the packed adjacency directly,
// optionally against a freshly peeled layering when ensureOptimal is
// requested.
package causalflow
