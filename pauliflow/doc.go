// Package pauliflow implements C5, the Pauli-flow (pflow) finder and
// verifier: gflow extended to Pauli-basis measurements {X, Y, Z} with
// special-edge order relaxation (spec.md §4.5, Simmons 2021). Find
// extends internal/peel's corrector pool with not-yet-solved
// Pauli-measured vertices ("corrected in place"); Verify constructs the
// special-edge set first, then checks axioms and order compatibility
// against it, falling back to package layer for inference when no
// layer is supplied.
//
// A pflow call whose measurement map contains no X/Y/Z entries is
// mathematically just a gflow call in disguise; Find still answers it
// but also returns a non-fatal Advisory recommending package gflow
// directly (spec.md §6, grounded on swiflow's pflow.find warning when no
// Pauli measurement is present).
package pauliflow
