// Package mbqcflow computes and verifies maximally-delayed flows on open
// graphs arising in Measurement-Based Quantum Computing (MBQC).
//
// Given an undirected simple graph with designated input and output
// vertex sets and a per-vertex measurement specification, the library
// decides whether a causal flow, a generalized flow (gflow), or a Pauli
// flow (pflow) exists and, if so, returns one whose induced partial order
// has the minimum possible depth (§1).
//
// The module is organized as a set of small, single-purpose packages
// rather than one flat package, mirroring how the teacher (lvlath) splits
// core/matrix/algorithms:
//
//	ograph/     — open-graph carrier type, vertex<->index codec, Odd(K),
//	              measurement-plane enums, and the shared FlowError taxonomy.
//	gf2/        — dense GF(2) matrix and Gaussian-elimination solver.
//	internal/
//	  bitset/   — word-packed boolean vector primitive shared by every package.
//	  peel/     — the backward layer-peeling loop shared by gflow and pauliflow.
//	causalflow/ — Mhalla-Perdrix maximally-delayed causal-flow finder/verifier.
//	gflow/      — Backens et al. generalized-flow finder/verifier.
//	pauliflow/  — Simmons Pauli-flow finder/verifier with special-edge relaxation.
//	layer/      — Kahn-style layer reconstruction for a flow supplied without one.
//	mbqcgen/    — deterministic and pseudo-random open-graph fixtures, used
//	              only by _test.go files to drive property-based tests.
//
// Every package is a collection of pure functions over immutable inputs:
// no files, sockets, environment variables, or global state (§5-§6).
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// requirements document and the grounding ledger behind each package.
package mbqcflow
