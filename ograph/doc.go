// Package ograph provides the open-graph carrier type, vertex codec,
// validation, and odd-neighborhood operator shared by causalflow, gflow,
// and pauliflow — the "surrounding machinery... out of scope except as a
// collaborator contract" of spec.md §1.
//
// Graph is a thread-safe, undirected-simple-only graph type adapted from
// the teacher's (lvlath/core) Graph: same sync.RWMutex-per-concern
// locking discipline (muVert guards vertices, muAdj guards adjacency)
// and the same deterministic sorted-order contract on every
// read method, but with the directed/weighted/multi-edge/loop option
// surface removed — an MBQC open graph is always undirected and simple
// (spec.md §3), so exposing those knobs would just let callers construct
// inputs the core rejects.
//
// Index is the dense [0,n) codec of design note §9, grounded on
// swiflow's IndexMap: vertex identities are arbitrary strings at the
// boundary, sorted into indices once per call (strings are always
// orderable in Go, so the "otherwise preserves first-seen order" branch
// of the design note never triggers here — documented as such).
//
// FlowError implements the eight-kind error taxonomy of spec.md §7 as a
// tagged Go struct (design note §9: "implement as sum types, not string
// tags"), and Index.DecodeErr rewrites an error's internal vertex index back
// to the caller's original identity before it crosses the package
// boundary, mirroring swiflow's IndexMap.decode_err/ecatch (see
// SPEC_FULL.md's SUPPLEMENT section).
package ograph
