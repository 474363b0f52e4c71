// Package mbqcgen builds deterministic and pseudo-random ograph.Graph
// fixtures for exercising the flow finders/verifiers in property-based
// tests (spec.md §8 item 1: "property-based tests over random small open
// graphs").
//
// It is adapted from the teacher's (lvlath) builder package: the same
// functional-options config (GenOption/genConfig), the same
// one-orchestrator-plus-Constructor-closures shape (BuildGraph), and the
// same sentinel-error catalog style. Everything in the teacher's builder
// that has no graph-flow analogue — vertex ID schemes beyond the default,
// edge weights, Letters/Word/Digit/Number glyph constructors, and the
// Pulse/Chirp/OHLC sequence generators — is dropped; see DESIGN.md for the
// per-file justification.
//
// mbqcgen is test-only scaffolding: it is never used by causalflow,
// gflow, or pauliflow to construct a flow, only by the module-level
// property tests (property_test.go) to generate inputs.
package mbqcgen
