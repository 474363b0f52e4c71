// Package layer implements C6, reconstruction of a valid (not necessarily
// maximally-delayed) layering from a flow that was supplied without one
// (spec.md §4.6). It is shared by all three Verify entry points when the
// caller omits the layer.
//
// Infer builds the directed "must-precede" graph D (edge u→v iff v is in
// u's correction-or-odd-neighborhood set, minus special edges) and peels
// it Kahn-style from the outputs backward, grounded on swiflow's
// _infer_layers_impl worklist-peel shape. Per design note §9's resolved
// open question, special edges are honored during inference exactly as
// during verification — the same predicate is used in both places.
package layer
