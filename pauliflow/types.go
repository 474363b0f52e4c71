package pauliflow

import "github.com/katalvlaran/mbqcflow/ograph"

// Flow is a Pauli-flow correction map, f: V\O → P(V\I), subset-valued.
type Flow map[string]ograph.VertexSet

// Layer is a vertex-to-depth map, ℓ: V → ℕ, with ℓ(u)=0 ⇔ u ∈ O.
type Layer map[string]int

// Advisory is a non-fatal diagnostic returned alongside a successful
// Find/Verify call. Its only current producer is the "no Pauli
// measurement present" notice (spec.md §6).
type Advisory struct {
	Message string
}

var noPauliMeasurementAdvisory = &Advisory{
	Message: "no Pauli measurement found; consider using gflow directly",
}
