package gflow

import "github.com/katalvlaran/mbqcflow/ograph"

// Flow is a generalized-flow correction map, f: V\O → P(V\I), subset-valued.
type Flow map[string]ograph.VertexSet

// Layer is a vertex-to-depth map, ℓ: V → ℕ, with ℓ(u)=0 ⇔ u ∈ O.
type Layer map[string]int
