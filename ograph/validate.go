// File: validate.go
// Role: structural precondition checks shared by all three finders/
// verifiers, grounded on swiflow's _common.check_graph/check_planelike
// and on lvlath/dijkstra's "validate every precondition up front, in a
// fixed order, before any algorithmic work begins" style.
package ograph

// CheckGraph validates the structural preconditions common to causal
// flow, gflow, and pflow (spec.md §3): g is non-empty, iset and oset are
// both subsets of g's vertices, and every vertex belongs to V \ (I ∩ O)
// is not required — I and O may overlap per spec.md §3's "I and O need
// not be disjoint".
func CheckGraph(g *Graph, iset, oset VertexSet) error {
	if g.VertexCount() == 0 {
		return NewInvalidInput("graph has no vertices")
	}
	for v := range iset {
		if !g.HasVertex(v) {
			return NewInvalidInput("input set contains vertex not in graph: " + v)
		}
	}
	for v := range oset {
		if !g.HasVertex(v) {
			return NewInvalidInput("output set contains vertex not in graph: " + v)
		}
	}
	return nil
}

// CheckPlanes validates that planes assigns exactly the non-output
// vertices of g (every measured vertex has a plane, and no output vertex
// is assigned one), mirroring swiflow's check_planelike for the gflow
// regime.
func CheckPlanes(g *Graph, oset VertexSet, planes map[string]Plane) error {
	for _, v := range g.Vertices() {
		_, measured := planes[v]
		isOutput := oset.Contains(v)
		if isOutput && measured {
			return NewInvalidInput("output vertex has a measurement plane: " + v)
		}
		if !isOutput && !measured {
			return NewInvalidInput("non-output vertex has no measurement plane: " + v)
		}
	}
	for v := range planes {
		if !g.HasVertex(v) {
			return NewInvalidInput("measurement plane assigned to vertex not in graph: " + v)
		}
	}
	return nil
}

// CheckPPlanes is CheckPlanes's Pauli-flow analogue: pplanes must assign
// exactly the non-output vertices of g, each to a PPlane (plane or
// Pauli-basis).
func CheckPPlanes(g *Graph, oset VertexSet, pplanes map[string]PPlane) error {
	for _, v := range g.Vertices() {
		_, measured := pplanes[v]
		isOutput := oset.Contains(v)
		if isOutput && measured {
			return NewInvalidInput("output vertex has a measurement specification: " + v)
		}
		if !isOutput && !measured {
			return NewInvalidInput("non-output vertex has no measurement specification: " + v)
		}
	}
	for v := range pplanes {
		if !g.HasVertex(v) {
			return NewInvalidInput("measurement specification assigned to vertex not in graph: " + v)
		}
	}
	return nil
}
