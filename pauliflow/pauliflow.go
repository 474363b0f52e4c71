package pauliflow

import (
	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/internal/peel"
	"github.com/katalvlaran/mbqcflow/ograph"
)

// Find computes the maximally-delayed Pauli flow for g under
// iset/oset/pplanes, per the pool-extended backward GF(2) layer
// construction of spec.md §4.5. Returns (flow, layer, true, advisory,
// nil) on success — advisory is non-nil only when pplanes contains no
// X/Y/Z entries — (nil, nil, false, advisory, nil) if no pflow exists, or a
// non-nil error if inputs are structurally invalid.
func Find(g *ograph.Graph, iset, oset ograph.VertexSet, pplanes map[string]ograph.PPlane) (Flow, Layer, bool, *Advisory, error) {
	if err := ograph.CheckGraph(g, iset, oset); err != nil {
		return nil, nil, false, nil, err
	}
	if err := ograph.CheckPPlanes(g, oset, pplanes); err != nil {
		return nil, nil, false, nil, err
	}

	var advisory *Advisory
	hasPauli := false
	for _, p := range pplanes {
		if p.IsPauli() {
			hasPauli = true
			break
		}
	}
	if !hasPauli {
		advisory = noPauliMeasurementAdvisory
	}

	idx := ograph.NewIndex(g.Vertices())
	n := idx.Len()
	adj, err := idx.EncodeAdjacency(g)
	if err != nil {
		return nil, nil, false, nil, err
	}
	isetBits, err := idx.EncodeSet(iset)
	if err != nil {
		return nil, nil, false, nil, err
	}
	osetBits, err := idx.EncodeSet(oset)
	if err != nil {
		return nil, nil, false, nil, err
	}

	pplaneOf := make(map[int]ograph.PPlane, len(pplanes))
	for v, p := range pplanes {
		vi, perr := idx.Encode(v)
		if perr != nil {
			return nil, nil, false, nil, perr
		}
		pplaneOf[vi] = p
	}

	pauliVertex := bitset.New(n)
	for vi, p := range pplaneOf {
		if p.IsPauli() {
			pauliVertex.SetBit(vi)
		}
	}
	// f(u) never contains an input, so an input measured in YZ, XZ or Z,
	// which must belong to its own correction set, admits no pflow.
	for vi, p := range pplaneOf {
		if (p == ograph.PPlaneYZ || p == ograph.PPlaneXZ || p == ograph.PPlaneZ) && isetBits.Test(vi) {
			return nil, nil, false, advisory, nil
		}
	}

	pool := func(solved *bitset.Set) []int {
		correctors := solved.AndNot(isetBits)
		unsolvedPauli := pauliVertex.AndNot(solved).AndNot(isetBits)
		correctors = correctors.Or(unsolvedPauli)
		var out []int
		correctors.Each(func(v int) { out = append(out, v) })
		return out
	}
	// Z leaves u's Odd(f(u)) membership unconstrained by the correction
	// axiom; the round's linear solve still needs one concrete target
	// bit per row, so Z shares YZ's false (u not in Odd(f(u))),
	// which is always an admissible specialization of "unconstrained".
	target := func(u int) bool {
		switch pplaneOf[u] {
		case ograph.PPlaneYZ, ograph.PPlaneZ:
			return false
		default: // XY, XZ, X, Y
			return true
		}
	}
	needsSelf := func(u int) bool {
		switch pplaneOf[u] {
		case ograph.PPlaneYZ, ograph.PPlaneXZ, ograph.PPlaneZ:
			return true
		default:
			return false
		}
	}

	fIdx, layerArr, ok := peel.Run(n, adj, osetBits, pool, target, needsSelf)
	if !ok {
		return nil, nil, false, advisory, nil
	}

	flow := make(Flow, len(fIdx))
	for u, fu := range fIdx {
		vs := make(ograph.VertexSet, fu.PopCount())
		fu.Each(func(v int) { vs[idx.Decode(v)] = struct{}{} })
		flow[idx.Decode(u)] = vs
	}
	layerOut := make(Layer, n)
	for i, l := range layerArr {
		layerOut[idx.Decode(i)] = l
	}
	return flow, layerOut, true, advisory, nil
}
