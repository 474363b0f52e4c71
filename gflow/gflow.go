package gflow

import (
	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/internal/peel"
	"github.com/katalvlaran/mbqcflow/ograph"
)

// Find computes the maximally-delayed gflow for g under iset/oset and
// per-vertex measurement planes, per the backward GF(2) layer
// construction of spec.md §4.4. Returns (flow, layer, true, nil) on
// success, (nil, nil, false, nil) if no gflow exists, or a non-nil error
// if inputs are structurally invalid.
func Find(g *ograph.Graph, iset, oset ograph.VertexSet, planes map[string]ograph.Plane) (Flow, Layer, bool, error) {
	if err := ograph.CheckGraph(g, iset, oset); err != nil {
		return nil, nil, false, err
	}
	if err := ograph.CheckPlanes(g, oset, planes); err != nil {
		return nil, nil, false, err
	}

	idx := ograph.NewIndex(g.Vertices())
	n := idx.Len()
	adj, err := idx.EncodeAdjacency(g)
	if err != nil {
		return nil, nil, false, err
	}
	isetBits, err := idx.EncodeSet(iset)
	if err != nil {
		return nil, nil, false, err
	}
	osetBits, err := idx.EncodeSet(oset)
	if err != nil {
		return nil, nil, false, err
	}

	planeOf := make(map[int]ograph.Plane, len(planes))
	for v, p := range planes {
		vi, perr := idx.Encode(v)
		if perr != nil {
			return nil, nil, false, perr
		}
		planeOf[vi] = p
	}
	// f(u) never contains an input, so a YZ- or XZ-measured input, which
	// must belong to its own correction set, admits no gflow.
	for vi, p := range planeOf {
		if (p == ograph.PlaneYZ || p == ograph.PlaneXZ) && isetBits.Test(vi) {
			return nil, nil, false, nil
		}
	}

	pool := func(solved *bitset.Set) []int {
		correctors := solved.AndNot(isetBits)
		var out []int
		correctors.Each(func(v int) { out = append(out, v) })
		return out
	}
	target := func(u int) bool {
		return planeOf[u] != ograph.PlaneYZ
	}
	needsSelf := func(u int) bool {
		return planeOf[u] == ograph.PlaneYZ || planeOf[u] == ograph.PlaneXZ
	}

	fIdx, layerArr, ok := peel.Run(n, adj, osetBits, pool, target, needsSelf)
	if !ok {
		return nil, nil, false, nil
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
	return flow, layerOut, true, nil
}
