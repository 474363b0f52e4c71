package causalflow

import (
	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/ograph"
)

// Flow is a causal-flow correction map, f: V\O → V\I, singleton-valued.
type Flow map[string]string

// Layer is a vertex-to-depth map, ℓ: V → ℕ, with ℓ(u)=0 ⇔ u ∈ O.
type Layer map[string]int

// Find computes the maximally-delayed causal flow for the open graph g
// with inputs iset and outputs oset, per the Mhalla-Perdrix peel
// (spec.md §4.3). It returns (flow, layer, true, nil) on success,
// (nil, nil, false, nil) if no causal flow exists, or a non-nil error if
// the inputs are structurally invalid.
func Find(g *ograph.Graph, iset, oset ograph.VertexSet) (Flow, Layer, bool, error) {
	if err := ograph.CheckGraph(g, iset, oset); err != nil {
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

	solved := osetBits.Clone()
	layer := make([]int, n)
	for i := range layer {
		layer[i] = -1
	}
	osetBits.Each(func(v int) { layer[v] = 0 })

	cand := osetBits.AndNot(isetBits)
	f := make(map[int]int, n)

	k := 0
	for {
		next := bitset.New(n)
		claimed := bitset.New(n)

		for v := 0; v < n; v++ {
			if !cand.Test(v) {
				continue
			}
			pending := adj[v].AndNot(solved)
			if pending.PopCount() != 1 {
				continue
			}
			var u int
			pending.Each(func(i int) { u = i })
			if next.Test(u) {
				continue
			}
			f[u] = v
			claimed.SetBit(v)
			next.SetBit(u)
			layer[u] = k + 1
		}

		if next.IsZero() {
			break
		}
		next.Each(func(v int) { solved.SetBit(v) })
		cand = cand.AndNot(claimed)
		next.Each(cand.SetBit)
		cand = cand.AndNot(isetBits)
		k++
	}

	if solved.PopCount() != n {
		return nil, nil, false, nil
	}

	flow := make(Flow, len(f))
	layerOut := make(Layer, n)
	for u, v := range f {
		flow[idx.Decode(u)] = idx.Decode(v)
	}
	for i, l := range layer {
		layerOut[idx.Decode(i)] = l
	}
	return flow, layerOut, true, nil
}
