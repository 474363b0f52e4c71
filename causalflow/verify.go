package causalflow

import (
	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/layer"
	"github.com/katalvlaran/mbqcflow/ograph"
)

// noSpecialEdges reports false for every (u,v): causal flow never relaxes
// order constraints (special edges are a pflow-only notion).
func noSpecialEdges(int, int) bool { return false }

// Verify checks that f (with optional layer, which may be nil to request
// C6 inference) is a valid causal flow for g under iset/oset. When
// ensureOptimal is true, the supplied layer must additionally match the
// maximally-delayed layering Find would have produced.
func Verify(f Flow, lyr Layer, g *ograph.Graph, iset, oset ograph.VertexSet, ensureOptimal bool) error {
	if err := ograph.CheckGraph(g, iset, oset); err != nil {
		return err
	}

	idx := ograph.NewIndex(g.Vertices())
	n := idx.Len()
	adj, err := idx.EncodeAdjacency(g)
	if err != nil {
		return err
	}
	isetBits, err := idx.EncodeSet(iset)
	if err != nil {
		return err
	}
	osetBits, err := idx.EncodeSet(oset)
	if err != nil {
		return err
	}

	fi, err := idx.EncodeFlow(f)
	if err != nil {
		return err
	}

	for u, v := range fi {
		if osetBits.Test(u) {
			return idx.DecodeErr(ograph.NewInvalidFlowDomain(u))
		}
		if isetBits.Test(v) || !adj[u].Test(v) {
			return idx.DecodeErr(ograph.NewInvalidFlowCodomain(u))
		}
	}
	for u := 0; u < n; u++ {
		if osetBits.Test(u) {
			continue
		}
		if _, ok := fi[u]; !ok {
			return idx.DecodeErr(ograph.NewInvalidFlowDomain(u))
		}
	}

	fSets := make(map[int]*bitset.Set, len(fi))
	for u, v := range fi {
		fSets[u] = bitset.FromBits(n, v)
	}

	var lmap map[int]int
	if lyr == nil {
		lraw, ierr := layer.Infer(n, adj, fSets, osetBits, noSpecialEdges)
		if ierr != nil {
			return ograph.NewInvalidInput(ierr.Error())
		}
		lmap = make(map[int]int, n)
		for i, l := range lraw {
			lmap[i] = l
		}
	} else {
		lraw, eerr := idx.EncodeLayer(lyr)
		if eerr != nil {
			return eerr
		}
		lmap = make(map[int]int, n)
		for i, l := range lraw {
			lmap[i] = l
		}
	}

	for u, v := range fi {
		if lmap[v] >= lmap[u] {
			return idx.DecodeErr(ograph.NewInconsistentFlowOrder(u, v))
		}
		for w := 0; w < n; w++ {
			if w != u && w != v && adj[v].Test(w) {
				if lmap[w] >= lmap[u] {
					return idx.DecodeErr(ograph.NewInconsistentFlowOrder(u, w))
				}
			}
		}
	}

	for v := 0; v < n; v++ {
		isOutput := osetBits.Test(v)
		if lmap[v] == 0 && !isOutput {
			return idx.DecodeErr(ograph.NewExcessiveZeroLayer(v))
		}
		if lmap[v] != 0 && isOutput {
			return idx.DecodeErr(ograph.NewExcessiveNonZeroLayer(v, lmap[v]))
		}
	}

	if ensureOptimal {
		_, optLayer, ok, ferr := Find(g, iset, oset)
		if ferr != nil {
			return ferr
		}
		if !ok {
			return ograph.NewInvalidInput("no causal flow exists to compare optimality against")
		}
		for vid, l := range optLayer {
			vi, _ := idx.Encode(vid)
			if lmap[vi] != l {
				return idx.DecodeErr(ograph.NewExcessiveNonZeroLayer(vi, lmap[vi]))
			}
		}
	}

	return nil
}
