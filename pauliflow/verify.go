package pauliflow

import (
	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/layer"
	"github.com/katalvlaran/mbqcflow/ograph"
)

// Verify checks that f (with optional lyr, nil to request C6 inference)
// is a valid Pauli flow for g under iset/oset/pplanes. When ensureOptimal
// is true, the supplied layer must match the maximally-delayed layering
// Find would have produced. The returned Advisory mirrors Find's: set
// when pplanes contains no X/Y/Z entries.
func Verify(f Flow, lyr Layer, g *ograph.Graph, iset, oset ograph.VertexSet, pplanes map[string]ograph.PPlane, ensureOptimal bool) (*Advisory, error) {
	if err := ograph.CheckGraph(g, iset, oset); err != nil {
		return nil, err
	}
	if err := ograph.CheckPPlanes(g, oset, pplanes); err != nil {
		return nil, err
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
		return advisory, err
	}
	isetBits, err := idx.EncodeSet(iset)
	if err != nil {
		return advisory, err
	}
	osetBits, err := idx.EncodeSet(oset)
	if err != nil {
		return advisory, err
	}
	fSets, err := idx.EncodeGFlow(f)
	if err != nil {
		return advisory, err
	}

	pplaneOf := make(map[int]ograph.PPlane, len(pplanes))
	for v, p := range pplanes {
		vi, perr := idx.Encode(v)
		if perr != nil {
			return advisory, perr
		}
		pplaneOf[vi] = p
	}

	for u := 0; u < n; u++ {
		if osetBits.Test(u) {
			continue
		}
		if _, ok := fSets[u]; !ok {
			return advisory, idx.DecodeErr(ograph.NewInvalidFlowDomain(u))
		}
	}
	for u, fu := range fSets {
		if osetBits.Test(u) {
			return advisory, idx.DecodeErr(ograph.NewInvalidFlowDomain(u))
		}
		if fu.And(isetBits).PopCount() != 0 {
			return advisory, idx.DecodeErr(ograph.NewInvalidFlowCodomain(u))
		}
	}

	odd := make(map[int]*bitset.Set, len(fSets))
	for u, fu := range fSets {
		o := bitset.New(n)
		fu.Each(func(k int) { o.Xor(adj[k]) })
		odd[u] = o
	}

	for u, fu := range fSets {
		p, ok := pplaneOf[u]
		if !ok {
			return advisory, idx.DecodeErr(ograph.NewInvalidMeasurementSpec(u))
		}
		inF := fu.Test(u)
		inOdd := odd[u].Test(u)
		var axiomOK bool
		switch p {
		case ograph.PPlaneXY:
			axiomOK = !inF && inOdd
		case ograph.PPlaneYZ:
			axiomOK = inF && !inOdd
		case ograph.PPlaneXZ:
			axiomOK = inF && inOdd
		case ograph.PPlaneX:
			axiomOK = inOdd
		case ograph.PPlaneY:
			axiomOK = inF != inOdd
		case ograph.PPlaneZ:
			axiomOK = inF
		}
		if !axiomOK {
			return advisory, idx.DecodeErr(ograph.NewInconsistentFlowPPlane(u, p))
		}
	}

	special := specialEdgeFunc(fSets, odd, pplaneOf)

	var lmap map[int]int
	if lyr == nil {
		lraw, ierr := layer.Infer(n, adj, fSets, osetBits, special)
		if ierr != nil {
			return advisory, ograph.NewInvalidInput(ierr.Error())
		}
		lmap = intSliceToMap(lraw)
	} else {
		lraw, eerr := idx.EncodeLayer(lyr)
		if eerr != nil {
			return advisory, eerr
		}
		lmap = intSliceToMap(lraw)
	}

	for u, fu := range fSets {
		corr := fu.Or(odd[u])
		var orderErr error
		corr.Each(func(v int) {
			if v == u || orderErr != nil || special(u, v) {
				return
			}
			if lmap[v] >= lmap[u] {
				orderErr = idx.DecodeErr(ograph.NewInconsistentFlowOrder(u, v))
			}
		})
		if orderErr != nil {
			return advisory, orderErr
		}
	}

	for v := 0; v < n; v++ {
		isOutput := osetBits.Test(v)
		if lmap[v] == 0 && !isOutput {
			return advisory, idx.DecodeErr(ograph.NewExcessiveZeroLayer(v))
		}
		if lmap[v] != 0 && isOutput {
			return advisory, idx.DecodeErr(ograph.NewExcessiveNonZeroLayer(v, lmap[v]))
		}
	}

	if ensureOptimal {
		_, optLayer, ok, _, ferr := Find(g, iset, oset, pplanes)
		if ferr != nil {
			return advisory, ferr
		}
		if !ok {
			return advisory, ograph.NewInvalidInput("no pflow exists to compare optimality against")
		}
		for vid, l := range optLayer {
			vi, _ := idx.Encode(vid)
			if lmap[vi] != l {
				return advisory, idx.DecodeErr(ograph.NewExcessiveNonZeroLayer(vi, lmap[vi]))
			}
		}
	}

	return advisory, nil
}

func intSliceToMap(s []int) map[int]int {
	out := make(map[int]int, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
