package gflow

import (
	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/layer"
	"github.com/katalvlaran/mbqcflow/ograph"
)

func noSpecialEdges(int, int) bool { return false }

// Verify checks that f (with optional lyr, nil to request C6 inference)
// is a valid gflow for g under iset/oset/planes. When ensureOptimal is
// true, the supplied layer must match the maximally-delayed layering
// Find would have produced.
func Verify(f Flow, lyr Layer, g *ograph.Graph, iset, oset ograph.VertexSet, planes map[string]ograph.Plane, ensureOptimal bool) error {
	if err := ograph.CheckGraph(g, iset, oset); err != nil {
		return err
	}
	if err := ograph.CheckPlanes(g, oset, planes); err != nil {
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

	fSets, err := idx.EncodeGFlow(f)
	if err != nil {
		return err
	}

	planeOf := make(map[int]ograph.Plane, len(planes))
	for v, p := range planes {
		vi, perr := idx.Encode(v)
		if perr != nil {
			return perr
		}
		planeOf[vi] = p
	}

	for u := 0; u < n; u++ {
		if osetBits.Test(u) {
			continue
		}
		if _, ok := fSets[u]; !ok {
			return idx.DecodeErr(ograph.NewInvalidFlowDomain(u))
		}
	}
	for u, fu := range fSets {
		if osetBits.Test(u) {
			return idx.DecodeErr(ograph.NewInvalidFlowDomain(u))
		}
		if fu.And(isetBits).PopCount() != 0 {
			return idx.DecodeErr(ograph.NewInvalidFlowCodomain(u))
		}
	}

	odd := make(map[int]*bitset.Set, len(fSets))
	for u, fu := range fSets {
		o := bitset.New(n)
		fu.Each(func(k int) { o.Xor(adj[k]) })
		odd[u] = o
	}

	for u, fu := range fSets {
		plane, ok := planeOf[u]
		if !ok {
			return idx.DecodeErr(ograph.NewInvalidMeasurementSpec(u))
		}
		inF := fu.Test(u)
		inOdd := odd[u].Test(u)
		var axiomOK bool
		switch plane {
		case ograph.PlaneXY:
			axiomOK = !inF && inOdd
		case ograph.PlaneYZ:
			axiomOK = inF && !inOdd
		case ograph.PlaneXZ:
			axiomOK = inF && inOdd
		}
		if !axiomOK {
			return idx.DecodeErr(ograph.NewInconsistentFlowPlane(u, plane))
		}
	}

	var lmap map[int]int
	if lyr == nil {
		lraw, ierr := layer.Infer(n, adj, fSets, osetBits, noSpecialEdges)
		if ierr != nil {
			return ograph.NewInvalidInput(ierr.Error())
		}
		lmap = intSliceToMap(lraw)
	} else {
		lraw, eerr := idx.EncodeLayer(lyr)
		if eerr != nil {
			return eerr
		}
		lmap = intSliceToMap(lraw)
	}

	for u, fu := range fSets {
		corr := fu.Or(odd[u])
		var orderErr error
		corr.Each(func(v int) {
			if v == u || orderErr != nil {
				return
			}
			if lmap[v] >= lmap[u] {
				orderErr = idx.DecodeErr(ograph.NewInconsistentFlowOrder(u, v))
			}
		})
		if orderErr != nil {
			return orderErr
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
		_, optLayer, ok, ferr := Find(g, iset, oset, planes)
		if ferr != nil {
			return ferr
		}
		if !ok {
			return ograph.NewInvalidInput("no gflow exists to compare optimality against")
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

func intSliceToMap(s []int) map[int]int {
	out := make(map[int]int, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
