// File: index.go
// Role: two-way vertex identity <-> dense [0,n) index codec (C1-C6's
// shared "collaborator contract" of spec.md §1/§9), grounded on
// swiflow's _common.IndexMap.
package ograph

import (
	"sort"

	"github.com/katalvlaran/mbqcflow/internal/bitset"
)

// Index maps a fixed vertex set to dense indices [0,n).
//
// Vertex IDs are Go strings, which are always orderable, so Index always
// sorts — the "otherwise preserves first-seen order" branch of design
// note §9 (needed in the Python reference for possibly-unorderable
// Hashable keys) never triggers for this module's string-keyed boundary
// and is documented here rather than implemented as dead code.
type Index struct {
	i2v []string
	v2i map[string]int
}

// NewIndex builds an Index over vset, sorted lexically.
//
// Complexity: O(n log n).
func NewIndex(vset []string) *Index {
	i2v := make([]string, len(vset))
	copy(i2v, vset)
	sort.Strings(i2v)
	v2i := make(map[string]int, len(i2v))
	for i, v := range i2v {
		v2i[v] = i
	}
	return &Index{i2v: i2v, v2i: v2i}
}

// Len returns the number of indexed vertices.
func (idx *Index) Len() int { return len(idx.i2v) }

// Encode returns v's index. Returns ErrVertexNotFound if v was not in the
// set passed to NewIndex.
func (idx *Index) Encode(v string) (int, error) {
	i, ok := idx.v2i[v]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return i, nil
}

// Decode returns the vertex at index i. Panics if i is out of range — a
// caller-internal invariant violation, not a user-facing error (indices
// are only ever handed out by Encode/EncodeSet, never supplied by
// callers directly).
func (idx *Index) Decode(i int) string {
	return idx.i2v[i]
}

// EncodeSet encodes a VertexSet into a bitset over [0,n). Returns
// ErrVertexNotFound if any member is unindexed.
func (idx *Index) EncodeSet(vs VertexSet) (*bitset.Set, error) {
	out := bitset.New(idx.Len())
	for v := range vs {
		i, err := idx.Encode(v)
		if err != nil {
			return nil, err
		}
		out.SetBit(i)
	}
	return out, nil
}

// DecodeSet decodes a bitset back into a VertexSet.
func (idx *Index) DecodeSet(bs *bitset.Set) VertexSet {
	out := make(VertexSet, bs.PopCount())
	bs.Each(func(i int) { out[idx.i2v[i]] = struct{}{} })
	return out
}

// EncodeAdjacency builds the packed adjacency (one bitset per vertex,
// indexed by this Index) from g. g must contain exactly the vertices this
// Index was built from (callers build the Index from g.Vertices()).
//
// Complexity: O(V + E).
func (idx *Index) EncodeAdjacency(g *Graph) ([]*bitset.Set, error) {
	n := idx.Len()
	adj := make([]*bitset.Set, n)
	for i := range adj {
		adj[i] = bitset.New(n)
	}
	for i, v := range idx.i2v {
		neighbors, err := g.NeighborIDs(v)
		if err != nil {
			return nil, err
		}
		for _, u := range neighbors {
			j, err := idx.Encode(u)
			if err != nil {
				return nil, err
			}
			adj[i].SetBit(j)
		}
	}
	return adj, nil
}

// EncodeFlow encodes a causal-flow map (singleton-valued) into index
// space. Returns ErrVertexNotFound if a key or value is unindexed.
func (idx *Index) EncodeFlow(f map[string]string) (map[int]int, error) {
	out := make(map[int]int, len(f))
	for u, v := range f {
		ui, err := idx.Encode(u)
		if err != nil {
			return nil, err
		}
		vi, err := idx.Encode(v)
		if err != nil {
			return nil, err
		}
		out[ui] = vi
	}
	return out, nil
}

// DecodeFlow is EncodeFlow's inverse.
func (idx *Index) DecodeFlow(f map[int]int) map[string]string {
	out := make(map[string]string, len(f))
	for ui, vi := range f {
		out[idx.Decode(ui)] = idx.Decode(vi)
	}
	return out
}

// EncodeGFlow encodes a subset-valued flow map (gflow/pflow) into index
// space.
func (idx *Index) EncodeGFlow(f map[string]VertexSet) (map[int]*bitset.Set, error) {
	out := make(map[int]*bitset.Set, len(f))
	for u, fu := range f {
		ui, err := idx.Encode(u)
		if err != nil {
			return nil, err
		}
		bs, err := idx.EncodeSet(fu)
		if err != nil {
			return nil, err
		}
		out[ui] = bs
	}
	return out, nil
}

// DecodeGFlow is EncodeGFlow's inverse.
func (idx *Index) DecodeGFlow(f map[int]*bitset.Set) map[string]VertexSet {
	out := make(map[string]VertexSet, len(f))
	for ui, bs := range f {
		out[idx.Decode(ui)] = idx.DecodeSet(bs)
	}
	return out
}

// EncodeLayer encodes a layer map. Every indexed vertex must have an
// entry — matching swiflow's IndexMap.encode_layer ("no missing values
// are allowed here").
func (idx *Index) EncodeLayer(layer map[string]int) ([]int, error) {
	out := make([]int, idx.Len())
	for i, v := range idx.i2v {
		l, ok := layer[v]
		if !ok {
			return nil, ErrVertexNotFound
		}
		out[i] = l
	}
	return out, nil
}

// DecodeLayer is EncodeLayer's inverse.
func (idx *Index) DecodeLayer(layer []int) map[string]int {
	out := make(map[string]int, len(layer))
	for i, l := range layer {
		out[idx.i2v[i]] = l
	}
	return out
}

// DecodeErr rewrites a FlowError's internal vertex indices back to caller
// vertex identity, mirroring swiflow's IndexMap.decode_err/ecatch (see
// SPEC_FULL.md's SUPPLEMENT section #1). nil is returned unchanged.
func (idx *Index) DecodeErr(err *FlowError) *FlowError {
	if err == nil {
		return nil
	}
	out := *err
	switch err.Kind {
	case KindInvalidFlowDomain, KindInvalidFlowCodomain, KindInvalidMeasurementSpec,
		KindInconsistentFlowPlane, KindInconsistentFlowPPlane,
		KindExcessiveZeroLayer, KindExcessiveNonZeroLayer:
		out.VertexID = idx.Decode(err.Vertex)
	case KindInconsistentFlowOrder:
		out.PairID = [2]string{idx.Decode(err.Pair[0]), idx.Decode(err.Pair[1])}
	}
	return &out
}
