package layer

import (
	"errors"

	"github.com/katalvlaran/mbqcflow/internal/bitset"
)

// ErrCannotDetermineLayer is returned by Infer when some vertex's
// must-precede predecessors never all become layered — the graph
// induced by f is not a DAG (spec.md §4.6, literal message "cannot
// determine layer"). A non-output vertex with no entry in f has no
// must-precede edges and is placed in layer 1.
var ErrCannotDetermineLayer = errors.New("layer: cannot determine layer")

// SpecialEdge reports whether the must-precede edge u→v is exempt from
// the strict-order requirement (pflow's special edges; always false for
// causal flow and gflow).
type SpecialEdge func(u, v int) bool

// Infer reconstructs a layer assignment for n vertices given packed
// adjacency adj, correction sets f (keyed by vertex index, f[u] = the
// correction set assigned to u; output vertices have no entry), the
// output set oset (layer 0), and a special-edge predicate.
//
// Complexity: O(n * (n + Σ|f(u)|)) for the worklist peel.
func Infer(n int, adj []*bitset.Set, f map[int]*bitset.Set, oset *bitset.Set, special SpecialEdge) ([]int, error) {
	mustPrecede := make([]*bitset.Set, n)
	for u := 0; u < n; u++ {
		mustPrecede[u] = bitset.New(n)
		fu, ok := f[u]
		if !ok {
			continue
		}
		odd := bitset.New(n)
		fu.Each(func(k int) { odd.Xor(adj[k]) })
		corr := fu.Or(odd)
		corr.Each(func(v int) {
			if v != u && !special(u, v) {
				mustPrecede[u].SetBit(v)
			}
		})
	}

	layer := make([]int, n)
	for i := range layer {
		layer[i] = -1
	}
	layered := oset.Clone()
	oset.Each(func(v int) { layer[v] = 0 })

	k := 0
	for {
		next := bitset.New(n)
		for u := 0; u < n; u++ {
			if layered.Test(u) {
				continue
			}
			ready := true
			mustPrecede[u].Each(func(v int) {
				if !layered.Test(v) {
					ready = false
				}
			})
			if ready {
				next.SetBit(u)
			}
		}
		if next.IsZero() {
			break
		}
		k++
		next.Each(func(v int) {
			layer[v] = k
			layered.SetBit(v)
		})
	}

	if layered.PopCount() != n {
		return nil, ErrCannotDetermineLayer
	}
	return layer, nil
}
