package peel

import (
	"github.com/katalvlaran/mbqcflow/gf2"
	"github.com/katalvlaran/mbqcflow/internal/bitset"
)

// CorrectorPool returns the sorted, distinct vertex indices eligible to
// appear inside some f(u) at the current round, given the currently
// solved set. gflow uses solved\I; pauliflow additionally admits
// not-yet-solved Pauli-measured vertices (spec.md §4.5's "pool of
// correctors... plus every not-yet-solved vertex with a Pauli
// measurement").
type CorrectorPool func(solved *bitset.Set) []int

// RowTarget reports whether candidate u requires u ∈ Odd(f(u)) this
// round (true) or u ∉ Odd(f(u)) (false), per its plane/Pauli spec
// (spec.md §4.4 step 4 / §4.5's solvability RHS table).
type RowTarget func(u int) bool

// NeedsSelf reports whether u's correction axiom requires u ∈ f(u)
// directly (YZ, XZ, and pflow's Z). Since u has no self-loop, adding u to
// f(u) never changes Odd(f(u)) at u itself, but it does XOR adj[u] into
// Odd(f(u)) at every other vertex — Run folds that contribution into the
// round's right-hand side before solving, rather than adding u only after
// the fact.
type NeedsSelf func(u int) bool

// Run executes the backward peel over n vertices with packed adjacency
// adj (one bitset per vertex) and initial solved set oset (layer 0).
// It returns the per-vertex correction set (in full vertex-index space,
// keyed by vertex index), the resulting layer assignment (-1 for any
// vertex left unsolved), and whether every vertex was solved.
//
// Maximality of delay follows directly from accepting every candidate
// solvable in a round before moving to the next (spec.md §4.4 step 6).
func Run(n int, adj []*bitset.Set, oset *bitset.Set, pool CorrectorPool, target RowTarget, needsSelf NeedsSelf) (map[int]*bitset.Set, []int, bool) {
	solved := oset.Clone()
	layer := make([]int, n)
	for i := range layer {
		layer[i] = -1
	}
	oset.Each(func(v int) { layer[v] = 0 })

	f := make(map[int]*bitset.Set, n)
	k := 0
	for {
		correctors := pool(solved)
		if len(correctors) == 0 {
			break
		}
		var candidates []int
		for v := 0; v < n; v++ {
			if !solved.Test(v) {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) == 0 {
			break
		}

		candRow := make(map[int]int, len(candidates))
		for i, u := range candidates {
			candRow[u] = i
		}

		a, err := gf2.NewMatrix(len(candidates), len(correctors))
		if err != nil {
			break
		}
		for i, u := range candidates {
			row := bitset.New(len(correctors))
			for j, c := range correctors {
				if adj[u].Test(c) {
					row.SetBit(j)
				}
			}
			_ = a.SetRow(i, row)
		}
		red := gf2.Reduce(a)

		next := bitset.New(n)
		for _, u := range candidates {
			// b starts at the restriction of u's own adjacency row to this
			// round's candidates: when needsSelf(u) forces f(u) = K ∪ {u},
			// Odd(f(u)) = Odd(K) XOR adj[u] (no self-loop, so adj[u]_u is
			// always 0). Every other candidate row must end up outside
			// Odd(f(u)), so K must cancel u's own contribution there before
			// the target(u) bit is folded in at u's own row.
			b := bitset.New(len(candidates))
			if needsSelf(u) {
				for i, w := range candidates {
					if adj[u].Test(w) {
						b.SetBit(i)
					}
				}
			}
			if target(u) {
				b.SetBit(candRow[u])
			}
			sol, ok := red.SolveColumn(b)
			if !ok {
				continue
			}
			fu := bitset.New(n)
			sol.Each(func(j int) { fu.SetBit(correctors[j]) })
			if needsSelf(u) {
				fu.SetBit(u)
			}
			f[u] = fu
			next.SetBit(u)
			layer[u] = k + 1
		}
		if next.IsZero() {
			break
		}
		next.Each(func(v int) { solved.SetBit(v) })
		k++
	}

	allSolved := true
	for v := 0; v < n; v++ {
		if !solved.Test(v) {
			allSolved = false
			break
		}
	}
	return f, layer, allSolved
}
