package mbqcflow_test

// Property-based tests over random small open graphs (spec.md §8),
// driving causalflow/gflow/pauliflow with fixtures from mbqcgen.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbqcflow/causalflow"
	"github.com/katalvlaran/mbqcflow/gflow"
	"github.com/katalvlaran/mbqcflow/mbqcgen"
	"github.com/katalvlaran/mbqcflow/ograph"
	"github.com/katalvlaran/mbqcflow/pauliflow"
)

const propertyTrials = 40

// TestProperty_CausalFlowSoundness checks universal property 1: whenever
// causalflow.Find succeeds, Verify with ensureOptimal=true must agree, and
// property 2: Verify with no supplied layer (C6 inference) must also agree.
func TestProperty_CausalFlowSoundness(t *testing.T) {
	for seed := int64(0); seed < propertyTrials; seed++ {
		g, iset, oset, err := mbqcgen.RandomOpenGraph(6, 0.5, seed)
		require.NoError(t, err)

		f, lyr, ok, err := causalflow.Find(g, iset, oset)
		require.NoError(t, err)
		if !ok {
			continue
		}
		require.NoError(t, causalflow.Verify(f, lyr, g, iset, oset, true),
			"seed %d: maximally-delayed causal flow failed strict verification", seed)
		require.NoError(t, causalflow.Verify(f, nil, g, iset, oset, false),
			"seed %d: causal flow failed round-trip with inferred layer", seed)
	}
}

// TestProperty_GFlowSoundness mirrors TestProperty_CausalFlowSoundness for
// gflow, and additionally checks property 4 (layer monotonicity): every
// vertex of f(u) ∪ Odd(f(u)) other than u sits in a lower layer than u.
func TestProperty_GFlowSoundness(t *testing.T) {
	for seed := int64(0); seed < propertyTrials; seed++ {
		g, iset, oset, err := mbqcgen.RandomOpenGraph(6, 0.5, seed+1000)
		require.NoError(t, err)
		planes := mbqcgen.RandomPlanes(g, oset, seed+1000)

		f, lyr, ok, err := gflow.Find(g, iset, oset, planes)
		require.NoError(t, err)
		if !ok {
			continue
		}
		require.NoError(t, gflow.Verify(f, lyr, g, iset, oset, planes, true),
			"seed %d: maximally-delayed gflow failed strict verification", seed)
		require.NoError(t, gflow.Verify(f, nil, g, iset, oset, planes, false),
			"seed %d: gflow failed round-trip with inferred layer", seed)

		// Layer monotonicity (property 4): every non-special predecessor
		// in f(u) U Odd(f(u)) must sit strictly above u in layer depth.
		idx := ograph.NewIndex(g.Vertices())
		adj, aerr := idx.EncodeAdjacency(g)
		require.NoError(t, aerr)
		for u, fu := range f {
			odd := ograph.VertexSet{}
			for v := range fu {
				vi, _ := idx.Encode(v)
				adj[vi].Each(func(w int) {
					id := idx.Decode(w)
					if _, in := odd[id]; in {
						delete(odd, id)
					} else {
						odd[id] = struct{}{}
					}
				})
			}
			for v := range fu {
				if v == u {
					continue
				}
				require.Greaterf(t, lyr[u], lyr[v], "seed %d: f(%s) contains %s out of order", seed, u, v)
			}
			for v := range odd {
				if v == u {
					continue
				}
				require.Greaterf(t, lyr[u], lyr[v], "seed %d: Odd(f(%s)) contains %s out of order", seed, u, v)
			}
		}
	}
}

// TestProperty_PauliFlowSoundness mirrors TestProperty_GFlowSoundness for
// pflow across random Pauli-inclusive measurement specs.
func TestProperty_PauliFlowSoundness(t *testing.T) {
	for seed := int64(0); seed < propertyTrials; seed++ {
		g, iset, oset, err := mbqcgen.RandomOpenGraph(6, 0.5, seed+2000)
		require.NoError(t, err)
		pplanes := mbqcgen.RandomPPlanes(g, oset, seed+2000)

		f, lyr, ok, _, err := pauliflow.Find(g, iset, oset, pplanes)
		require.NoError(t, err)
		if !ok {
			continue
		}
		_, verr := pauliflow.Verify(f, lyr, g, iset, oset, pplanes, true)
		require.NoError(t, verr, "seed %d: maximally-delayed pflow failed strict verification", seed)
		_, verr = pauliflow.Verify(f, nil, g, iset, oset, pplanes, false)
		require.NoError(t, verr, "seed %d: pflow failed round-trip with inferred layer", seed)
	}
}

// TestProperty_Hierarchy checks property 3: a causal flow Find returns is
// itself accepted by gflow.Verify (all-XY planes) and by pauliflow.Verify
// (all-XY pplanes), and a gflow Find returns is accepted by pauliflow.Verify.
func TestProperty_Hierarchy(t *testing.T) {
	for seed := int64(0); seed < propertyTrials; seed++ {
		g, iset, oset, err := mbqcgen.RandomOpenGraph(6, 0.5, seed+3000)
		require.NoError(t, err)

		allXY := map[string]ograph.Plane{}
		allXYP := map[string]ograph.PPlane{}
		for _, v := range g.Vertices() {
			if oset.Contains(v) {
				continue
			}
			allXY[v] = ograph.PlaneXY
			allXYP[v] = ograph.PPlaneXY
		}

		if f, lyr, ok, err := causalflow.Find(g, iset, oset); err == nil && ok {
			gf := make(gflow.Flow, len(f))
			for u, v := range f {
				gf[u] = ograph.NewVertexSet(v)
			}
			require.NoError(t, gflow.Verify(gf, gflow.Layer(lyr), g, iset, oset, allXY, false),
				"seed %d: causal flow rejected as a gflow", seed)

			pf := make(pauliflow.Flow, len(f))
			for u, v := range f {
				pf[u] = ograph.NewVertexSet(v)
			}
			_, perr := pauliflow.Verify(pf, pauliflow.Layer(lyr), g, iset, oset, allXYP, false)
			require.NoError(t, perr, "seed %d: causal flow rejected as a pflow", seed)
		}

		planes := mbqcgen.RandomPlanes(g, oset, seed+3000)
		if gf, lyr, ok, err := gflow.Find(g, iset, oset, planes); err == nil && ok {
			pplanes := make(map[string]ograph.PPlane, len(planes))
			for v, p := range planes {
				pplanes[v] = ograph.FromPlane(p)
			}
			pf := make(pauliflow.Flow, len(gf))
			for u, vs := range gf {
				pf[u] = vs
			}
			_, perr := pauliflow.Verify(pf, pauliflow.Layer(lyr), g, iset, oset, pplanes, false)
			require.NoError(t, perr, "seed %d: gflow rejected as a pflow", seed)
		}
	}
}
