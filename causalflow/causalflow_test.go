package causalflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbqcflow/causalflow"
	"github.com/katalvlaran/mbqcflow/ograph"
)

// buildLine3 builds the S1 scenario: a 4-vertex path 0-1-2-3, I={0}, O={3}.
func buildLine3(t *testing.T) (*ograph.Graph, ograph.VertexSet, ograph.VertexSet) {
	t.Helper()
	g := ograph.NewGraph()
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	return g, ograph.NewVertexSet("0"), ograph.NewVertexSet("3")
}

func TestFind_Line3(t *testing.T) {
	g, iset, oset := buildLine3(t)
	f, lyr, ok, err := causalflow.Find(g, iset, oset)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, causalflow.Flow{"0": "1", "1": "2", "2": "3"}, f)
	require.Equal(t, causalflow.Layer{"0": 3, "1": 2, "2": 1, "3": 0}, lyr)
}

func TestVerify_Line3_RoundTrip(t *testing.T) {
	g, iset, oset := buildLine3(t)
	f, lyr, ok, err := causalflow.Find(g, iset, oset)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, causalflow.Verify(f, lyr, g, iset, oset, true))
	// round-trip with inferred layer
	require.NoError(t, causalflow.Verify(f, nil, g, iset, oset, false))
}

// TestFind_NoCausalFlow is S2: no causal flow exists (requires gflow).
func TestFind_NoCausalFlow(t *testing.T) {
	g := ograph.NewGraph()
	require.NoError(t, g.AddEdge("0", "2"))
	require.NoError(t, g.AddEdge("0", "3"))
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("1", "3"))
	iset := ograph.NewVertexSet("0", "1")
	oset := ograph.NewVertexSet("2", "3")

	_, _, ok, err := causalflow.Find(g, iset, oset)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerify_RejectsBadOrder(t *testing.T) {
	g, iset, oset := buildLine3(t)
	f := causalflow.Flow{"0": "1", "1": "2", "2": "3"}
	bad := causalflow.Layer{"0": 1, "1": 2, "2": 1, "3": 0}
	err := causalflow.Verify(f, bad, g, iset, oset, false)
	require.Error(t, err)
}
