package mbqcgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	g, err := BuildGraph(nil, Path(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.True(t, g.HasEdge("0", "1"))
	require.True(t, g.HasEdge("2", "3"))
	require.False(t, g.HasEdge("0", "3"))
}

func TestPathTooFewVertices(t *testing.T) {
	_, err := BuildGraph(nil, Path(1))
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := BuildGraph(nil, Cycle(5))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		deg, derr := g.Degree(string(rune('0' + i)))
		require.NoError(t, derr)
		require.Equal(t, 2, deg)
	}
}

func TestCompleteBipartite(t *testing.T) {
	g, err := BuildGraph([]GenOption{WithPartitionPrefix("A", "B")}, CompleteBipartite(2, 3))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.True(t, g.HasEdge("A0", "B2"))
	require.False(t, g.HasEdge("A0", "A1"))
}

func TestRandomSparseDeterministic(t *testing.T) {
	g1, err := BuildGraph([]GenOption{WithSeed(7)}, RandomSparse(10, 0.4))
	require.NoError(t, err)
	g2, err := BuildGraph([]GenOption{WithSeed(7)}, RandomSparse(10, 0.4))
	require.NoError(t, err)
	require.ElementsMatch(t, g1.Vertices(), g2.Vertices())
	for _, u := range g1.Vertices() {
		n1, _ := g1.NeighborIDs(u)
		n2, _ := g2.NeighborIDs(u)
		require.Equal(t, n1, n2)
	}
}

func TestRandomSparseNeedsRand(t *testing.T) {
	_, err := BuildGraph(nil, RandomSparse(5, 0.5))
	require.ErrorIs(t, err, ErrNeedRandSource)
}

func TestRandomRegularDegree(t *testing.T) {
	g, err := BuildGraph([]GenOption{WithSeed(3)}, RandomRegular(6, 3))
	require.NoError(t, err)
	for _, v := range g.Vertices() {
		d, derr := g.Degree(v)
		require.NoError(t, derr)
		require.Equal(t, 3, d)
	}
}

func TestRandomOpenGraph(t *testing.T) {
	g, iset, oset, err := RandomOpenGraph(8, 0.5, 42)
	require.NoError(t, err)
	require.Equal(t, 8, g.VertexCount())
	require.NotEmpty(t, oset)
	for v := range iset {
		require.True(t, g.HasVertex(v))
	}
}
