package layer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/layer"
	"github.com/katalvlaran/mbqcflow/ograph"
)

func noSpecial(int, int) bool { return false }

// TestInfer_Line3 mirrors the S1 causal-flow scenario: 0-1-2-3, O={3}.
func TestInfer_Line3(t *testing.T) {
	g := ograph.NewGraph()
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	idx := ograph.NewIndex(g.Vertices())
	adj, err := idx.EncodeAdjacency(g)
	require.NoError(t, err)

	oset, err := idx.EncodeSet(ograph.NewVertexSet("3"))
	require.NoError(t, err)

	n := idx.Len()
	f := make(map[int]*bitset.Set)
	i0, _ := idx.Encode("0")
	i1, _ := idx.Encode("1")
	i2, _ := idx.Encode("2")
	i3, _ := idx.Encode("3")
	f[i0] = bitset.FromBits(n, i1)
	f[i1] = bitset.FromBits(n, i2)
	f[i2] = bitset.FromBits(n, i3)

	lyr, err := layer.Infer(n, adj, f, oset, noSpecial)
	require.NoError(t, err)
	require.Equal(t, 0, lyr[i3])
	require.Equal(t, 1, lyr[i2])
	require.Equal(t, 2, lyr[i1])
	require.Equal(t, 3, lyr[i0])
}

// TestInfer_Cycle is S3: a 3-cycle whose correction sets form a closed
// must-precede loop (0 requires 1, 1 requires 2, 2 requires 0) with no
// output vertex to anchor the peel — layer can never be determined.
func TestInfer_Cycle(t *testing.T) {
	g := ograph.NewGraph()
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "0"))
	idx := ograph.NewIndex(g.Vertices())
	adj, err := idx.EncodeAdjacency(g)
	require.NoError(t, err)

	n := idx.Len()
	i0, _ := idx.Encode("0")
	i1, _ := idx.Encode("1")
	i2, _ := idx.Encode("2")
	f := map[int]*bitset.Set{
		i0: bitset.FromBits(n, i1),
		i1: bitset.FromBits(n, i2),
		i2: bitset.FromBits(n, i0),
	}
	oset := bitset.New(n)
	_, err = layer.Infer(n, adj, f, oset, noSpecial)
	require.ErrorIs(t, err, layer.ErrCannotDetermineLayer)
}
