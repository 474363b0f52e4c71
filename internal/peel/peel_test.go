package peel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/internal/peel"
)

// Two vertices, an edge between them, vertex 0 is the sole output.
// Vertex 1 must correct onto its only neighbor, vertex 0.
func TestRun_SingleEdge(t *testing.T) {
	t.Parallel()

	adj := []*bitset.Set{
		bitset.FromBits(2, 1),
		bitset.FromBits(2, 0),
	}
	oset := bitset.FromBits(2, 0)

	pool := func(solved *bitset.Set) []int {
		var out []int
		solved.Each(func(v int) { out = append(out, v) })
		return out
	}
	target := func(int) bool { return true }
	needsSelf := func(int) bool { return false }

	f, layer, ok := peel.Run(2, adj, oset, pool, target, needsSelf)
	require.True(t, ok)
	require.Equal(t, []int{0, 1}, layer)
	require.True(t, f[1].Test(0))
	require.False(t, f[1].Test(1))
}

// An isolated, non-output vertex has no corrector available and the peel
// must report failure rather than loop forever.
func TestRun_NoCorrector(t *testing.T) {
	t.Parallel()

	adj := []*bitset.Set{
		bitset.New(2),
		bitset.New(2),
	}
	oset := bitset.FromBits(2, 0)

	pool := func(solved *bitset.Set) []int {
		var out []int
		solved.Each(func(v int) { out = append(out, v) })
		return out
	}
	target := func(int) bool { return true }
	needsSelf := func(int) bool { return false }

	_, _, ok := peel.Run(2, adj, oset, pool, target, needsSelf)
	require.False(t, ok)
}

// needsSelf forces u into its own correction set regardless of the
// linear solve's outcome.
func TestRun_NeedsSelf(t *testing.T) {
	t.Parallel()

	adj := []*bitset.Set{
		bitset.FromBits(2, 1),
		bitset.FromBits(2, 0),
	}
	oset := bitset.FromBits(2, 0)

	pool := func(solved *bitset.Set) []int {
		var out []int
		solved.Each(func(v int) { out = append(out, v) })
		return out
	}
	target := func(int) bool { return true }
	needsSelf := func(u int) bool { return u == 1 }

	f, _, ok := peel.Run(2, adj, oset, pool, target, needsSelf)
	require.True(t, ok)
	require.True(t, f[1].Test(0))
	require.True(t, f[1].Test(1))
}
