package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mbqcflow/internal/bitset"
)

func TestSetBitTestBit(t *testing.T) {
	t.Parallel()

	s := bitset.New(70) // forces two words
	require.False(t, s.Test(65))
	s.SetBit(65)
	require.True(t, s.Test(65))
	s.ClearBit(65)
	require.False(t, s.Test(65))
	s.PutBit(3, true)
	require.True(t, s.Test(3))
}

func TestFromBits(t *testing.T) {
	t.Parallel()

	s := bitset.FromBits(8, 1, 3, 5)
	require.Equal(t, 3, s.PopCount())
	require.True(t, s.Test(1))
	require.False(t, s.Test(2))
}

func TestXorAndOrAndNot(t *testing.T) {
	t.Parallel()

	a := bitset.FromBits(4, 0, 1)
	b := bitset.FromBits(4, 1, 2)

	require.True(t, a.And(b).Equal(bitset.FromBits(4, 1)))
	require.True(t, a.Or(b).Equal(bitset.FromBits(4, 0, 1, 2)))
	require.True(t, a.AndNot(b).Equal(bitset.FromBits(4, 0)))

	c := a.Clone()
	c.Xor(b)
	require.True(t, c.Equal(bitset.FromBits(4, 0, 2)))
}

func TestIsZeroAndParity(t *testing.T) {
	t.Parallel()

	z := bitset.New(5)
	require.True(t, z.IsZero())
	require.False(t, z.Parity())

	odd := bitset.FromBits(5, 0, 2, 4)
	require.False(t, odd.IsZero())
	require.True(t, odd.Parity())

	even := bitset.FromBits(5, 0, 2)
	require.False(t, even.Parity())
}

func TestDotParity(t *testing.T) {
	t.Parallel()

	a := bitset.FromBits(4, 0, 1, 2)
	b := bitset.FromBits(4, 0, 2, 3)
	// overlap at bits 0,2 -> two shared bits -> even parity
	require.False(t, a.DotParity(b))

	c := bitset.FromBits(4, 0)
	require.True(t, a.DotParity(c))
}

func TestEach(t *testing.T) {
	t.Parallel()

	s := bitset.FromBits(10, 2, 4, 9)
	var got []int
	s.Each(func(i int) { got = append(got, i) })
	require.Equal(t, []int{2, 4, 9}, got)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := bitset.FromBits(6, 1, 2)
	b := bitset.FromBits(6, 1, 2)
	c := bitset.FromBits(6, 1, 3)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestSetBitPanicsOutOfRange(t *testing.T) {
	t.Parallel()

	s := bitset.New(4)
	require.Panics(t, func() { s.SetBit(4) })
	require.Panics(t, func() { s.Test(-1) })
}
