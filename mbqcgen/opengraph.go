package mbqcgen

import (
	"math/rand"

	"github.com/katalvlaran/mbqcflow/ograph"
)

// RandomOpenGraph builds a random G(n,p) simple graph (RandomSparse) and
// carves out an input/output split from it: the last k vertices of
// g.Vertices() (lexical order of the "0".."n-1" labels, which equals
// decimal order only for n <= 10) become oset, with 1 <= k <= max(1, n/3),
// and a random subset of the remaining vertices, of random size from
// none to all of them, becomes iset. No connectivity or
// flow-existence guarantee is made or needed — callers only assert that
// when Find succeeds, Verify agrees (spec.md §8 properties 1-4), and a
// Find failure is simply not exercised further.
//
// Complexity: O(n^2).
func RandomOpenGraph(n int, p float64, seed int64) (g *ograph.Graph, iset, oset ograph.VertexSet, err error) {
	g, err = BuildGraph([]GenOption{WithSeed(seed)}, RandomSparse(n, p))
	if err != nil {
		return nil, nil, nil, err
	}

	rng := rand.New(rand.NewSource(seed ^ 0x5bd1e995))
	verts := g.Vertices()
	outCount := 1 + rng.Intn(maxInt(1, n/3))
	if outCount > n {
		outCount = n
	}
	oset = ograph.NewVertexSet(verts[n-outCount:]...)

	remaining := verts[:n-outCount]
	inCount := 0
	if len(remaining) > 0 {
		inCount = rng.Intn(len(remaining) + 1)
	}
	rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })
	iset = ograph.NewVertexSet(remaining[:inCount]...)

	return g, iset, oset, nil
}

// RandomPlanes assigns each vertex in V\oset a uniformly random measurement
// plane from {XY, YZ, XZ}, seeded deterministically.
func RandomPlanes(g *ograph.Graph, oset ograph.VertexSet, seed int64) map[string]ograph.Plane {
	rng := rand.New(rand.NewSource(seed ^ 0x27d4eb2f))
	planes := map[string]ograph.Plane{}
	for _, v := range g.Vertices() {
		if oset.Contains(v) {
			continue
		}
		planes[v] = ograph.Plane(rng.Intn(3))
	}
	return planes
}

// RandomPPlanes assigns each vertex in V\oset a uniformly random Pauli-flow
// measurement spec from {XY, YZ, XZ, X, Y, Z}, seeded deterministically.
func RandomPPlanes(g *ograph.Graph, oset ograph.VertexSet, seed int64) map[string]ograph.PPlane {
	rng := rand.New(rand.NewSource(seed ^ 0x165667b1))
	pplanes := map[string]ograph.PPlane{}
	for _, v := range g.Vertices() {
		if oset.Contains(v) {
			continue
		}
		pplanes[v] = ograph.PPlane(rng.Intn(6))
	}
	return pplanes
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
