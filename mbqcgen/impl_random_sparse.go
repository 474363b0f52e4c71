package mbqcgen

import (
	"strconv"

	"github.com/katalvlaran/mbqcflow/ograph"
)

// RandomSparse builds an Erdos-Renyi-style G(n,p) simple undirected graph:
// vertices "0".."n-1", each unordered pair connected independently with
// probability p. Requires cfg.rng (WithSeed/WithRand) and n >= 1,
// 0 <= p <= 1. Deterministic for a fixed seed and call order.
// Complexity: O(n^2).
func RandomSparse(n int, p float64) Constructor {
	return func(g *ograph.Graph, cfg *genConfig) error {
		if err := validateMin(MethodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return genErrorf(MethodRandomSparse, ErrNeedRandSource, "no RNG in scope")
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(strconv.Itoa(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
