package mbqcgen

import (
	"strconv"

	"github.com/katalvlaran/mbqcflow/ograph"
)

// Complete builds the complete simple graph K_n (n >= 1).
// Complexity: O(n^2).
func Complete(n int) Constructor {
	return func(g *ograph.Graph, _ *genConfig) error {
		if err := validateMin(MethodComplete, n, 1); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with left/right prefixed labels from
// cfg's partition prefixes (n1, n2 >= MinPartition).
// Complexity: O(n1*n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *ograph.Graph, cfg *genConfig) error {
		if err := validateMin(MethodCompleteBipartite, n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, n2, MinPartition); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			u := cfg.leftPrefix + strconv.Itoa(i)
			for j := 0; j < n2; j++ {
				v := cfg.rightPrefix + strconv.Itoa(j)
				if err := g.AddEdge(u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
