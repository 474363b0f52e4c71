package mbqcgen

import (
	"strconv"

	"github.com/katalvlaran/mbqcflow/ograph"
)

// Path builds a simple path P_n on vertices "0".."n-1" (n >= MinPathNodes).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *ograph.Graph, _ *genConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1)); err != nil {
				return err
			}
		}
		return nil
	}
}
