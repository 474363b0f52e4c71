package mbqcgen

import (
	"strconv"

	"github.com/katalvlaran/mbqcflow/ograph"
)

// Cycle builds an n-vertex simple cycle C_n (n >= MinCycleNodes).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *ograph.Graph, _ *genConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n)); err != nil {
				return err
			}
		}
		return nil
	}
}
