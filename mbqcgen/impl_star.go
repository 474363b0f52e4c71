package mbqcgen

import (
	"strconv"

	"github.com/katalvlaran/mbqcflow/ograph"
)

// Star builds a star with hub CenterVertexID and n-1 leaves (n >= MinStarNodes).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *ograph.Graph, _ *genConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := g.AddEdge(CenterVertexID, strconv.Itoa(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel builds W_n = C_{n-1} plus hub CenterVertexID spoked to every rim
// vertex (n >= MinWheelNodes).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *ograph.Graph, _ *genConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%rim)); err != nil {
				return err
			}
			if err := g.AddEdge(CenterVertexID, strconv.Itoa(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
