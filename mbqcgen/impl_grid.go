package mbqcgen

import (
	"strconv"

	"github.com/katalvlaran/mbqcflow/ograph"
)

func gridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid builds an R x C 4-neighborhood grid with IDs "r,c" (row-major),
// matching the open-graph cluster-state lattices MBQC patterns are
// commonly drawn from (rows, cols >= 1).
// Complexity: O(R*C).
func Grid(rows, cols int) Constructor {
	return func(g *ograph.Graph, _ *genConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridRows); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridCols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(gridID(r, c)); err != nil {
					return err
				}
				if c+1 < cols {
					if err := g.AddEdge(gridID(r, c), gridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := g.AddEdge(gridID(r, c), gridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
