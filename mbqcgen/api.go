package mbqcgen

import (
	"fmt"

	"github.com/katalvlaran/mbqcflow/ograph"
)

// Constructor applies a deterministic topology mutation to g using the
// resolved genConfig. Constructors never panic; they return sentinel
// errors (wrapped with method context) on invalid parameters.
type Constructor func(g *ograph.Graph, cfg *genConfig) error

// BuildGraph creates a new ograph.Graph and applies each Constructor in
// order, mirroring the teacher's builder.BuildGraph single-orchestrator
// contract. A nil Constructor or a constructor error aborts immediately.
func BuildGraph(opts []GenOption, cons ...Constructor) (*ograph.Graph, error) {
	g := ograph.NewGraph()
	cfg := newGenConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}
