// File: errors.go
// Role: FlowError, the eight-kind error taxonomy of spec.md §7,
// implemented as a tagged struct per design note §9 ("tagged variants...
// implement as sum types, not string tags") rather than lvlath's usual
// flat sentinel-error catalog (errors.go in core/matrix) — FlowError must
// additionally carry the offending vertex identity (or pair, or layer),
// which a bare sentinel cannot.
package ograph

import "fmt"

// ErrorKind enumerates the eight error kinds of spec.md §7. The two
// "excessive layer" constructors (ExcessiveZeroLayer/ExcessiveNonZeroLayer)
// share a single numbered item in the spec but are distinct Kind values
// here since they carry different payloads and fire under disjoint
// conditions.
type ErrorKind uint8

// ErrorKind values, in spec.md §7's order.
const (
	// KindInvalidInput covers type/shape errors on arguments: empty
	// graph, self-loop, iset/oset not a subset, measurement map
	// mis-scoped, or redundant/missing measurement planes.
	KindInvalidInput ErrorKind = iota

	// KindInvalidFlowDomain: f is defined at a vertex outside V\O.
	KindInvalidFlowDomain

	// KindInvalidFlowCodomain: f(u) contains a vertex outside V\I (or,
	// for causal flow, a non-neighbor of u).
	KindInvalidFlowCodomain

	// KindInvalidMeasurementSpec: measurement absent or inadmissible at u.
	KindInvalidMeasurementSpec

	// KindInconsistentFlowPlane: the gflow correction axiom fails at u
	// under its declared plane.
	KindInconsistentFlowPlane

	// KindInconsistentFlowPPlane: the pflow correction axiom fails at u
	// under its declared Pauli spec.
	KindInconsistentFlowPPlane

	// KindInconsistentFlowOrder: a required order edge contradicts the
	// supplied layer.
	KindInconsistentFlowOrder

	// KindExcessiveZeroLayer: a layer-0 vertex is not in O.
	KindExcessiveZeroLayer

	// KindExcessiveNonZeroLayer: a non-zero-layer vertex is in O.
	KindExcessiveNonZeroLayer
)

// FlowError is the error type returned by every Verify entry point (and,
// internally, by the finders' own consistency checks). It always carries
// enough payload to recover the offending vertex identity once decoded
// via Index.DecodeErr (spec.md §7: "Propagation: every error is surfaced to
// the caller untouched, preserving the offending vertex identity").
type FlowError struct {
	Kind ErrorKind

	// Vertex is the offending index-space vertex (most kinds).
	Vertex int
	// VertexID is set by Index.DecodeErr; empty until then.
	VertexID string

	// Pair is the offending index-space (u,v) pair (KindInconsistentFlowOrder).
	Pair [2]int
	// PairID is set by Index.DecodeErr; zero value until then.
	PairID [2]string

	// Plane/PPlane name the declared measurement, for
	// KindInconsistentFlowPlane/KindInconsistentFlowPPlane messages.
	PlaneName string

	// Layer is the offending non-zero layer value (KindExcessiveNonZeroLayer).
	Layer int

	// Msg carries a free-form description for KindInvalidInput, which has
	// no single offending vertex.
	Msg string
}

// Error implements the error interface, rendering a message in the
// teacher's terse sentinel-error register.
func (e *FlowError) Error() string {
	vid := e.VertexID
	if vid == "" && e.Kind != KindInvalidInput && e.Kind != KindInconsistentFlowOrder {
		vid = fmt.Sprintf("#%d", e.Vertex)
	}
	switch e.Kind {
	case KindInvalidInput:
		return "ograph: invalid input: " + e.Msg
	case KindInvalidFlowDomain:
		return fmt.Sprintf("ograph: f(%s) has invalid domain", vid)
	case KindInvalidFlowCodomain:
		return fmt.Sprintf("ograph: f(%s) has invalid codomain", vid)
	case KindInvalidMeasurementSpec:
		return fmt.Sprintf("ograph: node %s has invalid measurement specification", vid)
	case KindInconsistentFlowPlane:
		return fmt.Sprintf("ograph: broken %s measurement on node %s", e.PlaneName, vid)
	case KindInconsistentFlowPPlane:
		return fmt.Sprintf("ograph: broken %s measurement on node %s", e.PlaneName, vid)
	case KindInconsistentFlowOrder:
		u, v := e.PairID[0], e.PairID[1]
		if u == "" && v == "" {
			u, v = fmt.Sprintf("#%d", e.Pair[0]), fmt.Sprintf("#%d", e.Pair[1])
		}
		return fmt.Sprintf("ograph: flow-order inconsistency on nodes (%s, %s)", u, v)
	case KindExcessiveZeroLayer:
		return fmt.Sprintf("ograph: zero-layer node %s outside output nodes", vid)
	case KindExcessiveNonZeroLayer:
		return fmt.Sprintf("ograph: layer-%d node %s inside output nodes", e.Layer, vid)
	default:
		return "ograph: unknown flow error"
	}
}

// NewInvalidInput builds a KindInvalidInput FlowError with a free-form
// message (no single offending vertex).
func NewInvalidInput(msg string) *FlowError {
	return &FlowError{Kind: KindInvalidInput, Msg: msg}
}

// NewInvalidFlowDomain builds a KindInvalidFlowDomain FlowError.
func NewInvalidFlowDomain(v int) *FlowError {
	return &FlowError{Kind: KindInvalidFlowDomain, Vertex: v}
}

// NewInvalidFlowCodomain builds a KindInvalidFlowCodomain FlowError.
func NewInvalidFlowCodomain(v int) *FlowError {
	return &FlowError{Kind: KindInvalidFlowCodomain, Vertex: v}
}

// NewInvalidMeasurementSpec builds a KindInvalidMeasurementSpec FlowError.
func NewInvalidMeasurementSpec(v int) *FlowError {
	return &FlowError{Kind: KindInvalidMeasurementSpec, Vertex: v}
}

// NewInconsistentFlowPlane builds a KindInconsistentFlowPlane FlowError.
func NewInconsistentFlowPlane(v int, plane Plane) *FlowError {
	return &FlowError{Kind: KindInconsistentFlowPlane, Vertex: v, PlaneName: plane.String()}
}

// NewInconsistentFlowPPlane builds a KindInconsistentFlowPPlane FlowError.
func NewInconsistentFlowPPlane(v int, pplane PPlane) *FlowError {
	return &FlowError{Kind: KindInconsistentFlowPPlane, Vertex: v, PlaneName: pplane.String()}
}

// NewInconsistentFlowOrder builds a KindInconsistentFlowOrder FlowError.
func NewInconsistentFlowOrder(u, v int) *FlowError {
	return &FlowError{Kind: KindInconsistentFlowOrder, Pair: [2]int{u, v}}
}

// NewExcessiveZeroLayer builds a KindExcessiveZeroLayer FlowError.
func NewExcessiveZeroLayer(v int) *FlowError {
	return &FlowError{Kind: KindExcessiveZeroLayer, Vertex: v}
}

// NewExcessiveNonZeroLayer builds a KindExcessiveNonZeroLayer FlowError.
func NewExcessiveNonZeroLayer(v, layer int) *FlowError {
	return &FlowError{Kind: KindExcessiveNonZeroLayer, Vertex: v, Layer: layer}
}
