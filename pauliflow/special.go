package pauliflow

import (
	"github.com/katalvlaran/mbqcflow/internal/bitset"
	"github.com/katalvlaran/mbqcflow/ograph"
)

// specialEdgeFunc builds the special-edge predicate of spec.md §4.5,
// given f's correction sets, their Odd-neighborhoods, and the pplane
// assignment (output vertices have no entry and so can never anchor a
// special edge).
func specialEdgeFunc(fSets, odd map[int]*bitset.Set, pplaneOf map[int]ograph.PPlane) func(u, v int) bool {
	return func(u, v int) bool {
		if u == v {
			return false
		}
		p, ok := pplaneOf[v]
		if !ok {
			return false
		}
		fu, hasF := fSets[u]
		ou, hasO := odd[u]
		inF := hasF && fu.Test(v)
		inOdd := hasO && ou.Test(v)
		switch p {
		case ograph.PPlaneX:
			return inF
		case ograph.PPlaneY:
			return inF && inOdd
		case ograph.PPlaneZ:
			return inOdd
		default:
			return false
		}
	}
}
