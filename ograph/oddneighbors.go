// File: oddneighbors.go
// Role: C2, the odd-neighborhood operator Odd(K) = symmetric-difference
// fold of neighbor sets over K, grounded on swiflow's
// _common.odd_neighbors.
package ograph

import "github.com/katalvlaran/mbqcflow/internal/bitset"

// OddNeighborsIdx computes Odd(k) = XOR of adj[i] for every i in k, in
// index space. adj is the packed adjacency built by Index.EncodeAdjacency.
//
// Complexity: O(|k| * n/64).
func OddNeighborsIdx(adj []*bitset.Set, k *bitset.Set) *bitset.Set {
	n := 0
	if len(adj) > 0 {
		n = adj[0].Len()
	}
	out := bitset.New(n)
	k.Each(func(i int) { out.Xor(adj[i]) })
	return out
}
