package mbqcgen

import (
	"strconv"

	"github.com/katalvlaran/mbqcflow/ograph"
)

const randomRegularMaxAttempts = 64

// RandomRegular builds a d-regular simple graph on n vertices via
// stub-matching with bounded retries (n*d must be even; n >= d+1).
// Requires cfg.rng. Deterministic per seed; returns ErrConstructFailed if
// every attempt produces a loop/multi-edge collision.
// Complexity: ~O(n*d) per attempt, constant-bounded attempts.
func RandomRegular(n, d int) Constructor {
	return func(g *ograph.Graph, cfg *genConfig) error {
		if err := validateMin(MethodRandomRegular, n, d+1); err != nil {
			return err
		}
		if cfg.rng == nil {
			return genErrorf(MethodRandomRegular, ErrNeedRandSource, "no RNG in scope")
		}
		if (n*d)%2 != 0 {
			return genErrorf(MethodRandomRegular, ErrConstructFailed, "n*d must be even, got n=%d d=%d", n, d)
		}

		for attempt := 0; attempt < randomRegularMaxAttempts; attempt++ {
			edges, ok := tryStubMatch(n, d, cfg)
			if !ok {
				continue
			}
			// tryStubMatch already rejects self-pairs and duplicate pairs,
			// so every AddEdge below is guaranteed to succeed.
			for i := 0; i < n; i++ {
				if err := g.AddVertex(strconv.Itoa(i)); err != nil {
					return err
				}
			}
			for _, e := range edges {
				if err := g.AddEdge(strconv.Itoa(e[0]), strconv.Itoa(e[1])); err != nil {
					return err
				}
			}
			return nil
		}
		return genErrorf(MethodRandomRegular, ErrConstructFailed, "exhausted %d stub-matching attempts", randomRegularMaxAttempts)
	}
}

// tryStubMatch performs one configuration-model pairing attempt: n*d stubs
// shuffled and paired sequentially, rejecting the whole attempt on any
// self-pair or repeated pair so the caller can retry with a fresh shuffle.
func tryStubMatch(n, d int, cfg *genConfig) ([][2]int, bool) {
	stubs := make([]int, 0, n*d)
	for v := 0; v < n; v++ {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}
	cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

	seen := make(map[[2]int]struct{}, len(stubs)/2)
	edges := make([][2]int, 0, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return nil, false
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}
	return edges, true
}
