package mbqcgen

import "errors"

// Sentinel errors for constructor parameter validation, mirroring the
// teacher's builder/errors.go catalog (errors.Is, never string-matched).
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree)
	// is below the constructor's documented minimum.
	ErrTooFewVertices = errors.New("mbqcgen: parameter too small")

	// ErrInvalidProbability indicates a probability argument outside [0,1].
	ErrInvalidProbability = errors.New("mbqcgen: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor (RandomSparse,
	// RandomRegular) was invoked without WithSeed/WithRand in scope.
	ErrNeedRandSource = errors.New("mbqcgen: rng is required")

	// ErrConstructFailed indicates a bounded-retry constructor (e.g.
	// RandomRegular's stub-matching) exhausted its attempts.
	ErrConstructFailed = errors.New("mbqcgen: construction failed")
)
