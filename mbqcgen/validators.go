package mbqcgen

import "fmt"

func genErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

func validateMin(method string, got, min int) error {
	if got < min {
		return genErrorf(method, ErrTooFewVertices, "parameter must be >= %d, got %d", min, got)
	}
	return nil
}

func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return genErrorf(method, ErrInvalidProbability, "probability must be in [0,1], got %f", p)
	}
	return nil
}
