package anomalyze

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the Euclidean (L2) distance between two vectors of equal
// length. Vectors of different lengths are rejected with ErrDimensionMismatch;
// the shorter vector is never silently truncated.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("anomalyze: vector lengths %d and %d: %w", len(a), len(b), ErrDimensionMismatch)
	}
	return floats.Distance(a, b, 2), nil
}

// euclidean is the unchecked fast path for callers that have already
// validated dimensionality (see checkDimensions).
func euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// checkDimensions verifies that every row of data has the same length as the
// first row, so the clustering hot loops can skip per-pair length checks.
func checkDimensions(data [][]float64) error {
	if len(data) == 0 {
		return nil
	}
	dims := len(data[0])
	for i, row := range data {
		if len(row) != dims {
			return fmt.Errorf("anomalyze: row %d has %d dimensions, expected %d: %w",
				i, len(row), dims, ErrDimensionMismatch)
		}
	}
	return nil
}
