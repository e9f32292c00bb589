package anomalyze

import "errors"

// Sentinel errors returned by the clustering and detection entry points.
// Wrap-aware: test with errors.Is.
var (
	// ErrDimensionMismatch indicates two vectors (or dataset rows) of
	// different lengths where equal dimensionality is required.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrEmptyDataset indicates a clusterer was given zero points.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidClusterCount indicates a KMeans cluster count outside [1, n].
	ErrInvalidClusterCount = errors.New("invalid cluster count")

	// ErrInvalidParameter indicates an out-of-range tuning parameter
	// (window size, threshold, eps, minimum points, target rate).
	ErrInvalidParameter = errors.New("invalid parameter")
)
