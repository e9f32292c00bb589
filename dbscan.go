package anomalyze

import "fmt"

// NoiseLabel marks points not assigned to any DBSCAN cluster.
const NoiseLabel = -1

// DBSCANConfig controls DBSCAN clustering behavior.
// Start with [DefaultDBSCANConfig] and override the fields you need.
type DBSCANConfig struct {
	// Eps is the neighborhood radius: two points are neighbors when their
	// Euclidean distance is <= Eps. Must be > 0. Default: 0.5.
	Eps float64

	// MinPoints is the minimum neighborhood size (the point itself counts)
	// for a point to seed a new cluster. Must be >= 1. Default: 5.
	MinPoints int
}

// DefaultDBSCANConfig returns a DBSCANConfig with reasonable defaults.
func DefaultDBSCANConfig() DBSCANConfig {
	return DBSCANConfig{
		Eps:       0.5,
		MinPoints: 5,
	}
}

// DBSCAN clusters data by density and returns per-point labels: a 0-indexed
// cluster ID, or NoiseLabel (-1) for points not reachable from any cluster.
//
// Points are examined as cluster seeds in index order, so cluster IDs are
// assigned deterministically. A point seeds a new cluster when at least
// MinPoints points (itself included) lie within Eps of it. Expansion then
// absorbs every still-unassigned point within Eps of any absorbed point and
// keeps growing from it, whether or not that point is itself dense. Border
// points therefore propagate membership the same way core points do; this is
// a deliberately looser variant than textbook DBSCAN and is part of the
// contract. Neighbor search is brute force, O(n²) per run.
func DBSCAN(data [][]float64, cfg DBSCANConfig) ([]int, error) {
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("anomalyze: dbscan requires at least one point: %w", ErrEmptyDataset)
	}
	if cfg.Eps <= 0 {
		return nil, fmt.Errorf("anomalyze: eps must be > 0, got %v: %w", cfg.Eps, ErrInvalidParameter)
	}
	if cfg.MinPoints < 1 {
		return nil, fmt.Errorf("anomalyze: min points must be >= 1, got %d: %w", cfg.MinPoints, ErrInvalidParameter)
	}
	if err := checkDimensions(data); err != nil {
		return nil, err
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = NoiseLabel
	}

	clusterID := 0
	for i := 0; i < n; i++ {
		if labels[i] != NoiseLabel {
			continue
		}

		count := 0
		for j := 0; j < n; j++ {
			if euclidean(data[i], data[j]) <= cfg.Eps {
				count++
			}
		}
		if count < cfg.MinPoints {
			continue
		}

		expandCluster(data, labels, i, clusterID, cfg.Eps)
		clusterID++
	}
	return labels, nil
}

// expandCluster grows cluster clusterID from seed using an explicit work
// stack. The absorbed set is the connected component of unassigned points
// reachable from seed through Eps-neighbor links, identical to the recursive
// depth-first formulation but without unbounded call-stack growth on large
// dense inputs.
func expandCluster(data [][]float64, labels []int, seed, clusterID int, eps float64) {
	labels[seed] = clusterID
	stack := []int{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for j := range data {
			if labels[j] == NoiseLabel && euclidean(data[p], data[j]) <= eps {
				labels[j] = clusterID
				stack = append(stack, j)
			}
		}
	}
}
