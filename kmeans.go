package anomalyze

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// KMeansConfig controls KMeans clustering behavior.
// Start with [DefaultKMeansConfig] and override the fields you need.
type KMeansConfig struct {
	// K is the number of clusters. Must be in [1, n] where n is the number
	// of points. Default: 3.
	K int

	// MaxIterations is the exact number of assign/update iterations to run.
	// There is no early-convergence check; supply enough iterations for the
	// dataset. Must be >= 1. Default: 100.
	MaxIterations int

	// Rand is the random source used for centroid initialization. Passing a
	// fixed-seed source makes clustering fully reproducible. nil means a
	// time-seeded source (results then vary run to run). Default: nil.
	Rand *rand.Rand

	// Workers controls the number of goroutines for the assignment step.
	// Parallel assignment is bitwise identical to the serial path since each
	// point is assigned independently. 0 means use runtime.NumCPU().
	// Default: 0 (auto).
	Workers int
}

// DefaultKMeansConfig returns a KMeansConfig with reasonable defaults.
func DefaultKMeansConfig() KMeansConfig {
	return KMeansConfig{
		K:             3,
		MaxIterations: 100,
	}
}

// KMeans partitions data into cfg.K clusters with Lloyd's algorithm and
// returns the per-point cluster labels, each in [0, K).
//
// Centroids are initialized by uniformly sampling K points from the dataset
// with replacement, so duplicate initial centroids are possible. Each
// iteration assigns every point to its nearest centroid (ties break toward
// the lowest centroid index) and then recomputes each centroid as the mean of
// its assigned points; a centroid that loses all its points keeps its
// previous position. Exactly cfg.MaxIterations iterations run regardless of
// convergence.
func KMeans(data [][]float64, cfg KMeansConfig) ([]int, error) {
	n := len(data)
	if n == 0 {
		return nil, fmt.Errorf("anomalyze: kmeans requires at least one point: %w", ErrEmptyDataset)
	}
	if cfg.K < 1 || cfg.K > n {
		return nil, fmt.Errorf("anomalyze: cluster count %d must be in [1, %d]: %w", cfg.K, n, ErrInvalidClusterCount)
	}
	if cfg.MaxIterations < 1 {
		return nil, fmt.Errorf("anomalyze: max iterations must be >= 1, got %d: %w", cfg.MaxIterations, ErrInvalidParameter)
	}
	if err := checkDimensions(data); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	dims := len(data[0])
	centroids := make([][]float64, cfg.K)
	for j := range centroids {
		centroids[j] = append([]float64(nil), data[rng.Intn(n)]...)
	}

	labels := make([]int, n)
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		assignLabels(data, centroids, labels, workers)
		updateCentroids(data, centroids, labels, dims)
	}
	return labels, nil
}

// assignLabels assigns each point to its nearest centroid. Comparison uses
// strict <, so equidistant centroids resolve to the lowest index.
// Falls back to single-threaded assignment if workers <= 1.
func assignLabels(data [][]float64, centroids [][]float64, labels []int, workers int) {
	n := len(data)
	if workers <= 1 || n <= 1 {
		assignRange(data, centroids, labels, 0, n)
		return
	}

	// Split points across workers. Each worker owns a contiguous range of
	// rows, so label writes never overlap and no synchronization is needed.
	// The result is identical to the single-threaded path.
	var wg sync.WaitGroup
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			assignRange(data, centroids, labels, start, end)
		}(start, end)
	}

	wg.Wait()
}

func assignRange(data [][]float64, centroids [][]float64, labels []int, start, end int) {
	for i := start; i < end; i++ {
		minDist := math.Inf(1)
		for j := range centroids {
			if d := euclidean(data[i], centroids[j]); d < minDist {
				minDist = d
				labels[i] = j
			}
		}
	}
}

// updateCentroids recomputes each centroid as the coordinate-wise mean of its
// assigned points. A centroid with no assigned points retains its previous
// value; there is no reseeding.
func updateCentroids(data [][]float64, centroids [][]float64, labels []int, dims int) {
	k := len(centroids)
	sums := make([][]float64, k)
	for j := range sums {
		sums[j] = make([]float64, dims)
	}
	counts := make([]int, k)

	for i, label := range labels {
		counts[label]++
		for d := 0; d < dims; d++ {
			sums[label][d] += data[i][d]
		}
	}
	for j := 0; j < k; j++ {
		if counts[j] == 0 {
			continue
		}
		for d := 0; d < dims; d++ {
			centroids[j][d] = sums[j][d] / float64(counts[j])
		}
	}
}
