package anomalyze

import (
	"fmt"
	"math"
	"sort"
)

// madScale converts a median absolute deviation into a normal-equivalent
// standard deviation estimate.
const madScale = 1.4826

// robustStdFloor prevents division by zero when the MAD collapses (for
// example on a series of identical values).
const robustStdFloor = 1e-10

// maxAnomalyFraction caps ranked selection at 5% of the series length.
const maxAnomalyFraction = 0.05

// median returns the median of xs, averaging the two middle elements on even
// counts. xs is not modified.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2.0
	}
	return sorted[n/2]
}

// RobustScores returns the normalized deviation of every value from the
// series median, in robust standard-deviation units:
//
//	|value - median| / max(MAD * 1.4826, 1e-10)
//
// where MAD is the median absolute deviation. An empty series yields an
// empty result.
func RobustScores(series []float64) []float64 {
	if len(series) == 0 {
		return []float64{}
	}
	med := median(series)

	deviations := make([]float64, len(series))
	for i, v := range series {
		deviations[i] = math.Abs(v - med)
	}

	robustStd := median(deviations) * madScale
	if robustStd < robustStdFloor {
		robustStd = robustStdFloor
	}

	scores := deviations
	for i := range scores {
		scores[i] /= robustStd
	}
	return scores
}

// DetectRobust flags the most extreme points of series by robust-statistics
// ranking. Values are scored with RobustScores, ranked by score descending,
// and selected while the score exceeds the adaptive threshold by at least a
// 20% margin. threshold is expressed in robust standard deviations and is
// raised to a floor of 2.0 before use. Selection stops at 5% of the series
// length.
//
// The returned indices are sorted ascending. An empty series yields an empty
// result.
func DetectRobust(series []float64, threshold float64) []int {
	anomalies := []int{}
	if len(series) == 0 {
		return anomalies
	}

	scores := RobustScores(series)

	// Rank indices by score descending; ties break on index so results are
	// reproducible run to run.
	order := make([]int, len(series))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})

	adaptive := threshold
	if adaptive < 2.0 {
		adaptive = 2.0
	}

	maxAnomalies := int(float64(len(series)) * maxAnomalyFraction)
	for _, idx := range order {
		score := scores[idx]
		if score > adaptive && len(anomalies) < maxAnomalies {
			// Must clear the threshold by a further 20% to count.
			if score > adaptive*1.2 {
				anomalies = append(anomalies, idx)
			}
		} else {
			break
		}
	}

	sort.Ints(anomalies)
	return anomalies
}

// DetectRobustTargetRate searches for the detection threshold whose anomaly
// fraction lands closest to targetRate, then returns the anomalies found at
// that threshold. Candidate thresholds run from 3.5 down to 2.0 in steps of
// 0.1, then from 2.0 down to 1.5 in steps of 0.05, tried in that order. The
// search stops early once a candidate's fraction falls within ±20% of the
// target.
//
// targetRate must be in (0, 1). An empty series yields an empty result.
func DetectRobustTargetRate(series []float64, targetRate float64) ([]int, error) {
	if targetRate <= 0 || targetRate >= 1 {
		return nil, fmt.Errorf("anomalyze: target rate must be in (0, 1), got %v: %w", targetRate, ErrInvalidParameter)
	}
	if len(series) == 0 {
		return []int{}, nil
	}

	// Candidates are generated from integer steps so the range endpoints
	// are exact.
	var thresholds []float64
	for t := 35; t >= 20; t-- {
		thresholds = append(thresholds, float64(t)/10)
	}
	for t := 200; t >= 150; t -= 5 {
		thresholds = append(thresholds, float64(t)/100)
	}

	best := []int{}
	bestDiff := math.Inf(1)
	for _, threshold := range thresholds {
		anomalies := DetectRobust(series, threshold)
		fraction := float64(len(anomalies)) / float64(len(series))

		if diff := math.Abs(fraction - targetRate); diff < bestDiff {
			bestDiff = diff
			best = anomalies
		}
		if fraction <= targetRate*1.2 && fraction >= targetRate*0.8 {
			break
		}
	}
	return best, nil
}
