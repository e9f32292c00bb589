package anomalyze

import (
	"fmt"
	"math"
)

// DetectSlidingWindow scans series in order, maintaining a rolling window of
// the trailing windowSize values (including the current one). Once the window
// has filled, an index is flagged as anomalous when its value deviates from
// the window mean by strictly more than threshold standard deviations. No
// index is flagged before the window fills.
//
// The returned indices are strictly increasing. An empty series yields an
// empty result. windowSize must be >= 1 and threshold > 0.
func DetectSlidingWindow(series []float64, windowSize int, threshold float64) ([]int, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("anomalyze: threshold must be > 0, got %v: %w", threshold, ErrInvalidParameter)
	}
	stats, err := NewRollingStats(windowSize)
	if err != nil {
		return nil, err
	}

	anomalies := []int{}
	for i, v := range series {
		stats.Add(v)
		if !stats.Ready() {
			continue
		}
		mean := stats.Mean()
		stddev := stats.Stddev()
		if math.Abs(v-mean) > threshold*stddev {
			anomalies = append(anomalies, i)
		}
	}
	return anomalies, nil
}
