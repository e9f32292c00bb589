package anomalyze

import (
	"errors"
	"testing"
)

func TestDetectSlidingWindow_EmptySeries(t *testing.T) {
	got, err := DetectSlidingWindow(nil, 5, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no anomalies, got %v", got)
	}
}

func TestDetectSlidingWindow_InvalidWindowSize(t *testing.T) {
	_, err := DetectSlidingWindow([]float64{1, 2, 3}, 0, 2.0)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestDetectSlidingWindow_InvalidThreshold(t *testing.T) {
	for _, threshold := range []float64{0, -1.5} {
		_, err := DetectSlidingWindow([]float64{1, 2, 3}, 5, threshold)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("threshold %v: expected ErrInvalidParameter, got %v", threshold, err)
		}
	}
}

func TestDetectSlidingWindow_SpikeAfterRunOfOnes(t *testing.T) {
	// Ten 1's then a spike. At index 10 the window holds {1,1,1,1,1,100}:
	// mean 17.5, population stddev sqrt(1361.25) ~= 36.9, deviation 82.5
	// clears 2*stddev ~= 73.8.
	series := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 100}
	got, err := DetectSlidingWindow(series, 6, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != 10 {
		t.Errorf("expected [10], got %v", got)
	}
}

func TestDetectSlidingWindow_ExactBoundaryNotFlagged(t *testing.T) {
	// With window 5 the spike's window is {1,1,1,1,100}: mean 20.8,
	// stddev 39.6, deviation 79.2 == 2*stddev exactly. The comparison is
	// strictly greater-than, so the spike is not flagged.
	series := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 100}
	got, err := DetectSlidingWindow(series, 5, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no anomalies at the exact 2-sigma boundary, got %v", got)
	}
}

func TestDetectSlidingWindow_NoFlagsBeforeWindowFills(t *testing.T) {
	// Series shorter than the window can never produce a flag.
	got, err := DetectSlidingWindow([]float64{100, 1, 1}, 5, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no anomalies before window fills, got %v", got)
	}
}

func TestDetectSlidingWindow_FlaggedIndicesRespectWindow(t *testing.T) {
	series := []float64{50, 1, 2, 1, 2, 1, 2, 90, 1, 2, 1, -80, 2, 1}
	windowSize := 4
	got, err := DetectSlidingWindow(series, windowSize, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, idx := range got {
		if idx < windowSize-1 {
			t.Errorf("index %d flagged before the window could fill", idx)
		}
	}
}

func TestDetectSlidingWindow_ConstantSeries(t *testing.T) {
	// Zero-variance windows hold only the window mean itself, so nothing
	// can exceed the strict threshold.
	series := []float64{5, 5, 5, 5, 5, 5, 5, 5}
	got, err := DetectSlidingWindow(series, 3, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no anomalies in constant series, got %v", got)
	}
}

func TestDetectSlidingWindow_IndicesStrictlyIncreasing(t *testing.T) {
	series := []float64{1, 2, 1, 2, 1, 2, 40, 1, 2, 1, -40, 2, 1, 2, 60}
	got, err := DetectSlidingWindow(series, 4, 1.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("indices not strictly increasing: %v", got)
		}
	}
	for _, idx := range got {
		if idx < 0 || idx >= len(series) {
			t.Fatalf("index %d out of series range", idx)
		}
	}
}
