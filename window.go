package anomalyze

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// RollingStats maintains a fixed-capacity FIFO window over the most recent
// values of a stream and reports their mean and population standard
// deviation. Statistics are recomputed from the current contents on every
// call rather than updated incrementally.
type RollingStats struct {
	buf   []float64
	head  int
	count int
}

// NewRollingStats returns a rolling window holding the last windowSize
// values. windowSize must be >= 1.
func NewRollingStats(windowSize int) (*RollingStats, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("anomalyze: window size must be >= 1, got %d: %w", windowSize, ErrInvalidParameter)
	}
	return &RollingStats{buf: make([]float64, 0, windowSize)}, nil
}

// Add appends a value to the window, evicting the oldest value first if the
// window is at capacity.
func (r *RollingStats) Add(value float64) {
	if len(r.buf) < cap(r.buf) {
		r.buf = append(r.buf, value)
		return
	}
	r.buf[r.head] = value
	r.head = (r.head + 1) % cap(r.buf)
}

// Len returns the number of values currently held, always <= the capacity.
func (r *RollingStats) Len() int { return len(r.buf) }

// Ready reports whether the window has filled to capacity.
func (r *RollingStats) Ready() bool { return len(r.buf) == cap(r.buf) }

// Mean returns the arithmetic mean of the current contents, or 0 if the
// window is empty.
func (r *RollingStats) Mean() float64 {
	if len(r.buf) == 0 {
		return 0
	}
	return stat.Mean(r.buf, nil)
}

// Stddev returns the population standard deviation of the current contents,
// or 0 if the window is empty.
func (r *RollingStats) Stddev() float64 {
	if len(r.buf) == 0 {
		return 0
	}
	return stat.PopStdDev(r.buf, nil)
}
