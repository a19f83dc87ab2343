package metrics

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
)

// LatencyRecorder tracks operation latencies
type LatencyRecorder struct {
	Latencies []time.Duration
	StartTime time.Time
}

// NewLatencyRecorder creates a new latency recorder sized for n operations
func NewLatencyRecorder(n int) *LatencyRecorder {
	return &LatencyRecorder{
		Latencies: make([]time.Duration, 0, n),
		StartTime: time.Now(),
	}
}

// Record adds a latency measurement
func (lr *LatencyRecorder) Record(start time.Time) {
	lr.Latencies = append(lr.Latencies, time.Since(start))
}

// RecordFunc measures and records the execution time of a function
func (lr *LatencyRecorder) RecordFunc(f func()) {
	start := time.Now()
	f()
	lr.Record(start)
}

// Summary holds the latency distribution of a recorder.
type Summary struct {
	Operations int
	Mean       time.Duration
	P50        time.Duration
	P90        time.Duration
	P99        time.Duration
	Max        time.Duration
}

// Summary sorts the recorded latencies and computes their distribution.
// The zero Summary is returned when nothing was recorded.
func (lr *LatencyRecorder) Summary() Summary {
	total := len(lr.Latencies)
	if total == 0 {
		return Summary{}
	}
	slices.Sort(lr.Latencies)

	var sum time.Duration
	for _, lat := range lr.Latencies {
		sum += lat
	}

	return Summary{
		Operations: total,
		Mean:       sum / time.Duration(total),
		P50:        percentile(lr.Latencies, 0.50),
		P90:        percentile(lr.Latencies, 0.90),
		P99:        percentile(lr.Latencies, 0.99),
		Max:        lr.Latencies[total-1],
	}
}

// WriteStats outputs latency statistics
func (lr *LatencyRecorder) WriteStats(w io.Writer, label string) {
	s := lr.Summary()
	if s.Operations == 0 {
		fmt.Fprintf(w, "%s: no latencies recorded\n", label)
		return
	}

	fmt.Fprintf(w, "\n=== %s ===\n", label)
	fmt.Fprintf(w, "Operations:   %s\n", humanize.Comma(int64(s.Operations)))
	fmt.Fprintf(w, "Duration:     %v\n", time.Since(lr.StartTime))
	fmt.Fprintf(w, "Mean:         %v\n", s.Mean)
	fmt.Fprintf(w, "Median (p50): %v\n", s.P50)
	fmt.Fprintf(w, "p90:          %v\n", s.P90)
	fmt.Fprintf(w, "p99:          %v\n", s.P99)
	fmt.Fprintf(w, "Max:          %v\n", s.Max)
}

// WriteMemStats outputs heap usage, e.g. before and after a traversal run
func WriteMemStats(w io.Writer, label string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fmt.Fprintf(w, "\n=== Memory Stats: %s ===\n", label)
	fmt.Fprintf(w, "Heap Alloc:   %s\n", humanize.IBytes(m.HeapAlloc))
	fmt.Fprintf(w, "Total Alloc:  %s\n", humanize.IBytes(m.TotalAlloc))
	fmt.Fprintf(w, "Mallocs:      %s\n", humanize.Comma(int64(m.Mallocs)))
	fmt.Fprintf(w, "GC Cycles:    %d\n", m.NumGC)
}

// percentile returns the q‑percentile in [0,1] using linear interpolation.
func percentile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[hi]-sorted[lo]))
}
