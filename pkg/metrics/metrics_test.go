package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPercentile(t *testing.T) {
	sorted := []time.Duration{10, 20, 30, 40, 50}

	require.Equal(t, time.Duration(10), percentile(sorted, 0))
	require.Equal(t, time.Duration(50), percentile(sorted, 1))
	require.Equal(t, time.Duration(30), percentile(sorted, 0.5))
	require.Equal(t, time.Duration(15), percentile(sorted, 0.125))
	require.Zero(t, percentile(nil, 0.5))
}

func TestSummary(t *testing.T) {
	lr := NewLatencyRecorder(4)
	lr.Latencies = append(lr.Latencies, 40, 10, 30, 20)

	s := lr.Summary()
	require.Equal(t, 4, s.Operations)
	require.Equal(t, time.Duration(25), s.Mean)
	require.Equal(t, time.Duration(40), s.Max)
	require.Equal(t, []time.Duration{10, 20, 30, 40}, lr.Latencies, "summary sorts in place")
}

func TestRecordFunc(t *testing.T) {
	lr := NewLatencyRecorder(1)
	called := false
	lr.RecordFunc(func() { called = true })

	require.True(t, called)
	require.Len(t, lr.Latencies, 1)
}

func TestWriteStats(t *testing.T) {
	var sb strings.Builder
	NewLatencyRecorder(0).WriteStats(&sb, "empty")
	require.Equal(t, "empty: no latencies recorded\n", sb.String())

	sb.Reset()
	lr := NewLatencyRecorder(2)
	lr.Latencies = append(lr.Latencies, time.Microsecond, 3*time.Microsecond)
	lr.WriteStats(&sb, "max")
	require.Contains(t, sb.String(), "=== max ===")
	require.Contains(t, sb.String(), "Operations:   2\n")
	require.Contains(t, sb.String(), "Mean:         2µs\n")
}

func TestWriteMemStats(t *testing.T) {
	var sb strings.Builder
	WriteMemStats(&sb, "now")
	require.Contains(t, sb.String(), "=== Memory Stats: now ===")
	require.Contains(t, sb.String(), "Heap Alloc:")
}
