package history_test

import (
	"testing"

	"codeberg.org/ssidwatch/ssidwatch/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBuildsOrderedHistory(t *testing.T) {
	h := history.New()

	assert.True(t, h.Observe("NetA", 10.0, 10.1))
	assert.True(t, h.Observe("NetA", 10.5, 10.6))
	assert.True(t, h.Observe("NetB", 10.6, 10.7))

	series := h.Series()
	require.Len(t, series, 2)

	assert.Equal(t, "NetA", series[0].SSID)
	assert.Equal(t, []float64{10.0, 10.5}, series[0].Timestamps)
	assert.Equal(t, "NetB", series[1].SSID)
	assert.Equal(t, []float64{10.6}, series[1].Timestamps)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 3, h.Samples())
}

func TestObserveDeduplicatesRepeatedTimestamp(t *testing.T) {
	h := history.New()

	require.True(t, h.Observe("NetA", 10.0, 10.1))
	assert.False(t, h.Observe("NetA", 10.0, 10.2), "exact timestamp repeat must not append")

	series := h.Series()
	require.Len(t, series, 1)
	assert.Len(t, series[0].Timestamps, 1)
	assert.Len(t, series[0].Latencies, 1)

	// A genuinely new capture still appends.
	assert.True(t, h.Observe("NetA", 10.3, 10.4))
	assert.Len(t, series[0].Timestamps, 2)
}

func TestLatencyIsAggregationMinusCapture(t *testing.T) {
	h := history.New()

	h.Observe("NetA", 10.0, 10.25)
	h.Observe("NetA", 12.0, 12.5)

	s := h.Series()[0]
	require.Len(t, s.Latencies, 2)
	assert.InDelta(t, 0.25, s.Latencies[0], 1e-9)
	assert.InDelta(t, 0.5, s.Latencies[1], 1e-9)

	for _, l := range s.Latencies {
		assert.GreaterOrEqual(t, l, 0.0)
	}
}

func TestSeriesLengthsStayEqual(t *testing.T) {
	h := history.New()

	ssids := []string{"a", "b", "a", "c", "b", "a"}
	for i, ssid := range ssids {
		h.Observe(ssid, float64(i), float64(i)+0.01)
	}
	// Rejected repeats must not skew either side.
	h.Observe("a", 5.0, 99.0)
	h.Observe("b", 4.0, 99.0)

	for _, s := range h.Series() {
		assert.Len(t, s.Latencies, len(s.Timestamps), "series %s out of balance", s.SSID)
	}
}
