// Package history keeps the per-identifier observation record: for every
// SSID ever seen, an append-only series of capture timestamps and the
// latency between capture and aggregation. The history is owned solely by
// the aggregation task and needs no locking.
package history

// Series is the record for one identifier. Timestamps and Latencies are
// always the same length.
type Series struct {
	SSID       string
	Timestamps []float64
	Latencies  []float64
}

// Last returns the most recently recorded capture timestamp.
func (s *Series) Last() float64 {
	return s.Timestamps[len(s.Timestamps)-1]
}

// History is an insertion-ordered map from identifier to its series.
type History struct {
	order []*Series
	index map[string]*Series
}

// New creates an empty history.
func New() *History {
	return &History{index: make(map[string]*Series)}
}

// Observe folds one dequeued sample into the history. A repeat of an
// identifier's most recent capture timestamp is ignored, so re-reading the
// same scan result does not duplicate entries. It reports whether a pair
// was recorded; latency is now minus the capture timestamp.
func (h *History) Observe(ssid string, captured, now float64) bool {
	if s, ok := h.index[ssid]; ok {
		if s.Last() == captured {
			return false
		}

		s.Timestamps = append(s.Timestamps, captured)
		s.Latencies = append(s.Latencies, now-captured)

		return true
	}

	s := &Series{
		SSID:       ssid,
		Timestamps: []float64{captured},
		Latencies:  []float64{now - captured},
	}
	h.order = append(h.order, s)
	h.index[ssid] = s

	return true
}

// Series returns all records in first-seen order.
func (h *History) Series() []*Series {
	return h.order
}

// Len returns the number of distinct identifiers seen.
func (h *History) Len() int {
	return len(h.order)
}

// Samples returns the total number of recorded pairs across all series.
func (h *History) Samples() int {
	n := 0
	for _, s := range h.order {
		n += len(s.Timestamps)
	}

	return n
}
