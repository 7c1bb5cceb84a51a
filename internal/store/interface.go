package store

import (
	"context"
	"time"

	"codeberg.org/ssidwatch/ssidwatch/internal/history"
)

// ReportWriter regenerates the full human-readable report from the
// history, overwriting any previous content.
type ReportWriter interface {
	Write(h *history.History) error
}

// Observation is one recorded aggregation event.
type Observation struct {
	SSID       string
	CapturedAt float64
	Latency    float64
	RecordedAt time.Time
}

// ObservationLog persists individual aggregation events for offline
// latency analysis.
type ObservationLog interface {
	Record(ctx context.Context, obs *Observation) error
	Close() error
}
