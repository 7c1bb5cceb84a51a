package sampler

import (
	"context"
	"runtime"
	"time"

	"codeberg.org/ssidwatch/ssidwatch/internal/history"
	"codeberg.org/ssidwatch/ssidwatch/internal/logger"
	"codeberg.org/ssidwatch/ssidwatch/internal/queue"
	"codeberg.org/ssidwatch/ssidwatch/internal/rt"
	"codeberg.org/ssidwatch/ssidwatch/internal/store"
)

// Consumer drains the queue one entry at a time, folds each sample into
// the history and persists a full report snapshot every cycle. It owns the
// history and the report exclusively.
type Consumer struct {
	queue    *queue.Queue
	history  *history.History
	report   store.ReportWriter
	log      store.ObservationLog
	clock    Clock
	priority int
}

// NewConsumer wires the aggregation task.
func NewConsumer(
	q *queue.Queue,
	h *history.History,
	report store.ReportWriter,
	log store.ObservationLog,
	c Clock,
	priority int,
) *Consumer {
	return &Consumer{
		queue:    q,
		history:  h,
		report:   report,
		log:      log,
		clock:    c,
		priority: priority,
	}
}

// Run loops until the queue is closed and fully drained, then writes one
// final report so no aggregated sample is lost on shutdown.
func (c *Consumer) Run(ctx context.Context) {
	runtime.LockOSThread()
	if err := rt.MakeRealtime(c.priority); err != nil {
		logger.Warn().Err(err).Msg("Consumer running without SCHED_RR")
	}

	for {
		entry, ok := c.queue.Pop()
		if !ok {
			c.flush()
			return
		}

		now := c.clock.Now()
		if c.history.Observe(entry.SSID, entry.Timestamp, now) {
			obs := &store.Observation{
				SSID:       entry.SSID,
				CapturedAt: entry.Timestamp,
				Latency:    now - entry.Timestamp,
				RecordedAt: time.Now(),
			}
			if err := c.log.Record(ctx, obs); err != nil {
				logger.Debug().Err(err).Msg("Failed to record observation")
			}
		}

		// One full snapshot per dequeue; a write failure only skips
		// this cycle's persist, the history stays in memory.
		if err := c.report.Write(c.history); err != nil {
			logger.Warn().Err(err).Msg("Failed to write report, skipping persist")
		}
	}
}

func (c *Consumer) flush() {
	if c.history.Len() == 0 {
		return
	}
	if err := c.report.Write(c.history); err != nil {
		logger.Error().Err(err).Msg("Failed to write final report")
		return
	}
	logger.Info().
		Int("identifiers", c.history.Len()).
		Int("samples", c.history.Samples()).
		Msg("Final report written")
}
