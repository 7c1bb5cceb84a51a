// Package sampler contains the two real-time worker tasks: the periodic
// producer that scans for identifiers and the aggregation consumer that
// folds them into the history and persists it. The tasks communicate only
// through the bounded sample queue.
package sampler

import (
	"context"
	"runtime"
	"time"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
	"codeberg.org/ssidwatch/ssidwatch/internal/logger"
	"codeberg.org/ssidwatch/ssidwatch/internal/queue"
	"codeberg.org/ssidwatch/ssidwatch/internal/rt"
	"codeberg.org/ssidwatch/ssidwatch/internal/scanner"
)

// Producer wakes on a fixed period, invokes the scanner and enqueues every
// discovered identifier with its capture timestamp.
type Producer struct {
	queue    *queue.Queue
	scanner  scanner.Scanner
	clock    Clock
	period   time.Duration
	priority int
}

// NewProducer wires the periodic scan task.
func NewProducer(q *queue.Queue, s scanner.Scanner, c Clock, period time.Duration, priority int) *Producer {
	return &Producer{
		queue:    q,
		scanner:  s,
		clock:    c,
		period:   period,
		priority: priority,
	}
}

// Run loops until the context is cancelled or the queue is closed. The
// wake-up deadline is absolute and advanced by the period every iteration,
// so the cadence does not drift with scan duration.
func (p *Producer) Run(ctx context.Context) {
	runtime.LockOSThread()
	if err := rt.MakeRealtime(p.priority); err != nil {
		logger.Warn().Err(err).Msg("Producer running without SCHED_RR")
	}

	deadline := time.Now()

	for {
		deadline = deadline.Add(p.period)

		if err := p.cycle(ctx); errors.Is(err, queue.ErrClosed) {
			return
		}

		if !sleepUntil(ctx, deadline) {
			return
		}
	}
}

// cycle performs one scan-and-enqueue pass. The queue lock is held for the
// entire scanner invocation; results that do not fit in the remaining
// capacity are dropped for this cycle.
func (p *Producer) cycle(ctx context.Context) error {
	err := p.queue.Fill(func(add func(queue.Entry) bool) error {
		ssids, err := p.scanner.Scan(ctx)
		if err != nil {
			return err
		}

		for i, ssid := range ssids {
			if !add(queue.Entry{SSID: ssid, Timestamp: p.clock.Now()}) {
				logger.Debug().
					Int("dropped", len(ssids)-i).
					Msg("Queue full, discarding remainder of scan")
				break
			}
		}

		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, queue.ErrClosed):
		return err
	default:
		// Soft failure: skip this cycle, history is untouched.
		logger.Debug().Err(err).Msg("Scan failed, skipping cycle")
	}

	return nil
}

// sleepUntil blocks until the absolute deadline, returning false when the
// context is cancelled first.
func sleepUntil(ctx context.Context, deadline time.Time) bool {
	d := time.Until(deadline)
	if d <= 0 {
		// Overran the period; start the next cycle immediately.
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
