// Package queue implements the bounded sample queue between the periodic
// scan task and the aggregation task: a fixed-capacity circular buffer
// guarded by one mutex and two condition variables. Backpressure suspends
// the producer; entries are never dropped once accepted and are delivered
// in strict FIFO order.
package queue

import (
	"sync"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
)

// DefaultCapacity matches the 32-slot buffer the timing contract was
// validated against.
const DefaultCapacity = 32

// ErrClosed is returned by Fill once the queue has been shut down.
var ErrClosed = errors.New().New(errors.ErrQueueClosed)

// Entry is one observed identifier with its capture timestamp in
// monotonic seconds.
type Entry struct {
	SSID      string
	Timestamp float64
}

// Queue is a single-producer single-consumer bounded FIFO.
type Queue struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	entries []Entry
	head    int
	tail    int
	full    bool
	empty   bool
	closed  bool
}

// New creates a queue with the given capacity, falling back to
// DefaultCapacity when the value is unusable.
func New(capacity int) *Queue {
	if capacity < 2 {
		capacity = DefaultCapacity
	}

	q := &Queue{
		entries: make([]Entry, capacity),
		empty:   true,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)

	return q
}

// Fill runs source with the queue lock held, after suspending until at
// least one slot is free. The add callback inserts one entry and reports
// whether it was accepted; once the queue fills up mid-cycle it returns
// false and the caller is expected to discard the remainder of that
// cycle's results.
//
// Holding the lock across the whole source invocation deliberately blocks
// the consumer for the duration of a scan. That reproduces the observed
// backpressure timing of the original system; narrowing the critical
// section would change when the consumer drains relative to slow scans.
func (q *Queue) Fill(source func(add func(Entry) bool) error) error {
	q.mu.Lock()

	for q.full && !q.closed {
		q.notFull.Wait()
	}
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}

	added := false
	err := source(func(e Entry) bool {
		if q.full {
			return false
		}

		q.entries[q.tail] = e
		q.tail++
		if q.tail == len(q.entries) {
			q.tail = 0
		}
		if q.tail == q.head {
			q.full = true
		}
		q.empty = false
		added = true

		return true
	})

	q.mu.Unlock()

	if added {
		q.notEmpty.Signal()
	}
	if err != nil {
		return err
	}

	return nil
}

// Pop removes and returns the oldest entry, suspending while the queue is
// empty. It returns ok=false only once the queue is closed and fully
// drained.
func (q *Queue) Pop() (Entry, bool) {
	q.mu.Lock()

	for q.empty && !q.closed {
		q.notEmpty.Wait()
	}
	if q.empty {
		q.mu.Unlock()
		return Entry{}, false
	}

	e := q.entries[q.head]
	q.entries[q.head] = Entry{}
	q.head++
	if q.head == len(q.entries) {
		q.head = 0
	}
	if q.head == q.tail {
		q.empty = true
	}
	q.full = false

	q.mu.Unlock()
	q.notFull.Signal()

	return e, true
}

// Close wakes all suspended tasks. Subsequent Fill calls fail with
// ErrClosed; Pop drains whatever is left and then reports closure.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch {
	case q.full:
		return len(q.entries)
	case q.empty:
		return 0
	default:
		return (q.tail - q.head + len(q.entries)) % len(q.entries)
	}
}

// Cap returns the fixed capacity.
func (q *Queue) Cap() int {
	return len(q.entries)
}
