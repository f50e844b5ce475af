package agent

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Buffer is the delivery side of the tracker: an in-memory queue of pending
// events, flushed as one batch whenever the debounce window goes idle or a
// lifecycle trigger demands it. Delivery is fire-and-forget; a batch that
// fails every transport is dropped, never re-queued.
type Buffer struct {
	projectID  string
	sessionID  string
	debounce   time.Duration
	transports []Transport
	log        *zap.Logger

	mu      sync.Mutex
	pending []Event
	timer   *time.Timer
}

func newBuffer(projectID, sessionID string, debounce time.Duration, transports []Transport, log *zap.Logger) *Buffer {
	return &Buffer{
		projectID:  projectID,
		sessionID:  sessionID,
		debounce:   debounce,
		transports: transports,
		log:        log,
	}
}

// Enqueue appends an event and rearms the debounce timer, so a burst of
// rapid input events collapses into a single network operation.
func (b *Buffer) Enqueue(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, e)
	if b.timer == nil {
		b.timer = time.AfterFunc(b.debounce, b.Flush)
	} else {
		b.timer.Reset(b.debounce)
	}
}

// Flush transmits everything queued so far as one batch. The queue is
// swapped out under the lock before any transmission starts, so an event
// arriving mid-flush lands in the fresh queue instead of being lost with the
// in-flight batch. Synchronous: lifecycle callers need the send attempted
// before the page is discarded.
func (b *Buffer) Flush() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	events := b.pending
	b.pending = nil
	b.mu.Unlock()

	if len(events) == 0 {
		return
	}

	b.send(Batch{
		ProjectID: b.projectID,
		SessionID: b.sessionID,
		Events:    events,
	})
}

// send walks the transport list in order and stops at the first success.
// This is failure-fallback, not fan-out: under normal operation exactly one
// endpoint receives the batch.
func (b *Buffer) send(batch Batch) {
	for _, t := range b.transports {
		err := t.Send(batch)
		if err == nil {
			return
		}
		b.log.Debug("transport failed, falling through", zap.Error(err))
	}

	// Every candidate failed. The batch is lost.
	b.log.Warn("batch dropped after exhausting transports",
		zap.Int("events", len(batch.Events)))
}

// Len reports the number of events waiting for the next flush.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
