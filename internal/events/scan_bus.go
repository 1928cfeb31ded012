package events

import (
	"sync"

	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
)

// DefaultBufferSize is the per-subscriber queue length.
const DefaultBufferSize = 16

// Subscription is a single listener registered on a ScanBus.
// C is closed once the subscription is removed.
type Subscription struct {
	C <-chan models.ScanEvent

	id uint64
	ch chan models.ScanEvent
}

// ScanBus broadcasts "QR scanned" events to every live subscriber.
// Events are not buffered for future subscribers and are dropped for a
// subscriber whose queue is full.
type ScanBus struct {
	mu     sync.RWMutex
	subs   map[uint64]chan models.ScanEvent
	nextID uint64
	buffer int
	closed bool
}

// NewScanBus creates a bus whose subscribers queue up to bufferSize events.
func NewScanBus(bufferSize int) *ScanBus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &ScanBus{
		subs:   make(map[uint64]chan models.ScanEvent),
		buffer: bufferSize,
	}
}

// Subscribe registers a new listener.
func (b *ScanBus) Subscribe() *Subscription {
	ch := make(chan models.ScanEvent, b.buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{C: ch, id: b.nextID, ch: ch}
	if b.closed {
		close(ch)
		return sub
	}
	b.subs[sub.id] = ch

	logger.Log.Debugw("scan subscriber added", "subscriber_id", sub.id, "subscribers", len(b.subs))
	return sub
}

// Unsubscribe removes the listener and closes its channel. Calling it more
// than once is a no-op.
func (b *ScanBus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subs[sub.id]
	if !ok {
		return
	}
	delete(b.subs, sub.id)
	close(ch)

	logger.Log.Debugw("scan subscriber removed", "subscriber_id", sub.id, "subscribers", len(b.subs))
}

// Publish delivers a scan event for transactionID to every current subscriber
// and returns the number of subscribers that received it.
func (b *ScanBus) Publish(transactionID string) int {
	event := models.ScanEvent{TransactionID: transactionID}

	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for id, ch := range b.subs {
		select {
		case ch <- event:
			delivered++
		default:
			logger.Log.Warnw("scan subscriber queue full, event dropped",
				"subscriber_id", id,
				"transaction_id", transactionID,
			)
		}
	}
	return delivered
}

// Subscribers returns the number of registered listeners.
func (b *ScanBus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close removes every subscriber. Subscriptions created afterwards are
// returned already closed.
func (b *ScanBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	b.closed = true
}
