package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/sbilibin2017/qr-drive-cashier/internal/events"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/metrics"
	"github.com/sbilibin2017/qr-drive-cashier/internal/middlewares"
)

// EventQRScanned is the SSE event name sent to QR displays.
const EventQRScanned = "qrScanned"

// ScanSubscriber defines the bus methods needed by this handler.
type ScanSubscriber interface {
	Subscribe() *events.Subscription
	Unsubscribe(sub *events.Subscription)
}

// NewQREventsHandler returns an HTTP handler streaming qrScanned events as
// server-sent events. A comment line is written every keepAlive to hold
// idle connections open; zero disables it.
// @Summary QR scan event stream
// @Description text/event-stream of `event: qrScanned` frames with data {"transactionId": "..."}.
// @Tags qr
// @Produce text/event-stream
// @Success 200 {object} models.ScanEvent
// @Router /qr/events [get]
func NewQREventsHandler(bus ScanSubscriber, keepAlive time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			logger.Log.Errorw("response writer does not support streaming",
				"request_id", middlewares.RequestID(r.Context()),
			)
			writeError(w, http.StatusInternalServerError, "Streaming unsupported")
			return
		}

		sub := bus.Subscribe()
		defer bus.Unsubscribe(sub)

		metrics.ScanSubscribers.Inc()
		defer metrics.ScanSubscribers.Dec()

		h := w.Header()
		h.Set("Content-Type", sse.ContentType)
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		var tick <-chan time.Time
		if keepAlive > 0 {
			ticker := time.NewTicker(keepAlive)
			defer ticker.Stop()
			tick = ticker.C
		}

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				logger.Log.Debugw("qr event stream closed by client")
				return

			case event, ok := <-sub.C:
				if !ok {
					return
				}
				if err := sse.Encode(w, sse.Event{Event: EventQRScanned, Data: event}); err != nil {
					logger.Log.Warnw("failed to write qr event", "transaction_id", event.TransactionID, "error", err)
					return
				}
				flusher.Flush()

			case <-tick:
				if _, err := io.WriteString(w, ": ping\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
