package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/metrics"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

// ErrPublisherUnavailable is returned while the circuit breaker is open.
var ErrPublisherUnavailable = errors.New("transaction event publisher unavailable")

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionEventKafkaFacade publishes transaction lifecycle events to Kafka.
// Writes go through a circuit breaker.
type TransactionEventKafkaFacade struct {
	writer  KafkaWriter
	breaker *gobreaker.CircuitBreaker
}

// NewTransactionEventKafkaFacade creates a facade over writer.
func NewTransactionEventKafkaFacade(writer KafkaWriter) *TransactionEventKafkaFacade {
	const name = "kafka-transaction-events"

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(cbName string, from, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(cbName).Set(stateValue(to))
			logger.Log.Warnw("circuit breaker state changed",
				"circuit", cbName,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return &TransactionEventKafkaFacade{
		writer:  writer,
		breaker: breaker,
	}
}

// PublishTransactionEvent writes event keyed by the transaction ID.
func (f *TransactionEventKafkaFacade) PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal transaction event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Transaction.ID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	_, err = f.breaker.Execute(func() (interface{}, error) {
		return nil, f.writer.WriteMessages(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrPublisherUnavailable, err)
	}
	return err
}

// Close closes the underlying writer.
func (f *TransactionEventKafkaFacade) Close() error {
	return f.writer.Close()
}

// State returns the circuit breaker state name.
func (f *TransactionEventKafkaFacade) State() string {
	return f.breaker.State().String()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
