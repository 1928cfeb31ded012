package services

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=services

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/metrics"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
)

// Error variables
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidUpdate       = errors.New("invalid transaction update")
)

// TransactionStore is the authoritative transaction registry.
type TransactionStore interface {
	Create(ctx context.Context, data models.NewTransaction) *models.Transaction
	GetByID(ctx context.Context, id string) (*models.Transaction, bool)
	GetAll(ctx context.Context) []models.Transaction
	// Modify merges a patch and returns the record before and after it.
	Modify(ctx context.Context, id string, patch models.TransactionPatch) (before, after *models.Transaction, ok bool)
}

// ScanPublisher broadcasts "QR scanned" notifications.
type ScanPublisher interface {
	Publish(transactionID string) int // Delivers the event to current subscribers
}

// TransactionEventPublisher ships transaction lifecycle events to downstream consumers.
type TransactionEventPublisher interface {
	PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error // Publishes a single event
}

// TransactionService handles transaction lifecycle operations for the HTTP layer.
type TransactionService struct {
	store     TransactionStore
	scans     ScanPublisher
	publisher TransactionEventPublisher
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService. publisher may be nil.
func NewTransactionService(
	store TransactionStore,
	scans ScanPublisher,
	publisher TransactionEventPublisher,
) *TransactionService {
	return &TransactionService{
		store:     store,
		scans:     scans,
		publisher: publisher,
		now:       time.Now,
	}
}

// publishEvent publishes a lifecycle event, logging instead of failing the caller.
func (s *TransactionService) publishEvent(ctx context.Context, eventType string, tx models.Transaction) {
	if s.publisher == nil {
		logger.Log.Debugw("event publisher not configured, skipping publishing", "transaction_id", tx.ID, "event", eventType)
		return
	}

	event := models.TransactionEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		Timestamp:   s.now().Unix(),
		Transaction: tx,
	}

	if err := s.publisher.PublishTransactionEvent(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", tx.ID, "event", eventType, "error", err)
		return
	}
	logger.Log.Infow("transaction event published", "transaction_id", tx.ID, "event", eventType)
}

// Create stores a new pending transaction.
func (s *TransactionService) Create(ctx context.Context, data models.NewTransaction) *models.Transaction {
	tx := s.store.Create(ctx, data)
	metrics.TransactionsTotal.WithLabelValues(string(models.StatusPending)).Inc()

	s.publishEvent(ctx, models.EventTransactionCreated, *tx)
	return tx
}

// Get returns a transaction by ID.
func (s *TransactionService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	tx, ok := s.store.GetByID(ctx, id)
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

// List returns every transaction, newest first.
func (s *TransactionService) List(ctx context.Context) []models.Transaction {
	txs := s.store.GetAll(ctx)
	slices.SortStableFunc(txs, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return txs
}

// Update applies a status or detail update.
// A status change on a completed or cancelled transaction is ignored and
// the current record is returned without error.
func (s *TransactionService) Update(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error) {
	if upd == nil {
		return nil, ErrInvalidUpdate
	}

	patch := upd.Patch()
	before, after, ok := s.store.Modify(ctx, id, patch)
	if !ok {
		return nil, ErrTransactionNotFound
	}

	switch {
	case patch.Status != nil && before.Status.Terminal():
		logger.Log.Infow("status update ignored for finalized transaction",
			"transaction_id", id,
			"status", before.Status,
			"requested_status", *patch.Status,
		)
	case before.Status != after.Status:
		metrics.TransactionsTotal.WithLabelValues(string(after.Status)).Inc()
		s.publishEvent(ctx, statusEventType(after.Status), *after)
	default:
		s.publishEvent(ctx, models.EventTransactionUpdated, *after)
	}

	return after, nil
}

// Summary aggregates revenue and status counts over all transactions.
func (s *TransactionService) Summary(ctx context.Context) models.Summary {
	return models.Summarize(s.store.GetAll(ctx))
}

// NotifyView publishes a scan event for an existing transaction.
// It reports whether the transaction exists; unknown IDs publish nothing.
func (s *TransactionService) NotifyView(ctx context.Context, id string) bool {
	if _, ok := s.store.GetByID(ctx, id); !ok {
		logger.Log.Warnw("received view notification for non-existent transaction", "transaction_id", id)
		return false
	}

	delivered := s.scans.Publish(id)
	metrics.ScanEventsPublished.Inc()

	logger.Log.Infow("qr scanned event emitted", "transaction_id", id, "subscribers", delivered)
	return true
}

func statusEventType(status models.TransactionStatus) string {
	switch status {
	case models.StatusCompleted:
		return models.EventTransactionCompleted
	case models.StatusCancelled:
		return models.EventTransactionCancelled
	default:
		return models.EventTransactionUpdated
	}
}
