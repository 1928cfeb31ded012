package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
)

// TransactionMemoryRepository is the in-memory transaction store.
// It is the only component allowed to mutate transactions; every read
// returns a copy.
type TransactionMemoryRepository struct {
	mu           sync.RWMutex
	transactions map[string]models.Transaction
	now          func() time.Time
	newID        func() string
}

// TransactionRepositoryOption configures a TransactionMemoryRepository.
type TransactionRepositoryOption func(*TransactionMemoryRepository)

// WithClock overrides the clock used to stamp new transactions.
func WithClock(now func() time.Time) TransactionRepositoryOption {
	return func(r *TransactionMemoryRepository) {
		r.now = now
	}
}

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(newID func() string) TransactionRepositoryOption {
	return func(r *TransactionMemoryRepository) {
		r.newID = newID
	}
}

// NewTransactionMemoryRepository creates an empty store.
func NewTransactionMemoryRepository(opts ...TransactionRepositoryOption) *TransactionMemoryRepository {
	r := &TransactionMemoryRepository{
		transactions: make(map[string]models.Transaction),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create stores a new pending transaction built from data.
func (r *TransactionMemoryRepository) Create(ctx context.Context, data models.NewTransaction) *models.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	for {
		if _, exists := r.transactions[id]; !exists {
			break
		}
		id = r.newID()
	}

	tx := models.Transaction{
		ID:            id,
		Type:          data.Type,
		CustomerName:  data.CustomerName,
		Amount:        data.Amount,
		Status:        models.StatusPending,
		Date:          r.now(),
		Notes:         data.Notes,
		Bank:          data.Bank,
		AccountNumber: data.AccountNumber,
	}
	r.transactions[id] = tx

	logger.Log.Infow("transaction added",
		"id", id,
		"total", len(r.transactions),
	)

	return &tx
}

// GetByID returns a copy of the transaction, or false when it does not exist.
func (r *TransactionMemoryRepository) GetByID(ctx context.Context, id string) (*models.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.transactions[id]
	if !ok {
		return nil, false
	}
	return &tx, true
}

// GetAll returns copies of every transaction in no particular order.
func (r *TransactionMemoryRepository) GetAll(ctx context.Context) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txs := make([]models.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		txs = append(txs, tx)
	}
	return txs
}

// Update merges patch onto the stored transaction.
//
// It returns false when id is unknown. When the transaction already has a
// terminal status and the patch carries a status, nothing is changed and
// the current record is returned.
func (r *TransactionMemoryRepository) Update(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, bool) {
	_, after, ok := r.Modify(ctx, id, patch)
	return after, ok
}

// Modify behaves like Update and additionally returns the record as it was
// before the patch, read under the same lock.
func (r *TransactionMemoryRepository) Modify(ctx context.Context, id string, patch models.TransactionPatch) (before, after *models.Transaction, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.transactions[id]
	if !ok {
		logger.Log.Warnw("attempted to update non-existent transaction", "id", id)
		return nil, nil, false
	}
	prev := tx

	if tx.Status.Terminal() && patch.Status != nil {
		logger.Log.Warnw("attempted to change status of a finalized transaction",
			"id", id,
			"status", tx.Status,
			"requested_status", *patch.Status,
		)
		return &prev, &tx, true
	}

	patch.Apply(&tx)
	r.transactions[id] = tx

	logger.Log.Infow("transaction updated",
		"id", id,
		"status", tx.Status,
		"customer_name", tx.CustomerName,
		"amount", tx.Amount,
	)

	return &prev, &tx, true
}

// Len returns the number of stored transactions.
func (r *TransactionMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}
