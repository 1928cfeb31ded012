package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
)

// ErrReferenceNotFound is returned when a reference is unknown or has expired.
var ErrReferenceNotFound = errors.New("reference not found")

// ReferenceRedisRepository maps customer-facing references to transaction IDs using Redis
type ReferenceRedisRepository struct {
	client *redis.Client
	exp    time.Duration // lifetime of a reference, matches the QR rotation interval
}

// NewReferenceRedisRepository creates a new repository instance with the given TTL
func NewReferenceRedisRepository(client *redis.Client, expiration time.Duration) *ReferenceRedisRepository {
	return &ReferenceRedisRepository{
		client: client,
		exp:    expiration,
	}
}

func referenceKey(reference string) string {
	return fmt.Sprintf("qr_reference:%s", reference)
}

// Save stores the reference with expiration
func (r *ReferenceRedisRepository) Save(ctx context.Context, reference, transactionID string) error {
	key := referenceKey(reference)
	err := r.client.Set(ctx, key, transactionID, r.exp).Err()

	logger.Log.Infow("reference cached",
		"key", key,
		"transaction_id", transactionID,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Get returns the transaction ID for a live reference
func (r *ReferenceRedisRepository) Get(ctx context.Context, reference string) (string, error) {
	key := referenceKey(reference)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("reference lookup failed",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return "", ErrReferenceNotFound
		}
		return "", err
	}

	logger.Log.Debugw("reference resolved",
		"key", key,
		"transaction_id", val,
	)

	return val, nil
}

type referenceEntry struct {
	transactionID string
	expiresAt     time.Time
}

// ReferenceMemoryRepository is the process-local fallback used when Redis is not configured.
type ReferenceMemoryRepository struct {
	mu      sync.Mutex
	entries map[string]referenceEntry
	exp     time.Duration
	now     func() time.Time
}

// NewReferenceMemoryRepository creates an empty in-memory reference cache.
func NewReferenceMemoryRepository(expiration time.Duration) *ReferenceMemoryRepository {
	return &ReferenceMemoryRepository{
		entries: make(map[string]referenceEntry),
		exp:     expiration,
		now:     time.Now,
	}
}

// Save stores the reference and drops entries that have already expired.
func (r *ReferenceMemoryRepository) Save(ctx context.Context, reference, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ref, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, ref)
		}
	}

	r.entries[reference] = referenceEntry{
		transactionID: transactionID,
		expiresAt:     now.Add(r.exp),
	}
	return nil
}

// Get returns the transaction ID for a live reference.
func (r *ReferenceMemoryRepository) Get(ctx context.Context, reference string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[reference]
	if !ok {
		return "", ErrReferenceNotFound
	}
	if !r.now().Before(e.expiresAt) {
		delete(r.entries, reference)
		return "", ErrReferenceNotFound
	}
	return e.transactionID, nil
}
