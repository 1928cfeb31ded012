package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestReferenceRedisRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewReferenceRedisRepository(rdb, 2*time.Second)

	t.Run("Save and Get reference", func(t *testing.T) {
		err := repo.Save(ctx, "LC-PST-20250720-103000-ABC123", "tx-1")
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "LC-PST-20250720-103000-ABC123")
		assert.NoError(t, err)
		assert.Equal(t, "tx-1", got)
	})

	t.Run("Get missing reference returns ErrReferenceNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "LC-PST-20250720-103000-ZZZZZZ")
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})

	t.Run("Reference expires", func(t *testing.T) {
		err := repo.Save(ctx, "LC-PST-20250720-103001-EXP001", "tx-2")
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, "LC-PST-20250720-103001-EXP001")
		assert.ErrorIs(t, err, ErrReferenceNotFound)
	})
}

func TestReferenceMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 7, 20, 10, 30, 0, 0, time.Local)

	repo := NewReferenceMemoryRepository(2 * time.Minute)
	repo.now = func() time.Time { return now }

	assert.NoError(t, repo.Save(ctx, "LC-PST-20250720-103000-ABC123", "tx-1"))
	assert.NoError(t, repo.Save(ctx, "LC-PST-20250720-103000-DEF456", "tx-2"))

	got, err := repo.Get(ctx, "LC-PST-20250720-103000-ABC123")
	assert.NoError(t, err)
	assert.Equal(t, "tx-1", got)

	_, err = repo.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	now = now.Add(2 * time.Minute)
	_, err = repo.Get(ctx, "LC-PST-20250720-103000-DEF456")
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	assert.NoError(t, repo.Save(ctx, "LC-PST-20250720-103200-GHI789", "tx-3"))
	assert.Len(t, repo.entries, 1, "expired entries are dropped on save")
}
