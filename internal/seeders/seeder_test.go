package seeders

import (
	"context"
	"testing"

	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/sbilibin2017/qr-drive-cashier/internal/repositories"
	"github.com/sbilibin2017/qr-drive-cashier/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTransactionService(repositories.NewTransactionMemoryRepository(), nil, nil)

	require.NoError(t, Seed(ctx, svc))

	summary := svc.Summary(ctx)
	assert.Equal(t, 4, summary.TotalTransactions)
	assert.Equal(t, 2, summary.CompletedTransactions)
	assert.Equal(t, 1, summary.CancelledTransactions)
	assert.Equal(t, 1, summary.PendingTransactions)
	assert.Equal(t, int64(225000), summary.TotalRevenue)

	byName := make(map[string]models.Transaction)
	for _, tx := range svc.List(ctx) {
		byName[tx.CustomerName] = tx
	}
	assert.Equal(t, models.StatusCompleted, byName["Budi Santoso"].Status)
	assert.Equal(t, "Salah input", byName["Joko Susilo"].Notes)
	assert.Equal(t, models.StatusPending, byName["Pelanggan"].Status)
}
