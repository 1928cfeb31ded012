package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		txs      []Transaction
		expected Summary
	}{
		{
			name:     "no transactions",
			txs:      nil,
			expected: Summary{},
		},
		{
			name: "only pending",
			txs: []Transaction{
				{Status: StatusPending, Amount: 1000},
				{Status: StatusPending},
			},
			expected: Summary{TotalTransactions: 2, PendingTransactions: 2},
		},
		{
			name: "mixed statuses",
			txs: []Transaction{
				{Status: StatusCompleted, Amount: 75000},
				{Status: StatusCompleted, Amount: 150000},
				{Status: StatusCancelled, Amount: 25000},
				{Status: StatusPending, Amount: 0},
			},
			expected: Summary{
				TotalRevenue:          225000,
				TotalTransactions:     4,
				CompletedTransactions: 2,
				CancelledTransactions: 1,
				PendingTransactions:   1,
				CompletionRate:        200.0 / 3.0,
			},
		},
		{
			name: "all cancelled",
			txs: []Transaction{
				{Status: StatusCancelled, Amount: 5000},
			},
			expected: Summary{TotalTransactions: 1, CancelledTransactions: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.txs)
			assert.Equal(t, tt.expected.TotalRevenue, got.TotalRevenue)
			assert.Equal(t, tt.expected.TotalTransactions, got.TotalTransactions)
			assert.Equal(t, tt.expected.CompletedTransactions, got.CompletedTransactions)
			assert.Equal(t, tt.expected.CancelledTransactions, got.CancelledTransactions)
			assert.Equal(t, tt.expected.PendingTransactions, got.PendingTransactions)
			assert.InDelta(t, tt.expected.CompletionRate, got.CompletionRate, 1e-9)
		})
	}
}

func TestTransactionStatus(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, TransactionStatus("refunded").Valid())

	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestTransactionUpdate_Patch(t *testing.T) {
	tx := Transaction{ID: "id-1", Type: "Transfer", Status: StatusPending, CustomerName: "Pelanggan"}

	DetailUpdate{CustomerName: "Budi", Amount: 50000}.Patch().Apply(&tx)
	assert.Equal(t, "Budi", tx.CustomerName)
	assert.Equal(t, int64(50000), tx.Amount)
	assert.Equal(t, StatusPending, tx.Status)
	assert.Equal(t, "Transfer", tx.Type)

	StatusUpdate{Status: StatusCompleted}.Patch().Apply(&tx)
	assert.Equal(t, StatusCompleted, tx.Status)
	assert.Equal(t, "Budi", tx.CustomerName)
	assert.Equal(t, "id-1", tx.ID)
}
