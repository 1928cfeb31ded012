// Package seeders loads demo transactions so a fresh dashboard is not empty.
package seeders

import (
	"context"

	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
)

// TransactionWriter is the subset of the transaction service the seeder uses.
type TransactionWriter interface {
	Create(ctx context.Context, data models.NewTransaction) *models.Transaction
	Update(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error)
}

// DemoTransaction is a seed row and the status it ends in.
type DemoTransaction struct {
	Data   models.NewTransaction
	Status models.TransactionStatus
}

// DemoTransactions are the rows loaded by Seed.
var DemoTransactions = []DemoTransaction{
	{
		Data:   models.NewTransaction{Type: "Pembayaran Digital", CustomerName: "Budi Santoso", Amount: 75000, Notes: "Kopi dan 2 Roti"},
		Status: models.StatusCompleted,
	},
	{
		Data:   models.NewTransaction{Type: "Pembayaran Digital", CustomerName: "Siti Aminah", Amount: 150000, Notes: "Makan siang keluarga"},
		Status: models.StatusCompleted,
	},
	{
		Data:   models.NewTransaction{Type: "Pembayaran Digital", CustomerName: "Joko Susilo", Amount: 25000, Notes: "Salah input"},
		Status: models.StatusCancelled,
	},
	{
		Data:   models.NewTransaction{Type: "Pembayaran Digital", CustomerName: "Pelanggan", Amount: 0, Notes: "Scan QR untuk membayar"},
		Status: models.StatusPending,
	},
}

// Seed creates every demo transaction and moves it to its final status.
func Seed(ctx context.Context, svc TransactionWriter) error {
	for _, demo := range DemoTransactions {
		tx := svc.Create(ctx, demo.Data)
		if demo.Status == models.StatusPending {
			continue
		}
		if _, err := svc.Update(ctx, tx.ID, models.StatusUpdate{Status: demo.Status}); err != nil {
			return err
		}
	}

	logger.Log.Infow("demo transactions seeded", "count", len(DemoTransactions))
	return nil
}
