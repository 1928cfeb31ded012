package handlers

//go:generate mockgen -source=list_transactions.go -destination=list_transactions_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
)

// TransactionLister defines the service method needed by this handler.
type TransactionLister interface {
	List(ctx context.Context) []models.Transaction
}

// NewListTransactionsHandler returns an HTTP handler listing every transaction, newest first.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} models.Transaction
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs := svc.List(r.Context())
		if txs == nil {
			txs = []models.Transaction{}
		}
		writeJSON(w, http.StatusOK, txs)
	}
}
