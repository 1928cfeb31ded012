package handlers

//go:generate mockgen -source=get_transaction.go -destination=get_transaction_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/middlewares"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/sbilibin2017/qr-drive-cashier/internal/services"
)

// TransactionGetter defines the service method needed by this handler.
type TransactionGetter interface {
	Get(ctx context.Context, id string) (*models.Transaction, error)
}

// NewGetTransactionHandler returns an HTTP handler for a single transaction.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func NewGetTransactionHandler(svc TransactionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		tx, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				writeError(w, http.StatusNotFound, "Transaction not found")
				return
			}
			logger.Log.Errorw("failed to get transaction",
				"transaction_id", id,
				"request_id", middlewares.RequestID(r.Context()),
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, tx)
	}
}
