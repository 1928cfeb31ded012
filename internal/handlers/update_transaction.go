package handlers

//go:generate mockgen -source=update_transaction.go -destination=update_transaction_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/middlewares"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/sbilibin2017/qr-drive-cashier/internal/services"
)

// TransactionUpdater defines the service method needed by this handler.
type TransactionUpdater interface {
	Update(ctx context.Context, id string, upd models.TransactionUpdate) (*models.Transaction, error)
}

// UpdateTransactionRequest is either a status change or customer details
// swagger:model UpdateTransactionRequest
type UpdateTransactionRequest struct {
	// New status, sent alone
	// enum: pending,completed,cancelled
	Status string `json:"status,omitempty"`

	// Customer name, sent together with amount
	// default: Budi Santoso
	CustomerName string `json:"customerName,omitempty"`

	// Positive amount in rupiah, sent together with customerName
	// default: 75000
	Amount int64 `json:"amount,omitempty"`
}

const (
	msgInvalidUpdate = "Invalid update data. Provide either `status` or both `customerName` and `amount`."
	msgInvalidStatus = "Invalid status value."
	msgEmptyName     = "Customer name cannot be empty."
	msgInvalidAmount = "Amount must be a positive number."
)

// NewUpdateTransactionHandler returns an HTTP handler that applies a status
// change or customer details to a transaction.
// @Summary Update transaction
// @Description Send {"status"} to confirm or cancel, or {"customerName","amount"} from the customer form.
// @Description Status changes on completed or cancelled transactions are ignored and the current record is returned.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body handlers.UpdateTransactionRequest true "Update"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} handlers.ErrorResponse "Invalid update data"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [put]
func NewUpdateTransactionHandler(svc TransactionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Log.Warnw("failed to decode update transaction request", "transaction_id", id, "error", err)
			writeError(w, http.StatusBadRequest, msgInvalidUpdate)
			return
		}

		upd, msg := parseTransactionUpdate(body)
		if upd == nil {
			logger.Log.Warnw("invalid transaction update", "transaction_id", id, "reason", msg)
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		tx, err := svc.Update(r.Context(), id, upd)
		if err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				writeError(w, http.StatusNotFound, "Transaction not found")
				return
			}
			logger.Log.Errorw("failed to update transaction",
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

// parseTransactionUpdate turns a raw body into exactly one update variant.
// On failure it returns nil and the message for the client.
func parseTransactionUpdate(body map[string]json.RawMessage) (models.TransactionUpdate, string) {
	rawStatus, hasStatus := nonNull(body, "status")
	rawName, hasName := nonNull(body, "customerName")
	rawAmount, hasAmount := nonNull(body, "amount")

	switch {
	case hasStatus && !hasName && !hasAmount:
		var status models.TransactionStatus
		if err := json.Unmarshal(rawStatus, &status); err != nil || !status.Valid() {
			return nil, msgInvalidStatus
		}
		return models.StatusUpdate{Status: status}, ""

	case !hasStatus && hasName && hasAmount:
		var name string
		if err := json.Unmarshal(rawName, &name); err != nil {
			return nil, msgEmptyName
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, msgEmptyName
		}

		amount, ok := parsePositiveAmount(rawAmount)
		if !ok {
			return nil, msgInvalidAmount
		}
		return models.DetailUpdate{CustomerName: name, Amount: amount}, ""

	default:
		return nil, msgInvalidUpdate
	}
}

func nonNull(body map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := body[key]
	if !ok || isNullOrEmpty(raw) {
		return nil, false
	}
	return raw, true
}
