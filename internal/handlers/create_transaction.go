package handlers

//go:generate mockgen -source=create_transaction.go -destination=create_transaction_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/middlewares"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
)

// TransactionCreator defines the service method needed by this handler.
type TransactionCreator interface {
	Create(ctx context.Context, data models.NewTransaction) *models.Transaction
}

// CreateTransactionRequest represents the JSON body for a new transaction
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Transaction category
	// default: Transfer
	Type string `json:"type"`

	// Customer display name
	// default: Budi Santoso
	CustomerName string `json:"customerName"`

	// Amount in rupiah, whole number. Omitted or null means zero.
	// default: 75000
	Amount json.RawMessage `json:"amount,omitempty" swaggertype:"integer"`

	// Free-text notes
	Notes string `json:"notes,omitempty"`

	// Bank name
	Bank string `json:"bank,omitempty"`

	// Account number
	AccountNumber string `json:"accountNumber,omitempty"`
}

const (
	msgCreateFailed      = "Failed to create transaction"
	msgMalformedBody     = "request body is not valid JSON"
	msgNonNegativeAmount = "Amount must be a non-negative whole number."
)

// NewCreateTransactionHandler returns an HTTP handler that records a new pending transaction.
// @Summary Create transaction
// @Description Creates a pending transaction. Amount must be a non-negative whole number of rupiah.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 500 {object} handlers.ErrorResponse "Failed to create transaction"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create transaction request",
				"request_id", middlewares.RequestID(r.Context()),
				"error", err,
			)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   msgCreateFailed,
				Details: msgMalformedBody,
			})
			return
		}

		var amount int64
		if !isNullOrEmpty(req.Amount) {
			var ok bool
			if amount, ok = parseWholeAmount(req.Amount, true); !ok {
				logger.Log.Warnw("invalid transaction amount", "amount", string(req.Amount))
				writeError(w, http.StatusBadRequest, msgNonNegativeAmount)
				return
			}
		}

		tx := svc.Create(r.Context(), models.NewTransaction{
			Type:          req.Type,
			CustomerName:  req.CustomerName,
			Amount:        amount,
			Notes:         req.Notes,
			Bank:          req.Bank,
			AccountNumber: req.AccountNumber,
		})

		writeJSON(w, http.StatusCreated, tx)
	}
}
