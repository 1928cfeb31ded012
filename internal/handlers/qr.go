package handlers

//go:generate mockgen -source=qr.go -destination=qr_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/qr-drive-cashier/internal/logger"
	"github.com/sbilibin2017/qr-drive-cashier/internal/middlewares"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/sbilibin2017/qr-drive-cashier/internal/services"
)

// QRGenerator defines the service method needed by the QR handler.
type QRGenerator interface {
	Generate(ctx context.Context, baseURL string) (*models.QRCode, error)
}

// ReferenceResolver defines the service method needed by the reference lookup handler.
type ReferenceResolver interface {
	Resolve(ctx context.Context, reference string) (*models.Transaction, error)
}

// GenerateQRRequest carries the origin of the QR display page
// swagger:model GenerateQRRequest
type GenerateQRRequest struct {
	// Origin the customer page is served from
	// required: true
	// default: http://localhost:3000
	BaseURL string `json:"baseUrl"`
}

// NewGenerateQRHandler returns an HTTP handler that opens a pending transaction
// and returns a QR code linking the customer to it.
// @Summary Generate QR code
// @Tags qr
// @Accept json
// @Produce json
// @Param request body handlers.GenerateQRRequest true "QR request"
// @Success 200 {object} models.QRCode
// @Failure 400 {object} handlers.ErrorResponse "Invalid baseUrl"
// @Failure 500 {object} handlers.ErrorResponse "Failed to generate QR code"
// @Router /qr [post]
func NewGenerateQRHandler(svc QRGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateQRRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode qr request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.BaseURL == "" {
			writeError(w, http.StatusBadRequest, "baseUrl is required")
			return
		}

		qr, err := svc.Generate(r.Context(), req.BaseURL)
		if err != nil {
			if errors.Is(err, services.ErrInvalidBaseURL) {
				writeError(w, http.StatusBadRequest, "baseUrl must be an absolute http(s) URL")
				return
			}
			logger.Log.Errorw("failed to generate qr code",
				"request_id", middlewares.RequestID(r.Context()),
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
			return
		}

		writeJSON(w, http.StatusOK, qr)
	}
}

// NewResolveReferenceHandler returns an HTTP handler looking up the transaction
// behind a live customer-facing reference.
// @Summary Resolve reference
// @Tags qr
// @Produce json
// @Param reference path string true "Reference, e.g. LC-PST-20250720-103000-AB12CD"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} handlers.ErrorResponse "Invalid reference"
// @Failure 404 {object} handlers.ErrorResponse "Reference not found"
// @Router /qr/references/{reference} [get]
func NewResolveReferenceHandler(svc ReferenceResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := chi.URLParam(r, "reference")

		tx, err := svc.Resolve(r.Context(), ref)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, tx)
		case errors.Is(err, services.ErrInvalidReference):
			writeError(w, http.StatusBadRequest, "Invalid reference")
		case errors.Is(err, services.ErrReferenceNotFound):
			writeError(w, http.StatusNotFound, "Reference not found or expired")
		case errors.Is(err, services.ErrTransactionNotFound):
			writeError(w, http.StatusNotFound, "Transaction not found")
		default:
			logger.Log.Errorw("failed to resolve reference",
				"reference", ref,
				"request_id", middlewares.RequestID(r.Context()),
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
	}
}
