package handlers

//go:generate mockgen -source=summary.go -destination=summary_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
)

// SummaryGetter defines the service method needed by this handler.
type SummaryGetter interface {
	Summary(ctx context.Context) models.Summary
}

// NewSummaryHandler returns an HTTP handler for dashboard totals.
// @Summary Transaction summary
// @Description Revenue over completed transactions, counts per status and completion rate.
// @Tags transactions
// @Produce json
// @Success 200 {object} models.Summary
// @Router /transactions/summary [get]
func NewSummaryHandler(svc SummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Summary(r.Context()))
	}
}
