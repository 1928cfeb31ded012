package handlers

//go:generate mockgen -source=notify_view.go -destination=notify_view_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ViewNotifier defines the service method needed by this handler.
type ViewNotifier interface {
	NotifyView(ctx context.Context, id string) bool
}

// NotifyViewResponse acknowledges a scan notification
// swagger:model NotifyViewResponse
type NotifyViewResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: Event emitted
	Message string `json:"message"`
}

// NewNotifyViewHandler returns an HTTP handler called by the customer page once
// it has loaded, so the QR display can rotate its code.
// @Summary Notify QR scanned
// @Description Emits a qrScanned event for an existing transaction. Always acknowledges.
// @Tags qr
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} handlers.NotifyViewResponse
// @Router /t/{id}/notify-view [post]
func NewNotifyViewHandler(svc ViewNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.NotifyView(r.Context(), chi.URLParam(r, "id"))

		writeJSON(w, http.StatusOK, NotifyViewResponse{
			Success: true,
			Message: "Event emitted",
		})
	}
}
