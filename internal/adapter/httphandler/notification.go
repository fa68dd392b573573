package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/internal/core/port"
)

type NotificationHandler struct {
	ops port.NotificationOps
}

func RegisterNotification(mux *http.ServeMux, ops port.NotificationOps) {
	h := NotificationHandler{ops}
	mux.HandleFunc("GET /v1/notification", h.GetNotification)
	mux.HandleFunc("POST /v1/notification", h.PostNotification)
}

// GetNotification returns the live notification, or 204 once it has
// cleared.
func (h NotificationHandler) GetNotification(
	w http.ResponseWriter, r *http.Request,
) {
	cur := h.ops.Notification()
	if cur.Phase == domain.NotificationCleared {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, NotificationResponse{
		Message: cur.Message,
		Phase:   cur.Phase.String(),
	})
}

func (h NotificationHandler) PostNotification(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "NotificationHandler.PostNotification"
	log := slog.With("op", op)

	var p NotificationPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.ops.Notify(p.Message)
	w.WriteHeader(http.StatusAccepted)
}
