package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/goldencart/storefront/internal/core/port"
)

type CatalogHandler struct {
	ops port.CatalogOps
}

func RegisterCatalog(mux *http.ServeMux, ops port.CatalogOps) {
	h := CatalogHandler{ops}
	mux.HandleFunc("POST /v1/catalog/load", h.PostLoad)
	mux.HandleFunc("GET /v1/catalog", h.GetCatalog)
}

// PostLoad triggers a catalog fetch cycle. Repeating it while a fetch
// is in flight is accepted and does nothing.
func (h CatalogHandler) PostLoad(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostLoad"

	h.ops.Load(r.Context())
	w.WriteHeader(http.StatusAccepted)

	slog.Info("catalog load triggered", "op", op)
}

func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	state := h.ops.Catalog()
	writeJSON(w, http.StatusOK, CatalogResponse{
		Status:     state.Status.String(),
		TotalItems: len(state.Items),
		Error:      state.ErrorMessage,
	})
}
