package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goldencart/storefront/internal/core/port"
)

type WishlistHandler struct {
	ops port.WishlistOps
}

func RegisterWishlist(mux *http.ServeMux, ops port.WishlistOps) {
	h := WishlistHandler{ops}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/toggle", h.PostToggle)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items := h.ops.Wishlist()

	entries := make([]WishlistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, WishlistEntry{
			ProductID:   it.ProductID,
			Product:     toProduct(it.Product),
			Unavailable: it.Unavailable,
		})
	}
	writeJSON(w, http.StatusOK, WishlistResponse{Items: entries})
}

// PostToggle flips wishlist membership and reports the resulting
// state, so the UI can pick its message without a second round trip.
func (h WishlistHandler) PostToggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostToggle"
	log := slog.With("op", op)

	var p TogglePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	in := h.ops.ToggleWishlist(r.Context(), p.ProductID)
	writeJSON(w, http.StatusOK, ToggleResponse{InWishlist: in})
}
