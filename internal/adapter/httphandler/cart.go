package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goldencart/storefront/internal/core/port"
)

type CartHandler struct {
	ops port.CartOps
}

func RegisterCart(mux *http.ServeMux, ops port.CartOps) {
	h := CartHandler{ops}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.PutItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view := h.ops.Cart()

	lines := make([]CartLine, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, CartLine{
			ProductID:   l.Line.ProductID,
			Product:     toProduct(l.Product),
			Quantity:    l.Line.Quantity,
			Unavailable: l.Unavailable,
		})
	}
	writeJSON(w, http.StatusOK, CartResponse{
		Lines:      lines,
		TotalItems: view.TotalItems,
		TotalPrice: view.TotalPrice,
	})
}

// PostItem adds a product to the cart. An unknown product id is a
// silent no-op, so the request is still accepted.
func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var p CartItemPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.ops.AddToCart(r.Context(), p.ProductID, p.Quantity)
	w.WriteHeader(http.StatusAccepted)
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var p QuantityPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.ops.SetCartQuantity(r.Context(), id, p.Quantity)
	w.WriteHeader(http.StatusOK)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	h.ops.RemoveFromCart(r.Context(), id)
	w.WriteHeader(http.StatusOK)
}
