package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goldencart/storefront/internal/core/port"
)

type ProductsHandler struct {
	ops port.ProductsOps
}

func RegisterProducts(mux *http.ServeMux, ops port.ProductsOps) {
	h := ProductsHandler{ops}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/filters", h.GetFilters)
	mux.HandleFunc("PUT /v1/products/criteria", h.PutCriteria)
	mux.HandleFunc("PUT /v1/products/page", h.PutPage)
	mux.HandleFunc("POST /v1/products/page/next", h.PostNextPage)
	mux.HandleFunc("POST /v1/products/page/previous", h.PostPreviousPage)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	view := h.ops.Products()

	items := make([]Product, 0, len(view.Items))
	for _, p := range view.Items {
		items = append(items, toProduct(p))
	}
	writeJSON(w, http.StatusOK, ProductsResponse{
		Items:      items,
		Page:       view.Page,
		TotalPages: view.TotalPages,
		TotalItems: view.TotalItems,
		Criteria:   toCriteria(view.Criteria),
	})
}

func (h ProductsHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	view := h.ops.Filters()
	writeJSON(w, http.StatusOK, FiltersResponse{
		Criteria:   toCriteria(view.Criteria),
		Categories: view.Categories,
		Brands:     view.Brands,
	})
}

func (h ProductsHandler) PutCriteria(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PutCriteria"
	log := slog.With("op", op)

	var c Criteria
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.ops.SetCriteria(c.toDomain())
	w.WriteHeader(http.StatusOK)
}

func (h ProductsHandler) PutPage(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PutPage"
	log := slog.With("op", op)

	var p PagePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.ops.SetPage(p.Index)
	w.WriteHeader(http.StatusOK)
}

func (h ProductsHandler) PostNextPage(w http.ResponseWriter, r *http.Request) {
	h.ops.NextPage()
	w.WriteHeader(http.StatusOK)
}

func (h ProductsHandler) PostPreviousPage(
	w http.ResponseWriter, r *http.Request,
) {
	h.ops.PreviousPage()
	w.WriteHeader(http.StatusOK)
}
