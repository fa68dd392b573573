package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/goldencart/storefront/internal/core/domain"
)

type (
	Product struct {
		ID                 int      `json:"id"`
		Title              string   `json:"title"`
		Description        string   `json:"description,omitempty"`
		Category           string   `json:"category"`
		Brand              string   `json:"brand,omitempty"`
		Price              float64  `json:"price"`
		DiscountPercentage float64  `json:"discount_percentage,omitempty"`
		EffectivePrice     float64  `json:"effective_price"`
		Rating             float64  `json:"rating"`
		Stock              int      `json:"stock"`
		Thumbnail          string   `json:"thumbnail"`
		Images             []string `json:"images,omitempty"`
	}

	Criteria struct {
		SearchTerm string  `json:"search_term"`
		Category   string  `json:"category"`
		Brand      string  `json:"brand"`
		MinPrice   float64 `json:"min_price"`
		MaxPrice   float64 `json:"max_price"`
		Sort       string  `json:"sort"`
	}
)

type (
	CatalogResponse struct {
		Status     string `json:"status"`
		TotalItems int    `json:"total_items"`
		Error      string `json:"error,omitempty"`
	}

	ProductsResponse struct {
		Items      []Product `json:"items"`
		Page       int       `json:"page"`
		TotalPages int       `json:"total_pages"`
		TotalItems int       `json:"total_items"`
		Criteria   Criteria  `json:"criteria"`
	}

	FiltersResponse struct {
		Criteria   Criteria `json:"criteria"`
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
	}

	PagePayload struct {
		Index int `json:"index"`
	}

	CartItemPayload struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	QuantityPayload struct {
		Quantity int `json:"quantity"`
	}

	CartLine struct {
		ProductID   int     `json:"product_id"`
		Product     Product `json:"product"`
		Quantity    int     `json:"quantity"`
		Unavailable bool    `json:"unavailable,omitempty"`
	}

	CartResponse struct {
		Lines      []CartLine `json:"lines"`
		TotalItems int        `json:"total_items"`
		TotalPrice float64    `json:"total_price"`
	}

	TogglePayload struct {
		ProductID int `json:"product_id"`
	}

	ToggleResponse struct {
		InWishlist bool `json:"in_wishlist"`
	}

	WishlistEntry struct {
		ProductID   int     `json:"product_id"`
		Product     Product `json:"product"`
		Unavailable bool    `json:"unavailable,omitempty"`
	}

	WishlistResponse struct {
		Items []WishlistEntry `json:"items"`
	}

	NotificationPayload struct {
		Message string `json:"message"`
	}

	NotificationResponse struct {
		Message string `json:"message"`
		Phase   string `json:"phase"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Category:           p.Category,
		Brand:              p.Brand,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		EffectivePrice:     p.EffectivePrice(),
		Rating:             p.Rating,
		Stock:              p.Stock,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
	}
}

func toCriteria(c domain.FilterCriteria) Criteria {
	return Criteria{
		SearchTerm: c.SearchTerm,
		Category:   c.Category,
		Brand:      c.Brand,
		MinPrice:   c.MinPrice,
		MaxPrice:   c.MaxPrice,
		Sort:       c.Sort.String(),
	}
}

func (c Criteria) toDomain() domain.FilterCriteria {
	return domain.FilterCriteria{
		SearchTerm: c.SearchTerm,
		Category:   c.Category,
		Brand:      c.Brand,
		MinPrice:   c.MinPrice,
		MaxPrice:   c.MaxPrice,
		Sort:       domain.ParseSortMode(c.Sort),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}
