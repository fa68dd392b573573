package store

import (
	"sort"
	"strings"

	"github.com/goldencart/storefront/internal/core/domain"
)

// Visible derives the filtered and sorted subset of items for the given
// criteria. The pipeline order is fixed: title search, category, brand,
// price range, sort. The function is pure: items is never mutated and
// identical inputs yield an identical sequence, so callers may memoize
// on the (items, criteria) pair.
func Visible(items []domain.Product, c domain.FilterCriteria) []domain.Product {
	c = c.Normalized()

	vs := make([]domain.Product, 0, len(items))
	term := strings.ToLower(c.SearchTerm)
	for _, p := range items {
		if !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.Brand != "" && p.Brand != c.Brand {
			continue
		}
		if p.Price < c.MinPrice || p.Price > c.MaxPrice {
			continue
		}
		vs = append(vs, p)
	}

	// stable sort keeps the post-filter order for equal keys
	switch c.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(vs, func(i, j int) bool {
			return vs[i].Price < vs[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(vs, func(i, j int) bool {
			return vs[i].Price > vs[j].Price
		})
	case domain.SortRatingDesc:
		sort.SliceStable(vs, func(i, j int) bool {
			return vs[i].Rating > vs[j].Rating
		})
	}
	return vs
}
