package store

import "github.com/goldencart/storefront/internal/core/domain"

// DefaultPageSize matches the storefront's product grid.
const DefaultPageSize = 6

// PageView is one contiguous page of an ordered sequence.
type PageView struct {
	Items      []domain.Product
	Index      int
	TotalPages int
}

// Page slices one page out of items. TotalPages is at least 1 even for
// an empty sequence and Index is the requested index clamped into
// [1, TotalPages]. A non-positive size falls back to DefaultPageSize.
func Page(items []domain.Product, size, index int) PageView {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if index < 1 {
		index = 1
	}
	if index > totalPages {
		index = totalPages
	}

	lo := (index - 1) * size
	hi := lo + size
	if lo > len(items) {
		lo = len(items)
	}
	if hi > len(items) {
		hi = len(items)
	}

	return PageView{
		Items:      items[lo:hi:hi],
		Index:      index,
		TotalPages: totalPages,
	}
}
