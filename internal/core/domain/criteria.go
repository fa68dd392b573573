package domain

type SortMode int

const (
	SortNone SortMode = iota
	SortPriceAsc
	SortPriceDesc
	SortRatingDesc
)

func (m SortMode) String() string {
	switch m {
	case SortPriceAsc:
		return "price-asc"
	case SortPriceDesc:
		return "price-desc"
	case SortRatingDesc:
		return "rating"
	}
	return ""
}

// ParseSortMode maps the wire value to a SortMode. Unknown values fall
// back to SortNone.
func ParseSortMode(s string) SortMode {
	switch s {
	case "price-asc":
		return SortPriceAsc
	case "price-desc":
		return SortPriceDesc
	case "rating":
		return SortRatingDesc
	}
	return SortNone
}

// FilterCriteria is the current filter and sort configuration.
// Empty Category and Brand mean "no restriction".
type FilterCriteria struct {
	SearchTerm string
	Category   string
	Brand      string
	MinPrice   float64
	MaxPrice   float64
	Sort       SortMode
}

// Normalized repairs malformed bounds instead of erroring: a negative
// minimum is clamped to zero, an inverted range is swapped.
func (c FilterCriteria) Normalized() FilterCriteria {
	if c.MinPrice < 0 {
		c.MinPrice = 0
	}
	if c.MaxPrice < 0 {
		c.MaxPrice = 0
	}
	if c.MinPrice > c.MaxPrice {
		c.MinPrice, c.MaxPrice = c.MaxPrice, c.MinPrice
	}
	return c
}
