package domain

// A Product is a single catalog item. It is owned by the catalog store
// after a successful load and is read-only everywhere else.
type Product struct {
	ID                 int
	Title              string
	Description        string
	Category           string
	Brand              string
	Price              float64
	DiscountPercentage float64
	Rating             float64
	Stock              int
	Thumbnail          string
	Images             []string
}

// EffectivePrice is the price after applying the discount percentage.
// A zero discount means no discount.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPercentage > 0 {
		return p.Price - p.Price*p.DiscountPercentage/100
	}
	return p.Price
}
