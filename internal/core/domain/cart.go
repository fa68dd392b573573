package domain

// A CartLine pairs a product with the selected quantity. The product is
// referenced by id and resolved against the catalog on read, so a line
// never owns a product copy.
type CartLine struct {
	ProductID int
	Quantity  int
}

// A ResolvedCartLine is a cart line joined with its catalog product for
// presentation. Unavailable is set when the product id no longer
// resolves against the loaded catalog.
type ResolvedCartLine struct {
	Line        CartLine
	Product     Product
	Unavailable bool
}

// CartView is a read snapshot of the cart for the presentation layer.
type CartView struct {
	Lines      []ResolvedCartLine
	TotalItems int
	TotalPrice float64
}
