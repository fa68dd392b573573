package domain

// ProductsView is one page of the filtered catalog. Page is already
// clamped into [1, TotalPages] and TotalItems counts the whole filtered
// set, not the page.
type ProductsView struct {
	Items      []Product
	Page       int
	TotalPages int
	TotalItems int
	Criteria   FilterCriteria
}

// FiltersView carries the active criteria together with the distinct
// category and brand values of the loaded catalog, in first-seen order.
type FiltersView struct {
	Criteria   FilterCriteria
	Categories []string
	Brands     []string
}

// A WishlistItem is a wishlist entry joined with its catalog product.
type WishlistItem struct {
	ProductID   int
	Product     Product
	Unavailable bool
}
