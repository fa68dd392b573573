package domain

import "time"

type EventKind string

const (
	EventCatalogLoad     EventKind = "catalog_load"
	EventCartAdd         EventKind = "cart_add"
	EventCartRemove      EventKind = "cart_remove"
	EventCartSetQuantity EventKind = "cart_set_quantity"
	EventWishlistAdd     EventKind = "wishlist_add"
	EventWishlistRemove  EventKind = "wishlist_remove"
)

// An InteractionEvent records a single user-facing mutation for the
// analytics pipeline. Emission is best-effort and never blocks the
// mutation itself.
type InteractionEvent struct {
	EventID    string
	Kind       EventKind
	ProductID  int
	Quantity   int
	OccurredAt time.Time
}
