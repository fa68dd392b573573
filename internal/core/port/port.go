package port

import (
	"context"

	"github.com/goldencart/storefront/internal/core/domain"
)

// CatalogFetcher is the external fetch collaborator. A single call
// retrieves the whole product list; it is never retried by the caller.
type CatalogFetcher interface {
	FetchProducts(context.Context) ([]domain.Product, error)
}

// ProductResolver looks a product up by id in the loaded catalog.
type ProductResolver interface {
	Resolve(id int) (domain.Product, error)
}

// EventsProducer publishes interaction events for analytics.
type EventsProducer interface {
	ProduceEvent(context.Context, domain.InteractionEvent) error
	Close()
}

// Metrics counts user-facing operations.
type Metrics interface {
	CatalogLoad(outcome string)
	CartOp(op string)
	WishlistToggle(added bool)
	NotificationShown()
}

type CatalogOps interface {
	Load(context.Context)
	Catalog() domain.CatalogState
}

type ProductsOps interface {
	Products() domain.ProductsView
	Filters() domain.FiltersView
	SetCriteria(domain.FilterCriteria)
	NextPage()
	PreviousPage()
	SetPage(index int)
}

type CartOps interface {
	AddToCart(ctx context.Context, productID, quantity int)
	RemoveFromCart(ctx context.Context, productID int)
	SetCartQuantity(ctx context.Context, productID, quantity int)
	Cart() domain.CartView
}

type WishlistOps interface {
	ToggleWishlist(ctx context.Context, productID int) bool
	Wishlist() []domain.WishlistItem
}

type NotificationOps interface {
	Notify(message string)
	Notification() domain.Notification
}
