package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/internal/core/port"
	"github.com/goldencart/storefront/internal/core/store"
	"github.com/google/uuid"
)

var _ port.CatalogOps = (*Storefront)(nil)
var _ port.ProductsOps = (*Storefront)(nil)
var _ port.CartOps = (*Storefront)(nil)
var _ port.WishlistOps = (*Storefront)(nil)
var _ port.NotificationOps = (*Storefront)(nil)

// Default criteria match the storefront's initial filter controls.
const defaultMaxPrice = 1000

const (
	msgCartAdded       = "Added to cart!"
	msgCartRemoved     = "Removed from cart."
	msgWishlistAdded   = "Added to wishlist!"
	msgWishlistRemoved = "Removed from wishlist."
)

// Storefront is the facade over the state stores: it owns the current
// filter criteria and requested page index, routes user-facing
// mutations through the stores, drives the transient notification and
// emits interaction events. Every mutation is serialized by its owning
// store; the facade itself only guards the criteria and page fields.
type Storefront struct {
	catalog  *store.CatalogStore
	cart     *store.CartStore
	wishlist *store.WishlistStore
	notifier *store.Notifier
	events   port.EventsProducer
	metrics  port.Metrics

	mu       sync.Mutex
	criteria domain.FilterCriteria
	pageIdx  int
	pageSize int
}

// New builds the facade. Events and metrics are optional: a nil
// producer disables event emission, a nil metrics sink disables
// counting. A non-positive pageSize falls back to the default.
func New(
	catalog *store.CatalogStore,
	cart *store.CartStore,
	wishlist *store.WishlistStore,
	notifier *store.Notifier,
	events port.EventsProducer,
	metrics port.Metrics,
	pageSize int,
) *Storefront {
	if pageSize <= 0 {
		pageSize = store.DefaultPageSize
	}
	return &Storefront{
		catalog:  catalog,
		cart:     cart,
		wishlist: wishlist,
		notifier: notifier,
		events:   events,
		metrics:  metrics,
		criteria: domain.FilterCriteria{MaxPrice: defaultMaxPrice},
		pageIdx:  1,
		pageSize: pageSize,
	}
}

// Load triggers one catalog fetch cycle in the background. The fetch
// is bound to a non-cancellable context: it outlives the request that
// triggered it and cannot be aborted. Calls while a fetch is in flight
// do not start a second request.
func (s *Storefront) Load(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		status := s.catalog.Load(ctx)
		if status == domain.CatalogLoading {
			return
		}
		if s.metrics != nil {
			s.metrics.CatalogLoad(status.String())
		}
		s.emit(ctx, domain.EventCatalogLoad, 0, 0)
	}()
}

func (s *Storefront) Catalog() domain.CatalogState {
	return s.catalog.State()
}

// Products derives the current page of the filtered catalog. The view
// is recomputed from current state on every call, never cached.
func (s *Storefront) Products() domain.ProductsView {
	s.mu.Lock()
	criteria, idx, size := s.criteria, s.pageIdx, s.pageSize
	s.mu.Unlock()

	vs := store.Visible(s.catalog.State().Items, criteria)
	pv := store.Page(vs, size, idx)
	return domain.ProductsView{
		Items:      pv.Items,
		Page:       pv.Index,
		TotalPages: pv.TotalPages,
		TotalItems: len(vs),
		Criteria:   criteria,
	}
}

func (s *Storefront) Filters() domain.FiltersView {
	s.mu.Lock()
	criteria := s.criteria
	s.mu.Unlock()

	return domain.FiltersView{
		Criteria:   criteria,
		Categories: s.catalog.Categories(),
		Brands:     s.catalog.Brands(),
	}
}

// SetCriteria replaces the filter criteria and resets the page index
// to 1: an index computed against the previous result set is invalid
// against the new one.
func (s *Storefront) SetCriteria(c domain.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = c.Normalized()
	s.pageIdx = 1
}

func (s *Storefront) NextPage() {
	s.SetPage(s.Products().Page + 1)
}

func (s *Storefront) PreviousPage() {
	s.SetPage(s.Products().Page - 1)
}

// SetPage records the requested index. It is clamped into
// [1, totalPages] on every read against the current filtered set.
func (s *Storefront) SetPage(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 1 {
		index = 1
	}
	s.pageIdx = index
}

// AddToCart merges quantity into the cart line for the product. An id
// that does not resolve against the catalog leaves every store
// untouched and raises no error.
func (s *Storefront) AddToCart(ctx context.Context, productID, quantity int) {
	if !s.cart.Add(productID, quantity) {
		return
	}
	s.notify(msgCartAdded)
	if s.metrics != nil {
		s.metrics.CartOp("add")
	}
	s.emit(ctx, domain.EventCartAdd, productID, quantity)
}

func (s *Storefront) RemoveFromCart(ctx context.Context, productID int) {
	if !s.cart.Remove(productID) {
		return
	}
	s.notify(msgCartRemoved)
	if s.metrics != nil {
		s.metrics.CartOp("remove")
	}
	s.emit(ctx, domain.EventCartRemove, productID, 0)
}

func (s *Storefront) SetCartQuantity(
	ctx context.Context, productID, quantity int,
) {
	if !s.cart.SetQuantity(productID, quantity) {
		return
	}
	if s.metrics != nil {
		s.metrics.CartOp("set_quantity")
	}
	s.emit(ctx, domain.EventCartSetQuantity, productID, quantity)
}

// Cart resolves every line against the catalog for presentation. A
// line whose product is gone from the catalog is flagged unavailable
// instead of dangling.
func (s *Storefront) Cart() domain.CartView {
	lines := s.cart.Lines()
	view := domain.CartView{
		Lines:      make([]domain.ResolvedCartLine, 0, len(lines)),
		TotalItems: s.cart.TotalItems(),
		TotalPrice: s.cart.TotalPrice(),
	}
	for _, l := range lines {
		rl := domain.ResolvedCartLine{Line: l}
		p, err := s.catalog.Resolve(l.ProductID)
		if err != nil {
			rl.Unavailable = true
		} else {
			rl.Product = p
		}
		view.Lines = append(view.Lines, rl)
	}
	return view
}

// ToggleWishlist flips wishlist membership and returns the resulting
// state. An unresolvable id changes nothing and returns the current
// membership.
func (s *Storefront) ToggleWishlist(ctx context.Context, productID int) bool {
	if _, err := s.catalog.Resolve(productID); err != nil {
		return s.wishlist.Contains(productID)
	}

	added := s.wishlist.Toggle(productID)
	kind := domain.EventWishlistRemove
	msg := msgWishlistRemoved
	if added {
		kind = domain.EventWishlistAdd
		msg = msgWishlistAdded
	}
	s.notify(msg)
	if s.metrics != nil {
		s.metrics.WishlistToggle(added)
	}
	s.emit(ctx, kind, productID, 0)
	return added
}

func (s *Storefront) Wishlist() []domain.WishlistItem {
	ids := s.wishlist.IDs()
	items := make([]domain.WishlistItem, 0, len(ids))
	for _, id := range ids {
		it := domain.WishlistItem{ProductID: id}
		p, err := s.catalog.Resolve(id)
		if err != nil {
			it.Unavailable = true
		} else {
			it.Product = p
		}
		items = append(items, it)
	}
	return items
}

func (s *Storefront) Notify(message string) {
	s.notify(message)
}

func (s *Storefront) Notification() domain.Notification {
	return s.notifier.Current()
}

// Close stops the notification timers and the events producer.
func (s *Storefront) Close() {
	s.notifier.Stop()
	if s.events != nil {
		s.events.Close()
	}
}

func (s *Storefront) notify(message string) {
	s.notifier.Notify(message)
	if s.metrics != nil {
		s.metrics.NotificationShown()
	}
}

// emit publishes an interaction event best-effort: failures are logged
// and never surfaced to the caller.
func (s *Storefront) emit(
	ctx context.Context, kind domain.EventKind, productID, quantity int,
) {
	const op = "Storefront.emit"

	if s.events == nil {
		return
	}

	evt := domain.InteractionEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		ProductID:  productID,
		Quantity:   quantity,
		OccurredAt: time.Now(),
	}
	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce interaction event",
			"op", op, "kind", kind, "err", err)
	}
}
