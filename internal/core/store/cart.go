package store

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/internal/core/port"
)

type cartAction interface{ isCartAction() }

type (
	addLine     struct{ productID, quantity int }
	removeLine  struct{ productID int }
	setQuantity struct{ productID, quantity int }
)

func (addLine) isCartAction()     {}
func (removeLine) isCartAction()  {}
func (setQuantity) isCartAction() {}

func reduceCart(lines []domain.CartLine, a cartAction) []domain.CartLine {
	switch a := a.(type) {
	case addLine:
		next := make([]domain.CartLine, len(lines))
		copy(next, lines)
		for i := range next {
			if next[i].ProductID == a.productID {
				next[i].Quantity += a.quantity
				return next
			}
		}
		return append(next, domain.CartLine{
			ProductID: a.productID,
			Quantity:  a.quantity,
		})
	case removeLine:
		next := make([]domain.CartLine, 0, len(lines))
		for _, l := range lines {
			if l.ProductID != a.productID {
				next = append(next, l)
			}
		}
		return next
	case setQuantity:
		if a.quantity <= 0 {
			return reduceCart(lines, removeLine{a.productID})
		}
		next := make([]domain.CartLine, len(lines))
		copy(next, lines)
		for i := range next {
			if next[i].ProductID == a.productID {
				next[i].Quantity = a.quantity
			}
		}
		return next
	}
	return lines
}

// CartStore owns the ordered cart lines, unique by product id. Product
// ids are resolved against the catalog before any line is created;
// an unresolvable id leaves the cart unchanged.
type CartStore struct {
	mu       sync.Mutex
	lines    []domain.CartLine
	resolver port.ProductResolver
}

func NewCart(resolver port.ProductResolver) *CartStore {
	return &CartStore{resolver: resolver}
}

// Add merges quantity into an existing line or appends a new one.
// A non-positive quantity counts as 1. Product stock is intentionally
// not enforced: the storefront accepts the add and leaves availability
// to the upstream order flow. Reports whether the cart changed.
func (s *CartStore) Add(productID, quantity int) bool {
	const op = "CartStore.Add"

	if quantity <= 0 {
		quantity = 1
	}
	if _, err := s.resolver.Resolve(productID); err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			slog.Error("unexpected resolve failure", "op", op, "err", err)
		}
		slog.Debug("dropped add for unknown product",
			"op", op, "productID", productID)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = reduceCart(s.lines, addLine{productID, quantity})
	return true
}

// Remove deletes the matching line. Removing an absent id is a no-op.
func (s *CartStore) Remove(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.lines)
	s.lines = reduceCart(s.lines, removeLine{productID})
	return len(s.lines) != before
}

// SetQuantity overwrites the quantity of an existing line; zero or a
// negative value deletes the line instead. Reports whether the cart
// changed.
func (s *CartStore) SetQuantity(productID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.lines
	s.lines = reduceCart(s.lines, setQuantity{productID, quantity})
	if len(s.lines) != len(before) {
		return true
	}
	for i := range s.lines {
		if s.lines[i] != before[i] {
			return true
		}
	}
	return false
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartStore) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls := make([]domain.CartLine, len(s.lines))
	copy(ls, s.lines)
	return ls
}

// TotalItems sums the line quantities.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice sums effective price times quantity over the lines whose
// products still resolve. Unavailable lines contribute nothing.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	s.mu.Unlock()

	var total float64
	for _, l := range lines {
		p, err := s.resolver.Resolve(l.ProductID)
		if err != nil {
			continue
		}
		total += p.EffectivePrice() * float64(l.Quantity)
	}
	return total
}
