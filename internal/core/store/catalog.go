package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/goldencart/storefront/internal/core/domain"
	"github.com/goldencart/storefront/internal/core/port"
)

var _ port.ProductResolver = (*CatalogStore)(nil)

type catalogAction interface{ isCatalogAction() }

type (
	loadStarted   struct{}
	loadSucceeded struct{ items []domain.Product }
	loadFailed    struct{ message string }
)

func (loadStarted) isCatalogAction()   {}
func (loadSucceeded) isCatalogAction() {}
func (loadFailed) isCatalogAction()    {}

func reduceCatalog(s domain.CatalogState, a catalogAction) domain.CatalogState {
	switch a := a.(type) {
	case loadStarted:
		return domain.CatalogState{Status: domain.CatalogLoading}
	case loadSucceeded:
		return domain.CatalogState{
			Status: domain.CatalogLoaded,
			Items:  a.items,
		}
	case loadFailed:
		return domain.CatalogState{
			Status:       domain.CatalogFailed,
			ErrorMessage: a.message,
		}
	}
	return s
}

// CatalogStore owns the loaded product collection and its load
// lifecycle. All other stores read products through it.
type CatalogStore struct {
	mu      sync.Mutex
	state   domain.CatalogState
	fetcher port.CatalogFetcher
}

func NewCatalog(fetcher port.CatalogFetcher) *CatalogStore {
	return &CatalogStore{fetcher: fetcher}
}

// Load runs one fetch cycle and returns the resulting status. While a
// fetch is in flight further calls return CatalogLoading immediately
// without starting a second request. A failed load is retried only by
// calling Load again.
func (s *CatalogStore) Load(ctx context.Context) domain.CatalogStatus {
	const op = "CatalogStore.Load"
	log := slog.With("op", op)

	s.mu.Lock()
	if s.state.Status == domain.CatalogLoading {
		s.mu.Unlock()
		log.Debug("load already in flight")
		return domain.CatalogLoading
	}
	s.state = reduceCatalog(s.state, loadStarted{})
	s.mu.Unlock()

	items, err := s.fetcher.FetchProducts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = reduceCatalog(s.state, loadFailed{err.Error()})
		log.Error("failed to load catalog", "err", err)
	} else {
		s.state = reduceCatalog(s.state, loadSucceeded{items})
		log.Info("catalog loaded", "nProducts", len(items))
	}
	return s.state.Status
}

// State returns a snapshot with a private copy of the item sequence.
func (s *CatalogStore) State() domain.CatalogState {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.state
	snap.Items = make([]domain.Product, len(s.state.Items))
	copy(snap.Items, s.state.Items)
	return snap
}

// Resolve returns the first loaded product with the given id.
func (s *CatalogStore) Resolve(id int) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.state.Items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Categories lists the distinct category values in first-seen order.
func (s *CatalogStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return distinct(s.state.Items, func(p domain.Product) string {
		return p.Category
	})
}

// Brands lists the distinct non-empty brand values in first-seen order.
func (s *CatalogStore) Brands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return distinct(s.state.Items, func(p domain.Product) string {
		return p.Brand
	})
}

func distinct(ps []domain.Product, key func(domain.Product) string) []string {
	var vs []string
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		vs = append(vs, k)
	}
	return vs
}
