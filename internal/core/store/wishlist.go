package store

import "sync"

// WishlistStore owns the wishlist membership set. Uniqueness is
// enforced and insertion order is kept for display.
type WishlistStore struct {
	mu      sync.Mutex
	ids     []int
	members map[int]struct{}
}

func NewWishlist() *WishlistStore {
	return &WishlistStore{members: make(map[int]struct{})}
}

// Toggle flips membership for the id and returns the resulting state:
// true when the id is now in the wishlist. Two toggles in a row restore
// the original set.
func (s *WishlistStore) Toggle(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		next := make([]int, 0, len(s.ids)-1)
		for _, v := range s.ids {
			if v != id {
				next = append(next, v)
			}
		}
		s.ids = next
		return false
	}

	s.members[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *WishlistStore) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.members[id]
	return ok
}

// IDs returns a copy of the member ids in insertion order.
func (s *WishlistStore) IDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, len(s.ids))
	copy(ids, s.ids)
	return ids
}
