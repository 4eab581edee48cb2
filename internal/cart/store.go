package cart

import (
	"sync"
	"time"
)

// Store keeps per-account carts in memory, keyed by account identity.
// A single mutex serializes mutations so concurrent adds for the same
// account cannot lose updates.
type Store struct {
	mu     sync.Mutex
	carts  map[string][]Item
	lastID int64
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Item)}
}

// nextID derives line ids from the clock, bumping past the previous id so
// two adds in the same millisecond stay distinct.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add appends a new line with quantity 1, creating the cart lazily.
// Identical products are never merged. Returns the new item count.
func (s *Store) Add(account, productName string, price float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[account] = append(s.carts[account], Item{
		ID:          s.nextID(),
		ProductName: productName,
		Price:       price,
		Quantity:    1,
	})
	return len(s.carts[account])
}

// Items returns a copy of the account's cart in insertion order. Accounts
// without a cart get an empty slice.
func (s *Store) Items(account string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[account]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Remove drops the line with the given id. An account with no cart at all
// is ErrCartNotFound; an unknown id in an existing cart is a no-op that
// still succeeds with the unchanged count. An emptied cart stays present.
func (s *Store) Remove(account string, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[account]
	if !ok {
		return 0, ErrCartNotFound
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.carts[account] = kept
	return len(kept), nil
}

// Clear deletes the account's cart entry entirely. Clearing an absent
// cart is a no-op, so a second Clear is trivially idempotent.
func (s *Store) Clear(account string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, account)
}

// Total sums price times quantity over the account's lines.
func (s *Store) Total(account string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.carts[account] {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
