// Package cart owns the in-memory shopping cart: an ordered list of line
// items with derived totals. All mutation goes through the Store methods;
// every mutation notifies subscribers synchronously with a snapshot of the
// new state so bound views can re-render.
package cart

import (
	"sync"

	catalog "storefront.GO/model/entity/catalog"
)

// LineItem pairs a product with a quantity. Quantity is always >= 1 while
// the line item exists; a mutation that would drive it below 1 removes the
// line item instead.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Store is a single cart. Safe for concurrent use; reads after a write
// always observe that write.
type Store struct {
	mu      sync.Mutex
	items   []LineItem
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func([]LineItem)
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Add puts quantity units of a product in the cart. If the product is
// already present its line item quantity is incremented, keeping at most
// one line item per product id; otherwise a new line item is appended.
// A quantity below 1 is clamped to 1.
func (s *Store) Add(p catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, LineItem{Product: p, Quantity: quantity})
	}
	snapshot := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()
	notify(subs, snapshot)
}

// Remove deletes the line item for a product id. Removing an absent
// product is a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if it.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	if !removed {
		s.mu.Unlock()
		return
	}
	snapshot := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()
	notify(subs, snapshot)
}

// UpdateQuantity sets a line item's quantity exactly. A quantity below 1
// removes the line item; an unknown product id is a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	changed := false
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	snapshot := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()
	notify(subs, snapshot)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	snapshot := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()
	notify(subs, snapshot)
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the line item for a product id, if present.
func (s *Store) Get(productID string) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return LineItem{}, false
}

// TotalItems returns the sum of all line item quantities.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity across all line
// items. The value is unrounded; callers round to currency precision at
// the presentation edge.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// Subscribe registers a callback invoked after every mutation with a
// snapshot of the new items. The returned function unsubscribes; it is
// safe to call more than once.
func (s *Store) Subscribe(fn func(items []LineItem)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) snapshotLocked() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) subsLocked() []subscriber {
	out := make([]subscriber, len(s.subs))
	copy(out, s.subs)
	return out
}

// Subscribers run outside the store lock so they can read the store.
func notify(subs []subscriber, items []LineItem) {
	for _, sub := range subs {
		sub.fn(items)
	}
}
