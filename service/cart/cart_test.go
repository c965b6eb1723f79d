package cart

import (
	"math"
	"testing"
	"time"

	catalog "storefront.GO/model/entity/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "Product " + id, Price: price, Category: "Test", InStock: true}
}

func TestAdd_MergesSameProduct(t *testing.T) {
	s := NewStore()
	p := product("1", 29.99)
	s.Add(p, 1)
	s.Add(p, 2)
	s.Add(p, 4)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1 line item for repeated product", len(items))
	}
	if items[0].Quantity != 7 {
		t.Errorf("quantity = %d, want 7", items[0].Quantity)
	}
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1), 1)
	s.Add(product("b", 2), 1)
	s.Add(product("c", 3), 1)
	s.Add(product("a", 1), 1) // merge must not reorder

	items := s.Items()
	want := []string{"a", "b", "c"}
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].Product.ID != id {
			t.Errorf("items[%d] = %s, want %s", i, items[i].Product.ID, id)
		}
	}
}

func TestAdd_ClampsNonPositiveQuantity(t *testing.T) {
	s := NewStore()
	s.Add(product("1", 10), 0)
	s.Add(product("2", 10), -5)

	for _, it := range s.Items() {
		if it.Quantity != 1 {
			t.Errorf("product %s quantity = %d, want clamped to 1", it.Product.ID, it.Quantity)
		}
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add(product("x", 29.99), 3)
	s.Add(product("y", 10.00), 1)

	s.Remove("x")

	items := s.Items()
	if len(items) != 1 || items[0].Product.ID != "y" {
		t.Fatalf("items = %v, want only product y", items)
	}
	if got := s.TotalItems(); got != 1 {
		t.Errorf("TotalItems = %d, want 1", got)
	}
	if got := s.TotalPrice(); got != 10.00 {
		t.Errorf("TotalPrice = %v, want 10.00", got)
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(product("x", 5), 2)
	s.Remove("nope")
	if got := s.TotalItems(); got != 2 {
		t.Errorf("TotalItems = %d, want 2", got)
	}
}

func TestUpdateQuantity_SetsExactValue(t *testing.T) {
	s := NewStore()
	s.Add(product("x", 5), 5)
	s.UpdateQuantity("x", 1)
	it, ok := s.Get("x")
	if !ok {
		t.Fatal("product x missing")
	}
	if it.Quantity != 1 {
		t.Errorf("quantity = %d, want exactly 1 (not additive)", it.Quantity)
	}
}

func TestUpdateQuantity_ZeroRemoves(t *testing.T) {
	s := NewStore()
	s.Add(product("x", 5), 3)
	s.UpdateQuantity("x", 0)
	if _, ok := s.Get("x"); ok {
		t.Error("product x should be removed at quantity 0")
	}

	// same effect as Remove
	s2 := NewStore()
	s2.Add(product("x", 5), 3)
	s2.Remove("x")
	if len(s.Items()) != len(s2.Items()) {
		t.Error("UpdateQuantity(0) and Remove should be equivalent")
	}
}

func TestUpdateQuantity_UnknownIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(product("x", 5), 2)
	s.UpdateQuantity("ghost", 4)
	if got := s.TotalItems(); got != 2 {
		t.Errorf("TotalItems = %d, want 2", got)
	}
}

func TestClear_Idempotent(t *testing.T) {
	s := NewStore()
	s.Clear()
	if got := s.TotalItems(); got != 0 {
		t.Errorf("TotalItems after clear on empty = %d, want 0", got)
	}
	s.Add(product("x", 5), 2)
	s.Clear()
	s.Clear()
	if len(s.Items()) != 0 {
		t.Error("cart should stay empty after repeated Clear")
	}
}

func TestTotals_EmptyCart(t *testing.T) {
	s := NewStore()
	if got := s.TotalItems(); got != 0 {
		t.Errorf("TotalItems = %d, want 0", got)
	}
	if got := s.TotalPrice(); got != 0 {
		t.Errorf("TotalPrice = %v, want 0", got)
	}
}

func TestTotals_AccumulateAcrossAdds(t *testing.T) {
	s := NewStore()
	px := product("x", 29.99)

	s.Add(px, 1)
	if got := s.TotalItems(); got != 1 {
		t.Errorf("TotalItems = %d, want 1", got)
	}
	if got := s.TotalPrice(); math.Abs(got-29.99) > 1e-9 {
		t.Errorf("TotalPrice = %v, want 29.99", got)
	}

	s.Add(px, 2)
	if got := s.TotalItems(); got != 3 {
		t.Errorf("TotalItems = %d, want 3", got)
	}
	if got := s.TotalPrice(); math.Abs(got-89.97) > 1e-9 {
		t.Errorf("TotalPrice = %v, want 89.97", got)
	}
}

func TestSubscribe_NotifiedOnEveryMutation(t *testing.T) {
	s := NewStore()
	var calls int
	var last []LineItem
	unsubscribe := s.Subscribe(func(items []LineItem) {
		calls++
		last = items
	})

	s.Add(product("x", 5), 2)
	s.UpdateQuantity("x", 4)
	s.Remove("x")
	s.Clear()

	if calls != 4 {
		t.Errorf("calls = %d, want 4", calls)
	}
	if len(last) != 0 {
		t.Errorf("last snapshot = %v, want empty after Clear", last)
	}

	unsubscribe()
	s.Add(product("y", 1), 1)
	if calls != 4 {
		t.Error("subscriber notified after unsubscribe")
	}
}

func TestSubscribe_NoopMutationsDoNotNotify(t *testing.T) {
	s := NewStore()
	calls := 0
	s.Subscribe(func([]LineItem) { calls++ })

	s.Remove("absent")
	s.UpdateQuantity("absent", 3)
	if calls != 0 {
		t.Errorf("calls = %d, want 0 for no-op mutations", calls)
	}
}

func TestSubscriber_CanReadStore(t *testing.T) {
	s := NewStore()
	total := -1
	s.Subscribe(func([]LineItem) {
		total = s.TotalItems() // must not deadlock
	})
	s.Add(product("x", 5), 2)
	if total != 2 {
		t.Errorf("TotalItems inside subscriber = %d, want 2", total)
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(product("x", 5), 2)
	items := s.Items()
	items[0].Quantity = 99
	it, _ := s.Get("x")
	if it.Quantity != 2 {
		t.Error("mutating the snapshot must not affect the store")
	}
}

func TestManager_GetCreatesPerSession(t *testing.T) {
	m := NewManager()
	a := m.Get("sess-a")
	b := m.Get("sess-b")
	if a == b {
		t.Fatal("sessions must get distinct stores")
	}
	if m.Get("sess-a") != a {
		t.Error("same session must get the same store")
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

func TestManager_PruneIdle(t *testing.T) {
	m := NewManager()
	current := time.Unix(1000, 0)
	m.now = func() time.Time { return current }

	m.Get("old")
	current = current.Add(time.Hour)
	m.Get("fresh")

	removed := m.PruneIdle(30 * time.Minute)
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}

	// touched sessions survive the next prune
	current = current.Add(10 * time.Minute)
	m.Get("fresh")
	if removed := m.PruneIdle(30 * time.Minute); removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}
