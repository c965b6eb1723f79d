package registry

import "testing"

func TestSetGet(t *testing.T) {
	r := &Registry{}
	r.SetGlobal("k", 42)
	v, ok := r.GetGlobal("k")
	if !ok {
		t.Fatal("GetGlobal: want true")
	}
	if v != 42 {
		t.Errorf("GetGlobal = %v, want 42", v)
	}
}

func TestGet_Missing(t *testing.T) {
	r := &Registry{}
	if _, ok := r.GetGlobal("missing"); ok {
		t.Error("GetGlobal missing key: want false")
	}
}

func TestLock_SetPanics(t *testing.T) {
	r := &Registry{}
	r.SetGlobal("k", 1)
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Fatal("IsLocked: want true")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on SetGlobal after Lock")
		}
	}()
	r.SetGlobal("k", 2)
}

func TestUnlockForTesting(t *testing.T) {
	r := &Registry{}
	r.SetGlobal("k", 1)
	r.Lock("k")
	r.UnlockForTesting("k")
	if r.IsLocked("k") {
		t.Fatal("IsLocked after unlock: want false")
	}
	r.SetGlobal("k", 2)
	v, _ := r.GetGlobal("k")
	if v != 2 {
		t.Errorf("GetGlobal = %v, want 2", v)
	}
}
