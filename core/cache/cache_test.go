package cache

import (
	"path/filepath"
	"testing"
	"time"
)

// product mirrors the shape the catalog repository stores under the
// "catalog" tag; the cache itself is type-agnostic.
type product struct {
	ID    string
	Name  string
	Price float64
}

func TestGetInstance_SameInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return the same instance")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	headphones := product{ID: "1", Name: "Wireless Headphones", Price: 149.99}
	c.Set("catalog|id|1", headphones, 0, nil)

	got, ok := c.Get("catalog|id|1")
	if !ok {
		t.Fatal("Get: want hit")
	}
	if got.(product) != headphones {
		t.Errorf("Get = %+v, want %+v", got, headphones)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("catalog|id|999"); ok {
		t.Error("Get on unknown product key: want miss")
	}
}

func TestGet_Expired(t *testing.T) {
	c := NewCache()
	c.Set("media:64x64:webp=false", []byte("png-bytes"), 1, []string{"media"})

	// Force the entry past its deadline instead of sleeping.
	v, _ := c.m.Load("media:64x64:webp=false")
	item := v.(cacheItem)
	item.ExpiresAt = time.Now().Add(-time.Second).UnixNano()
	c.m.Store("media:64x64:webp=false", item)

	if _, ok := c.Get("media:64x64:webp=false"); ok {
		t.Error("Get on expired media entry: want miss")
	}
	if keys := c.GetKeysByTag("media"); len(keys) != 0 {
		t.Errorf("expired entry left %d key(s) in the media tag index", len(keys))
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("catalog|categories", []string{"All", "Electronics"}, 0, []string{"catalog"})
	c.Delete("catalog|categories")

	if _, ok := c.Get("catalog|categories"); ok {
		t.Error("Delete: key should be gone")
	}
	if keys := c.GetKeysByTag("catalog"); len(keys) != 0 {
		t.Errorf("Delete left %d key(s) in the catalog tag index", len(keys))
	}
}

func TestSetN_GetN(t *testing.T) {
	c := NewCache()
	listing := []product{
		{ID: "1", Name: "Wireless Headphones", Price: 149.99},
		{ID: "3", Name: "Organic Cotton T-Shirt", Price: 29.99},
	}
	c.SetN([]interface{}{"catalog", "category", "Clothing"}, listing, 300, []string{"catalog"})

	got, ok := c.GetN("catalog", "category", "Clothing")
	if !ok {
		t.Fatal("GetN: want hit for composite key")
	}
	if len(got.([]product)) != 2 {
		t.Errorf("GetN = %d product(s), want 2", len(got.([]product)))
	}
	if _, ok := c.GetN("catalog", "category", "Audio"); ok {
		t.Error("GetN on uncached category: want miss")
	}
}

func TestDeleteByTag(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"catalog", "list"}, []product{{ID: "1"}}, 300, []string{"catalog"})
	c.SetN([]interface{}{"catalog", "featured"}, []product{{ID: "2"}}, 300, []string{"catalog"})
	c.Set("media:32x32:webp=true", []byte("webp-bytes"), 0, []string{"media"})

	if keys := c.GetKeysByTag("catalog"); len(keys) != 2 {
		t.Fatalf("GetKeysByTag(catalog) = %d, want 2", len(keys))
	}

	// Invalidating the catalog must not touch media entries.
	c.DeleteByTag("catalog")

	if _, ok := c.GetN("catalog", "list"); ok {
		t.Error("catalog list survived DeleteByTag")
	}
	if _, ok := c.GetN("catalog", "featured"); ok {
		t.Error("catalog featured survived DeleteByTag")
	}
	if _, ok := c.Get("media:32x32:webp=true"); !ok {
		t.Error("media entry dropped by catalog invalidation")
	}
}

func TestTagKey_MergesTags(t *testing.T) {
	c := NewCache()
	c.Set("catalog|id|2", product{ID: "2", Name: "Smart Fitness Tracker"}, 0, []string{"catalog"})
	c.TagKey("catalog|id|2", []string{"featured"})

	c.DeleteByTag("featured")
	if _, ok := c.Get("catalog|id|2"); ok {
		t.Error("entry tagged after Set survived DeleteByTag on the added tag")
	}
}

func TestDumpToFile_RestoreFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cache.json")

	src := NewCache()
	src.Set("catalog|categories", []string{"All", "Electronics"}, 0, []string{"catalog"})
	src.Set("greeting", "hello", 0, nil)
	if err := src.DumpToFile(file); err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}

	dst := NewCache()
	if err := dst.RestoreFromFile(file); err != nil {
		t.Fatalf("RestoreFromFile: %v", err)
	}
	if v, ok := dst.Get("greeting"); !ok || v != "hello" {
		t.Errorf("restored greeting = %v (%t), want hello", v, ok)
	}
	// JSON round-trips typed slices as []interface{}; callers type-check.
	v, ok := dst.Get("catalog|categories")
	if !ok {
		t.Fatal("restored categories missing")
	}
	cats := v.([]interface{})
	if len(cats) != 2 || cats[0] != "All" {
		t.Errorf("restored categories = %v, want [All Electronics]", cats)
	}
}

func TestDumpToFile_SkipsExpired(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cache.json")

	src := NewCache()
	src.Set("keep", "fresh", 0, nil)
	src.m.Store("drop", cacheItem{Value: "stale", ExpiresAt: time.Now().Add(-time.Minute).UnixNano()})
	if err := src.DumpToFile(file); err != nil {
		t.Fatalf("DumpToFile: %v", err)
	}

	dst := NewCache()
	if err := dst.RestoreFromFile(file); err != nil {
		t.Fatalf("RestoreFromFile: %v", err)
	}
	if _, ok := dst.Get("drop"); ok {
		t.Error("expired entry made it into the snapshot")
	}
	if _, ok := dst.Get("keep"); !ok {
		t.Error("fresh entry missing from the snapshot")
	}
}

func TestRestoreFromFile_MissingFile(t *testing.T) {
	c := NewCache()
	if err := c.RestoreFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("RestoreFromFile on a missing file: want error")
	}
}
