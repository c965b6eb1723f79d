package graphqltest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"storefront.GO/graphqlserver"
	catalogService "storefront.GO/service/catalog"
)

func seededSchema(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := catalogService.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestGraphQL_SchemaAgainstSeededCatalog(t *testing.T) {
	schema, err := graphqlserver.NewSchema(seededSchema(t))
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}

	res := schema.Exec(context.Background(), `{ product(id: "2") { name price inStock } }`, "", nil)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	var data struct {
		Product struct {
			Name    string
			Price   float64
			InStock bool
		}
	}
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Product.Name != "Smart Fitness Tracker" {
		t.Errorf("name = %q", data.Product.Name)
	}
	if data.Product.Price != 199.99 {
		t.Errorf("price = %v", data.Product.Price)
	}
}

func TestGraphQL_FeaturedFilter(t *testing.T) {
	schema, err := graphqlserver.NewSchema(seededSchema(t))
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}

	res := schema.Exec(context.Background(), `{ products(featured: true) { id featured } }`, "", nil)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	var data struct {
		Products []struct {
			ID       string
			Featured bool
		}
	}
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(data.Products) != 4 {
		t.Fatalf("featured = %d, want 4", len(data.Products))
	}
	for _, p := range data.Products {
		if !p.Featured {
			t.Errorf("product %s not featured", p.ID)
		}
	}
}
