package catalog

import (
	"bytes"
	"fmt"

	_ "embed"

	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
)

//go:embed products.json
var seedProducts []byte

// Seed creates the catalog schema and loads the built-in demo products.
// The catalog is immutable for the life of the process after this.
func Seed(db *gorm.DB) (*ImportResult, error) {
	if err := db.AutoMigrate(&catalogEntity.Product{}); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	return ImportJSON(db, bytes.NewReader(seedProducts), 0)
}
