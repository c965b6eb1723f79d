package catalog

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Product represents one catalog_product row. The catalog is read-only
// after seeding; prices are unit prices in the shop currency.
type Product struct {
	ID          string  `gorm:"column:product_id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	Price       float64 `gorm:"column:price;not null;default:0" json:"price"`
	Image       string  `gorm:"column:image;type:varchar(255)" json:"image"`
	Category    string  `gorm:"column:category;type:varchar(64);index" json:"category"`
	Rating      float64 `gorm:"column:rating;not null;default:0" json:"rating"`
	Reviews     int     `gorm:"column:reviews;not null;default:0" json:"reviews"`
	InStock     bool    `gorm:"column:in_stock;not null;default:true" json:"inStock"`
	Featured    bool    `gorm:"column:featured;not null;default:false" json:"featured"`
	// Position preserves catalog order (the seed file's array order).
	Position int `gorm:"column:position;index" json:"-"`
	// Translations holds per-locale name/description overlays:
	// {"es": {"name": "...", "description": "..."}}
	Translations datatypes.JSON `gorm:"column:translations" json:"-"`
}

func (Product) TableName() string {
	return "catalog_product"
}

// Translation is a localized overlay for a product.
type Translation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Localized returns a copy of the product with the locale's overlay
// applied. Unknown locales and malformed overlays return the product
// unchanged.
func (p Product) Localized(locale string) Product {
	if len(p.Translations) == 0 {
		return p
	}
	overlays := map[string]Translation{}
	if err := json.Unmarshal(p.Translations, &overlays); err != nil {
		return p
	}
	tr, ok := overlays[locale]
	if !ok {
		return p
	}
	if tr.Name != "" {
		p.Name = tr.Name
	}
	if tr.Description != "" {
		p.Description = tr.Description
	}
	return p
}
