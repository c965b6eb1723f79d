package catalog

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"storefront.GO/core/cache"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// ErrNotFound is returned when a product id has no catalog row.
var ErrNotFound = errors.New("product not found")

const (
	cacheTag = "catalog"
	cacheTTL = 300 // seconds
)

// CatalogRepository reads the immutable product catalog. Query results are
// cached; Invalidate drops the cache after an import. Cache hits are
// type-checked because a snapshot restored from CACHE_FILE holds plain
// JSON values, which count as a miss here.
type CatalogRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db, cache: cache.GetInstance()}
}

// List returns every product in catalog order.
func (r *CatalogRepository) List() ([]catalogEntity.Product, error) {
	if v, ok := r.cache.GetN(cacheTag, "list"); ok {
		if products, ok := v.([]catalogEntity.Product); ok {
			return products, nil
		}
	}
	var products []catalogEntity.Product
	if err := r.db.Order("position").Find(&products).Error; err != nil {
		return nil, err
	}
	r.cache.SetN([]interface{}{cacheTag, "list"}, products, cacheTTL, []string{cacheTag})
	return products, nil
}

// FindByID returns one product or ErrNotFound.
func (r *CatalogRepository) FindByID(id string) (*catalogEntity.Product, error) {
	if v, ok := r.cache.GetN(cacheTag, "id", id); ok {
		if p, ok := v.(catalogEntity.Product); ok {
			return &p, nil
		}
	}
	var p catalogEntity.Product
	err := r.db.First(&p, "product_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.cache.SetN([]interface{}{cacheTag, "id", id}, p, cacheTTL, []string{cacheTag})
	return &p, nil
}

// ByCategory returns products in one category; "All" (or empty) returns
// the whole catalog.
func (r *CatalogRepository) ByCategory(category string) ([]catalogEntity.Product, error) {
	if category == "" || category == "All" {
		return r.List()
	}
	if v, ok := r.cache.GetN(cacheTag, "category", category); ok {
		if products, ok := v.([]catalogEntity.Product); ok {
			return products, nil
		}
	}
	var products []catalogEntity.Product
	err := r.db.Where("category = ?", category).Order("position").Find(&products).Error
	if err != nil {
		return nil, err
	}
	r.cache.SetN([]interface{}{cacheTag, "category", category}, products, cacheTTL, []string{cacheTag})
	return products, nil
}

// Search returns products whose name or description contains the query,
// case-insensitively. An empty query returns the whole catalog.
func (r *CatalogRepository) Search(query string) ([]catalogEntity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.List()
	}
	if v, ok := r.cache.GetN(cacheTag, "search", strings.ToLower(query)); ok {
		if products, ok := v.([]catalogEntity.Product); ok {
			return products, nil
		}
	}
	like := "%" + strings.ToLower(query) + "%"
	var products []catalogEntity.Product
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like).
		Order("position").Find(&products).Error
	if err != nil {
		return nil, err
	}
	r.cache.SetN([]interface{}{cacheTag, "search", strings.ToLower(query)}, products, cacheTTL, []string{cacheTag})
	return products, nil
}

// Featured returns the featured products in catalog order.
func (r *CatalogRepository) Featured() ([]catalogEntity.Product, error) {
	if v, ok := r.cache.GetN(cacheTag, "featured"); ok {
		if products, ok := v.([]catalogEntity.Product); ok {
			return products, nil
		}
	}
	var products []catalogEntity.Product
	err := r.db.Where("featured = ?", true).Order("position").Find(&products).Error
	if err != nil {
		return nil, err
	}
	r.cache.SetN([]interface{}{cacheTag, "featured"}, products, cacheTTL, []string{cacheTag})
	return products, nil
}

// Categories returns "All" followed by each distinct category in catalog
// order.
func (r *CatalogRepository) Categories() ([]string, error) {
	if v, ok := r.cache.GetN(cacheTag, "categories"); ok {
		if categories, ok := v.([]string); ok {
			return categories, nil
		}
	}
	var rows []string
	err := r.db.Model(&catalogEntity.Product{}).
		Select("category").Group("category").Order("MIN(position)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	categories := append([]string{"All"}, rows...)
	r.cache.SetN([]interface{}{cacheTag, "categories"}, categories, cacheTTL, []string{cacheTag})
	return categories, nil
}

// Invalidate drops every cached catalog read. Call after an import.
func (r *CatalogRepository) Invalidate() {
	r.cache.DeleteByTag(cacheTag)
}
