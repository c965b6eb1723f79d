package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	"storefront.GO/config"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogRepo "storefront.GO/model/repository/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// Redis response cache TTL for product listings.
const listCacheTTL = 60 * time.Second

var (
	repoInstance *catalogRepo.CatalogRepository
	repoOnce     sync.Once
)

func getRepository(db *gorm.DB) *catalogRepo.CatalogRepository {
	repoOnce.Do(func() {
		repoInstance = catalogRepo.NewCatalogRepository(db)
	})
	return repoInstance
}

func localeOf(c echo.Context) string {
	locale := c.QueryParam("locale")
	if !config.IsLocale(locale) {
		return config.DefaultLocale()
	}
	return locale
}

// cachedJSON serves the response body from Redis when available, otherwise
// builds it with fn and stores it. Falls through silently when Redis is
// not configured or unreachable.
func cachedJSON(c echo.Context, deps api.Deps, key string, fn func() (interface{}, error)) error {
	if deps.Redis != nil {
		if body, err := deps.Redis.Get(config.RedisCtx(), key).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, body)
		}
	}
	payload, err := fn()
	if err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if deps.Redis != nil {
		deps.Redis.Set(config.RedisCtx(), key, body, listCacheTTL)
	}
	return c.JSONBlob(http.StatusOK, body)
}

func RegisterCatalogRoutes(apiGroup *echo.Group, deps api.Deps) {
	repo := getRepository(deps.DB)

	listResponse := func(c echo.Context, products []catalogEntity.Product) interface{} {
		locale := localeOf(c)
		out := make([]catalogEntity.Product, 0, len(products))
		for _, p := range products {
			out = append(out, p.Localized(locale))
		}
		return echo.Map{"products": out, "count": len(out)}
	}

	// GET /api/products?category=Audio&search=head&locale=es
	apiGroup.GET("/products", func(c echo.Context) error {
		category := c.QueryParam("category")
		search := c.QueryParam("search")

		key := "catalog:products:" + localeOf(c) + ":" + category + ":" + search
		return cachedJSON(c, deps, key, func() (interface{}, error) {
			var (
				products []catalogEntity.Product
				err      error
			)
			if search != "" {
				products, err = repo.Search(search)
			} else {
				products, err = repo.ByCategory(category)
			}
			if err != nil {
				return nil, err
			}
			return listResponse(c, products), nil
		})
	})

	// GET /api/products/featured
	apiGroup.GET("/products/featured", func(c echo.Context) error {
		key := "catalog:products:featured:" + localeOf(c)
		return cachedJSON(c, deps, key, func() (interface{}, error) {
			products, err := repo.Featured()
			if err != nil {
				return nil, err
			}
			return listResponse(c, products), nil
		})
	})

	// GET /api/products/:id
	apiGroup.GET("/products/:id", func(c echo.Context) error {
		p, err := repo.FindByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, catalogRepo.ErrNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			return err
		}
		return c.JSON(http.StatusOK, p.Localized(localeOf(c)))
	})

	// GET /api/categories
	apiGroup.GET("/categories", func(c echo.Context) error {
		return cachedJSON(c, deps, "catalog:categories", func() (interface{}, error) {
			cats, err := repo.Categories()
			if err != nil {
				return nil, err
			}
			return echo.Map{"categories": cats}, nil
		})
	})
}
