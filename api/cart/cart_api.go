package cart

import (
	"errors"
	"math"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	catalogRepo "storefront.GO/model/repository/catalog"
	"storefront.GO/service/analytics"
	cartService "storefront.GO/service/cart"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// SessionCookie names the cart session cookie. Clients may also send the
// session id in the X-Session-ID header, which wins over the cookie.
const SessionCookie = "storefront_session"

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

// SessionID resolves the cart session id for a request, minting one and
// setting the cookie when the client has none yet.
func SessionID(c echo.Context) string {
	if id := c.Request().Header.Get("X-Session-ID"); id != "" {
		return id
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type lineItemView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	RowTotal  float64 `json:"row_total"`
}

func cartView(store *cartService.Store) echo.Map {
	items := store.Items()
	views := make([]lineItemView, 0, len(items))
	for _, it := range items {
		views = append(views, lineItemView{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Image:     it.Product.Image,
			Quantity:  it.Quantity,
			RowTotal:  round2(it.Product.Price * float64(it.Quantity)),
		})
	}
	return echo.Map{
		"items":       views,
		"total_items": store.TotalItems(),
		"total_price": round2(store.TotalPrice()),
	}
}

func track(deps api.Deps, name string, item cartService.LineItem) {
	if deps.Analytics == nil {
		return
	}
	deps.Analytics.Track(name, analytics.ItemParams(item.Product, item.Quantity))
}

func RegisterCartRoutes(apiGroup *echo.Group, deps api.Deps) {
	g := apiGroup.Group("/cart")
	repo := getRepository(deps.DB)

	// GET /api/cart
	g.GET("", func(c echo.Context) error {
		store := deps.Carts.Get(SessionID(c))
		return c.JSON(http.StatusOK, cartView(store))
	})

	// POST /api/cart/items – add (or merge) a product
	g.POST("/items", func(c echo.Context) error {
		var body struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.ProductID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_id is required"})
		}

		product, err := repo.FindByID(body.ProductID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			return err
		}
		if !product.InStock {
			return c.JSON(http.StatusConflict, echo.Map{"error": "product is out of stock"})
		}

		store := deps.Carts.Get(SessionID(c))
		store.Add(*product, body.Quantity)

		if item, ok := store.Get(product.ID); ok {
			track(deps, "add_to_cart", item)
		}
		return c.JSON(http.StatusOK, cartView(store))
	})

	// PATCH /api/cart/items/:id – set the exact quantity
	g.PATCH("/items/:id", func(c echo.Context) error {
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		store := deps.Carts.Get(SessionID(c))
		id := c.Param("id")
		if _, ok := store.Get(id); !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not in cart"})
		}
		store.UpdateQuantity(id, body.Quantity)
		return c.JSON(http.StatusOK, cartView(store))
	})

	// DELETE /api/cart/items/:id – remove one line item
	g.DELETE("/items/:id", func(c echo.Context) error {
		store := deps.Carts.Get(SessionID(c))
		id := c.Param("id")
		item, ok := store.Get(id)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not in cart"})
		}
		store.Remove(id)
		track(deps, "remove_from_cart", item)
		return c.JSON(http.StatusOK, cartView(store))
	})

	// DELETE /api/cart – clear the whole cart
	g.DELETE("", func(c echo.Context) error {
		store := deps.Carts.Get(SessionID(c))
		store.Clear()
		return c.JSON(http.StatusOK, cartView(store))
	})
}
