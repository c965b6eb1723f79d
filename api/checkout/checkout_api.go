package checkout

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	cartAPI "storefront.GO/api/cart"
	checkoutService "storefront.GO/service/checkout"
	"storefront.GO/service/forms"
)

func init() {
	api.RegisterModule(RegisterCheckoutRoutes)
}

func RegisterCheckoutRoutes(apiGroup *echo.Group, deps api.Deps) {
	// POST /api/checkout – place an order for the session cart
	apiGroup.POST("/checkout", func(c echo.Context) error {
		var form checkoutService.Form
		if err := c.Bind(&form); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		store := deps.Carts.Get(cartAPI.SessionID(c))
		order, err := deps.Checkout.Place(c.Request().Context(), store, form)
		if err != nil {
			var verr *forms.ValidationError
			switch {
			case errors.As(err, &verr):
				return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": verr.Fields})
			case errors.Is(err, checkoutService.ErrEmptyCart):
				return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
			default:
				return err
			}
		}
		return c.JSON(http.StatusOK, order)
	})
}
