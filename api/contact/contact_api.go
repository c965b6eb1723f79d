package contact

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/config"
	contactService "storefront.GO/service/contact"
	"storefront.GO/service/forms"
)

func init() {
	api.RegisterModule(RegisterContactRoutes)
}

func RegisterContactRoutes(apiGroup *echo.Group, deps api.Deps) {
	// POST /api/contact?locale=es – submit the contact form
	apiGroup.POST("/contact", func(c echo.Context) error {
		var msg contactService.Message
		if err := c.Bind(&msg); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		locale := c.QueryParam("locale")
		if !config.IsLocale(locale) {
			locale = config.DefaultLocale()
		}

		confirmation, err := deps.Contact.Submit(c.Request().Context(), msg, locale)
		if err != nil {
			var verr *forms.ValidationError
			if errors.As(err, &verr) {
				return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": verr.Fields})
			}
			return err
		}
		if deps.Analytics != nil {
			deps.Analytics.Track("contact_submit", map[string]interface{}{
				"locale":         locale,
				"message_length": len(msg.Message),
			})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": confirmation})
	})
}
