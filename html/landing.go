// Package html renders the server-side landing page. The page carries the
// section anchors the scroll spy API tracks, so section ids here must stay
// in step with config.LandingSections.
package html

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/config"
	"storefront.GO/html/parts"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogRepo "storefront.GO/model/repository/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

func init() {
	api.RegisterHTMLModule(RegisterLandingRoutes)
}

// Template adapts html/template to echo's Renderer interface.
type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewRenderer parses the embedded page templates.
func NewRenderer() *Template {
	return &Template{
		Templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

var pageStrings = map[string]map[string]string{
	"en": {
		"title":          "Storefront",
		"hero":           "Home",
		"about":          "About",
		"showcase":       "Products",
		"contact":        "Contact",
		"heroTitle":      "Everything your desk is missing",
		"heroSubtitle":   "Hand-picked gear for work and play, shipped the same day.",
		"aboutTitle":     "Why shop with us",
		"aboutBody":      "We stock a small catalog we actually use ourselves, and stand behind every item in it.",
		"showcaseTitle":  "Featured products",
		"contactTitle":   "Get in touch",
		"contactName":    "Your name",
		"contactEmail":   "Email address",
		"contactMessage": "How can we help?",
		"contactSend":    "Send message",
	},
	"es": {
		"title":          "Storefront",
		"hero":           "Inicio",
		"about":          "Nosotros",
		"showcase":       "Productos",
		"contact":        "Contacto",
		"heroTitle":      "Todo lo que le falta a tu escritorio",
		"heroSubtitle":   "Equipo seleccionado para el trabajo y el ocio, enviado el mismo día.",
		"aboutTitle":     "Por qué comprar con nosotros",
		"aboutBody":      "Mantenemos un catálogo pequeño que usamos nosotros mismos, y respondemos por cada artículo.",
		"showcaseTitle":  "Productos destacados",
		"contactTitle":   "Contáctanos",
		"contactName":    "Tu nombre",
		"contactEmail":   "Correo electrónico",
		"contactMessage": "¿Cómo podemos ayudarte?",
		"contactSend":    "Enviar mensaje",
	},
}

// RegisterLandingRoutes serves the landing page at / and /:locale.
func RegisterLandingRoutes(e *echo.Echo, deps api.Deps) {
	repo := catalogRepo.NewCatalogRepository(deps.DB)

	render := func(c echo.Context, locale string) error {
		products, err := repo.Featured()
		if err != nil {
			return err
		}
		categories, err := repo.Categories()
		if err != nil {
			return err
		}
		localized := make([]catalogEntity.Product, 0, len(products))
		for _, p := range products {
			localized = append(localized, p.Localized(locale))
		}
		return c.Render(http.StatusOK, "landing.html", map[string]interface{}{
			"Locale":       locale,
			"Strings":      pageStrings[locale],
			"Sections":     config.LandingSections(locale),
			"ScrollOffset": config.ScrollOffset,
			"Products":     localized,
			"Categories":   categories,
			"CriticalCSS":  template.CSS(parts.CriticalCSS),
		})
	}

	e.GET("/", func(c echo.Context) error {
		return render(c, config.DefaultLocale())
	})
	e.GET("/:locale", func(c echo.Context) error {
		locale := c.Param("locale")
		if !config.IsLocale(locale) {
			return c.Redirect(http.StatusFound, "/")
		}
		return render(c, locale)
	})
}
