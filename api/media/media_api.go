// Package media serves generated placeholder product images, matching the
// /api/placeholder/{w}/{h} URLs the catalog seeds its image fields with.
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	"storefront.GO/core/cache"
)

func init() {
	api.RegisterRoute(RegisterMediaRoutes)
}

const (
	maxDimension = 2000
	cacheTTL     = 3600
	cacheTag     = "media"
)

var (
	fillColor   = color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
	accentColor = color.NRGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
)

// render draws the placeholder: a light canvas with a centered accent
// block at half the canvas size.
func render(width, height int) image.Image {
	canvas := imaging.New(width, height, fillColor)
	block := imaging.New(width/2, height/2, accentColor)
	return imaging.OverlayCenter(canvas, block, 1.0)
}

func encode(img image.Image, asWebP bool) ([]byte, string, error) {
	var buf bytes.Buffer
	if asWebP {
		if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/webp", nil
	}
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/png", nil
}

func parseDimension(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxDimension {
		return 0, fmt.Errorf("dimension must be 1-%d, got %q", maxDimension, raw)
	}
	return n, nil
}

func wantsWebP(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get("Accept"), "image/webp")
}

func RegisterMediaRoutes(e *echo.Echo, _ api.Deps) {
	store := cache.GetInstance()

	// GET /api/placeholder/:width/:height
	e.GET("/api/placeholder/:width/:height", func(c echo.Context) error {
		width, err := parseDimension(c.Param("width"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		height, err := parseDimension(c.Param("height"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		asWebP := wantsWebP(c)

		key := fmt.Sprintf("media:%dx%d:webp=%t", width, height, asWebP)
		if cached, ok := store.Get(key); ok {
			if entry, ok := cached.(mediaEntry); ok {
				return c.Blob(http.StatusOK, entry.contentType, entry.body)
			}
		}

		body, contentType, err := encode(render(width, height), asWebP)
		if err != nil {
			return err
		}
		store.Set(key, mediaEntry{body: body, contentType: contentType}, cacheTTL, []string{cacheTag})
		return c.Blob(http.StatusOK, contentType, body)
	})
}

type mediaEntry struct {
	body        []byte
	contentType string
}
