// Package auth guards non-public API routes. The storefront surface is
// almost entirely public, so the skipper whitelists every shopper-facing
// path and auth only bites on admin-ish extras a deployment registers.
package auth

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront.GO/config"
)

// Middleware picks the auth scheme from AUTH_TYPE: "key" uses a bearer
// key, anything else falls back to basic auth.
func Middleware() echo.MiddlewareFunc {
	skip := publicPathSkipper()
	if os.Getenv("AUTH_TYPE") == "key" {
		apiKey := os.Getenv("API_KEY")
		return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			Skipper: skip,
			Validator: func(key string, c echo.Context) (bool, error) {
				return key == apiKey, nil
			},
		})
	}
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Skipper: skip,
		Validator: func(username, password string, c echo.Context) (bool, error) {
			return username == os.Getenv("API_USER") && password == os.Getenv("API_PASS"), nil
		},
	})
}

func publicPathSkipper() middleware.Skipper {
	public := make(map[string]bool)
	for _, path := range config.GetAuthSkipperPaths() {
		public[path] = true
	}
	return func(c echo.Context) bool {
		return public[c.Path()]
	}
}
