package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// The whole storefront surface is public; auth (when enabled via
	// AUTH_TYPE) only guards mutating admin-ish paths like catalog import.
	return []string{
		"/api/products", "/api/products/featured", "/api/products/:id",
		"/api/categories",
		"/api/cart", "/api/cart/items", "/api/cart/items/:id",
		"/api/checkout", "/api/contact",
		"/api/scrollspy/active",
		"/api/placeholder/:width/:height",
		"/graphql", "/playground",
	}
}
