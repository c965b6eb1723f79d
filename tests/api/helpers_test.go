package apitest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	cartApi "storefront.GO/api/cart"
	catalogApi "storefront.GO/api/catalog"
	checkoutApi "storefront.GO/api/checkout"
	contactApi "storefront.GO/api/contact"
	scrollspyApi "storefront.GO/api/scrollspy"
	cartService "storefront.GO/service/cart"
	catalogService "storefront.GO/service/catalog"
	checkoutService "storefront.GO/service/checkout"
	contactService "storefront.GO/service/contact"
)

var (
	fixtureOnce sync.Once
	fixtureDB   *gorm.DB
	fixtureErr  error
)

// seededDB opens one in-memory catalog shared by the whole package. The
// route modules cache their repository on first use, so every test must
// see the same handle.
func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	fixtureOnce.Do(func() {
		fixtureDB, fixtureErr = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		if fixtureErr != nil {
			return
		}
		_, fixtureErr = catalogService.Seed(fixtureDB)
	})
	if fixtureErr != nil {
		t.Fatalf("fixture: %v", fixtureErr)
	}
	return fixtureDB
}

// newApp wires a fresh echo instance with all storefront API routes and
// its own cart manager, so sessions do not leak between tests.
func newApp(t *testing.T) (*echo.Echo, api.Deps) {
	t.Helper()
	deps := api.Deps{
		DB:       seededDB(t),
		Carts:    cartService.NewManager(),
		Checkout: checkoutService.NewService(0, nil),
		Contact:  contactService.NewService(0),
	}
	e := echo.New()
	g := e.Group("/api")
	cartApi.RegisterCartRoutes(g, deps)
	catalogApi.RegisterCatalogRoutes(g, deps)
	checkoutApi.RegisterCheckoutRoutes(g, deps)
	contactApi.RegisterContactRoutes(g, deps)
	scrollspyApi.RegisterScrollSpyRoutes(g, deps)
	return e, deps
}

// doJSON performs a request with an optional JSON body and session id,
// returning the recorder and the decoded body.
func doJSON(t *testing.T, e *echo.Echo, method, path, session string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, path, err, rec.Body.String())
		}
	}
	return rec, resp
}
