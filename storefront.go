//go:build !cli
// +build !cli

package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront.GO/api"
	_ "storefront.GO/api/cart"
	_ "storefront.GO/api/catalog"
	_ "storefront.GO/api/checkout"
	_ "storefront.GO/api/contact"
	graphqlApi "storefront.GO/api/graphql"
	_ "storefront.GO/api/media"
	_ "storefront.GO/api/scrollspy"
	"storefront.GO/config"
	"storefront.GO/core/auth"
	"storefront.GO/core/cache"
	"storefront.GO/cron"
	_ "storefront.GO/custom"
	"storefront.GO/html"
	"storefront.GO/service/analytics"
	cartService "storefront.GO/service/cart"
	catalogService "storefront.GO/service/catalog"
	checkoutService "storefront.GO/service/checkout"
	contactService "storefront.GO/service/contact"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, response caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	if file := os.Getenv("CACHE_FILE"); file != "" {
		if err := cache.GetInstance().RestoreFromFile(file); err != nil {
			log.Printf("cache restore skipped: %v", err)
		} else {
			log.Printf("Cache restored from %s.", file)
		}
	}

	seedRes, err := catalogService.Seed(db)
	if err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}
	log.Printf("Catalog seeded: %d product(s), %d skipped.", seedRes.Imported, seedRes.Skipped)

	tracker := analytics.NewTracker(256)
	defer tracker.Close()

	deps := api.Deps{
		DB:        db,
		Carts:     cartService.Sessions(),
		Analytics: tracker,
		Checkout:  checkoutService.NewService(config.AppConfig.CheckoutDelay, tracker),
		Contact:   contactService.NewService(config.AppConfig.ContactDelay),
		Redis:     config.RedisClient,
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.Renderer = html.NewRenderer()

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())

	api.ApplyModules(apiGroup, deps)
	graphqlApi.RegisterGraphQLRoutes(e, db)
	api.ApplyRoutes(e, deps)

	c := cron.StartCron()
	defer c.Stop()

	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("storefront ->", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := config.AppConfig.Port
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
