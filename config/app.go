package config

import (
	"os"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName       string
	Port          string
	Env           string
	Debug         bool
	DefaultLocale string
	// Simulated external calls: checkout payment processing and contact
	// form submission resolve after these delays.
	CheckoutDelay time.Duration
	ContactDelay  time.Duration
	// Carts idle longer than this are reclaimed by the janitor job.
	CartIdleTTL time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:       GetEnv("APP_NAME", "storefront"),
			Port:          GetEnv("PORT", "8080"),
			Env:           os.Getenv("APP_ENV"),
			Debug:         os.Getenv("DEBUG") == "true",
			DefaultLocale: GetEnv("DEFAULT_LOCALE", "en"),
			CheckoutDelay: envDuration("CHECKOUT_DELAY", 3*time.Second),
			ContactDelay:  envDuration("CONTACT_DELAY", 1500*time.Millisecond),
			CartIdleTTL:   envDuration("CART_IDLE_TTL", 30*time.Minute),
		}
	})
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
