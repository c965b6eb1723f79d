// Package jobs holds the built-in cron job functions wired up in
// config.CronJobs. Jobs read their own settings from the environment so
// this package stays import-light.
package jobs

import (
	"log"
	"os"
	"time"

	"storefront.GO/service/cart"
)

const defaultCartIdleTTL = 30 * time.Minute

func cartIdleTTL() time.Duration {
	if v := os.Getenv("CART_IDLE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultCartIdleTTL
}

// CartJanitorJob drops cart sessions idle longer than CART_IDLE_TTL.
func CartJanitorJob(args ...string) {
	ttl := cartIdleTTL()
	removed := cart.Sessions().PruneIdle(ttl)
	if removed > 0 {
		log.Printf("cart janitor: pruned %d idle session(s) older than %s", removed, ttl)
	}
}
