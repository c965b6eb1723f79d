package jobs

import (
	"log"
	"os"

	"storefront.GO/core/cache"
)

// CacheSnapshotJob persists the in-process cache to CACHE_FILE so a
// restart starts warm. No-op when CACHE_FILE is unset.
func CacheSnapshotJob(args ...string) {
	file := os.Getenv("CACHE_FILE")
	if file == "" {
		return
	}
	if err := cache.GetInstance().DumpToFile(file); err != nil {
		log.Printf("cache snapshot: %v", err)
		return
	}
	log.Printf("cache snapshot: wrote %s", file)
}
