package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisClient backs the catalog response cache. Nil when REDIS_ADDR is
// unset or the server proved unreachable at boot; callers must check.
var RedisClient *redis.Client

// InitRedis creates the client when REDIS_ADDR is configured.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		RedisClient = nil
		return
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
	})
}

// RedisCtx is the context for cache reads and writes.
func RedisCtx() context.Context {
	return context.Background()
}
