package config

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// InitRedis connects the list cache. The cache is optional: with no
// REDIS_ADDR configured, or an unreachable server, the API serves uncached.
func InitRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			log.Println("REDIS_ADDR not set, list cache disabled")
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})

		if _, err := client.Ping(context.Background()).Result(); err != nil {
			log.Printf("Failed to connect to Redis, list cache disabled: %v", err)
			return
		}

		log.Println("Connected to Redis")
		redisClient = client
	})
	return redisClient
}
