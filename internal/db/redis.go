package db

import (
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/RenanMEleoterio/BarberPro-sub000/internal/config"
)

// NewRedis returns the catalog cache client, or nil when REDIS_URL is not
// configured. A nil client degrades catalog lookups to straight database
// reads.
func NewRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, running without cache: %v", err)
		return nil
	}

	return redis.NewClient(opts)
}
