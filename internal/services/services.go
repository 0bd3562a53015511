package services

import (
	"log/slog"

	"github.com/lk16/flippy/greedy/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
type Services struct {
	// Redis is nil when no redis URL is configured.
	Redis *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	if cfg.RedisURL == "" {
		slog.Warn("No redis URL configured, greedy move cache is disabled")
		return &Services{}, nil
	}

	// Initialize Redis
	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Redis: redis,
	}, nil
}
