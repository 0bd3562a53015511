package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/othello"
	"github.com/lk16/flippy/greedy/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	GreedyMovesKey = "greedy_moves"
	GreedyMovesTTL = 10 * time.Minute
	CacheHitsKey   = "greedy_cache_hits"
	CacheMissesKey = "greedy_cache_misses"
)

// MoveRepository computes greedy moves and caches them in redis when it is available.
type MoveRepository struct {
	services *services.Services
}

// NewMoveRepository creates a new MoveRepository.
func NewMoveRepository(c *fiber.Ctx) *MoveRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &MoveRepository{
		services: services,
	}
}

func NewMoveRepositoryFromServices(services *services.Services) *MoveRepository {
	return &MoveRepository{
		services: services,
	}
}

// GreedyMove returns the greedy move for a board.
func (repo *MoveRepository) GreedyMove(ctx context.Context, board *othello.Board) (models.GreedyMoveResponse, error) {
	redisConn := repo.services.Redis
	if redisConn == nil {
		return models.NewGreedyMoveResponse(board), nil
	}

	key := board.String()

	jsonData, err := redisConn.HGet(ctx, GreedyMovesKey, key).Bytes()
	if err == nil {
		var response models.GreedyMoveResponse
		if err = json.Unmarshal(jsonData, &response); err != nil {
			return models.GreedyMoveResponse{}, fmt.Errorf("error unmarshaling greedy move: %w", err)
		}

		if err = redisConn.Incr(ctx, CacheHitsKey).Err(); err != nil {
			return models.GreedyMoveResponse{}, fmt.Errorf("error counting cache hit: %w", err)
		}

		response.Cached = true
		return response, nil
	}

	if !errors.Is(err, redis.Nil) {
		return models.GreedyMoveResponse{}, fmt.Errorf("error getting greedy move: %w", err)
	}

	response := models.NewGreedyMoveResponse(board)

	jsonData, err = json.Marshal(response)
	if err != nil {
		return models.GreedyMoveResponse{}, fmt.Errorf("error marshaling greedy move: %w", err)
	}

	_, err = redisConn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, GreedyMovesKey, key, jsonData)
		pipe.Expire(ctx, GreedyMovesKey, GreedyMovesTTL)
		pipe.Incr(ctx, CacheMissesKey)
		return nil
	})
	if err != nil {
		return models.GreedyMoveResponse{}, fmt.Errorf("error storing greedy move: %w", err)
	}

	slog.Debug("cached greedy move", "board", key, "flips", response.Flips)

	return response, nil
}

// GetCacheStats returns the hit and miss counters of the greedy move cache.
func (repo *MoveRepository) GetCacheStats(ctx context.Context) (models.CacheStats, error) {
	redisConn := repo.services.Redis
	if redisConn == nil {
		return models.CacheStats{}, nil
	}

	hits, err := getCounter(ctx, redisConn, CacheHitsKey)
	if err != nil {
		return models.CacheStats{}, err
	}

	misses, err := getCounter(ctx, redisConn, CacheMissesKey)
	if err != nil {
		return models.CacheStats{}, err
	}

	return models.CacheStats{
		Enabled: true,
		Hits:    hits,
		Misses:  misses,
	}, nil
}

// getCounter reads an integer key, treating a missing key as zero.
func getCounter(ctx context.Context, redisConn *redis.Client, key string) (int64, error) {
	value, err := redisConn.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error getting %s: %w", key, err)
	}
	return value, nil
}
