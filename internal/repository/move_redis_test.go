package repository

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/othello"
	"github.com/lk16/flippy/greedy/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisRepository(t *testing.T) (*MoveRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewMoveRepositoryFromServices(&services.Services{Redis: client}), server
}

func TestGreedyMove_Cached(t *testing.T) {
	repo, server := newRedisRepository(t)
	board := othello.NewBoard()

	first, err := repo.GreedyMove(t.Context(), board)
	require.NoError(t, err)
	require.False(t, first.Cached)
	require.NotNil(t, first.Move)
	require.Equal(t, othello.Square{Row: 2, Col: 3}, *first.Move)
	require.Equal(t, 1, first.Flips)

	require.True(t, server.Exists(GreedyMovesKey))
	require.Equal(t, GreedyMovesTTL, server.TTL(GreedyMovesKey))
	require.NotEmpty(t, server.HGet(GreedyMovesKey, board.String()))

	second, err := repo.GreedyMove(t.Context(), board)
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, first.Move, second.Move)
	require.Equal(t, first.Flips, second.Flips)

	stats, err := repo.GetCacheStats(t.Context())
	require.NoError(t, err)
	require.Equal(t, models.CacheStats{Enabled: true, Hits: 1, Misses: 1}, stats)
}

func TestGreedyMove_CachedNoMove(t *testing.T) {
	repo, _ := newRedisRepository(t)

	board, err := othello.NewBoardFromString("00000000000000010000000000000000-x")
	require.NoError(t, err)

	for _, cached := range []bool{false, true} {
		response, err := repo.GreedyMove(t.Context(), board)
		require.NoError(t, err)
		require.Equal(t, cached, response.Cached)
		require.Nil(t, response.Move)
		require.Equal(t, 0, response.Flips)
	}
}

func TestGreedyMove_CorruptEntry(t *testing.T) {
	repo, server := newRedisRepository(t)
	board := othello.NewBoard()

	server.HSet(GreedyMovesKey, board.String(), "{not json")

	_, err := repo.GreedyMove(t.Context(), board)
	require.ErrorContains(t, err, "error unmarshaling greedy move")
}

func TestGreedyMove_RedisDown(t *testing.T) {
	repo, server := newRedisRepository(t)
	server.Close()

	_, err := repo.GreedyMove(t.Context(), othello.NewBoard())
	require.ErrorContains(t, err, "error getting greedy move")

	_, err = repo.GetCacheStats(t.Context())
	require.Error(t, err)
}

func TestGetCacheStats_Empty(t *testing.T) {
	repo, _ := newRedisRepository(t)

	stats, err := repo.GetCacheStats(t.Context())
	require.NoError(t, err)
	require.Equal(t, models.CacheStats{Enabled: true}, stats)
}
