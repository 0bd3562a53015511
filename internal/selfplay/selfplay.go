package selfplay

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/flippy/greedy/internal/client"
	"github.com/lk16/flippy/greedy/internal/config"
	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/othello"
)

// Player picks a move for the side to move. It returns false if there is no legal move.
type Player func(ctx context.Context, board *othello.Board) (othello.Square, bool, error)

// Greedy picks the move that flips the most discs.
func Greedy(_ context.Context, board *othello.Board) (othello.Square, bool, error) {
	row, col := board.GreedyMove()
	return othello.Square{Row: row, Col: col}, row != othello.NoMove, nil
}

// Random returns a player that picks a uniformly random legal move.
func Random(rng *rand.Rand) Player {
	return func(_ context.Context, board *othello.Board) (othello.Square, bool, error) {
		moves := board.ValidMoves()
		if len(moves) == 0 {
			return othello.Square{}, false, nil
		}
		return moves[rng.Intn(len(moves))], true, nil
	}
}

// Remote returns a player that asks a running server for the greedy move.
func Remote(apiClient *client.APIClient) Player {
	return func(ctx context.Context, board *othello.Board) (othello.Square, bool, error) {
		response, err := apiClient.GreedyMove(ctx, board)
		if err != nil {
			return othello.Square{}, false, err
		}
		if response.Move == nil {
			return othello.Square{}, false, nil
		}

		slog.Debug("remote greedy move", "move", response.Move.String(), "cached", response.Cached)
		return *response.Move, true, nil
	}
}

// PlayerByName returns the player for "greedy", "random" or "remote".
// The remote player loads its server settings from the environment.
func PlayerByName(name string, rng *rand.Rand) (Player, error) {
	switch name {
	case "greedy":
		return Greedy, nil
	case "random":
		return Random(rng), nil
	case "remote":
		return Remote(client.NewAPIClient(config.LoadClientConfig())), nil
	default:
		return nil, fmt.Errorf("unknown player: %s", name)
	}
}

// Result is a finished self-play game.
type Result struct {
	ID     string
	Game   *othello.Game
	Dark   int
	Light  int
	Winner othello.Cell
}

// Play plays a game from start until neither side can move.
// Delay is waited before every move, mimicking a thinking opponent.
func Play(ctx context.Context, start *othello.Board, dark, light Player, delay time.Duration) (*Result, error) {
	id := uuid.New().String()
	game := othello.NewGameWithStart(start)

	for board := game.Board(); !board.IsGameOver(); board = game.Board() {
		slog.Debug("waiting for move", "game", id, "status", models.Status(board, true))

		if err := wait(ctx, delay); err != nil {
			return nil, fmt.Errorf("game %s interrupted: %w", id, err)
		}

		player := dark
		if board.Turn() == othello.TurnLight {
			player = light
		}

		move, ok, err := player(ctx, board)
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", id, err)
		}
		if !ok {
			return nil, fmt.Errorf("game %s: player for %s found no move on %s", id, board.Turn(), board)
		}

		if err := game.PushMove(move); err != nil {
			return nil, fmt.Errorf("game %s: %w", id, err)
		}

		slog.Debug("played move", "game", id, "move", move.String())
	}

	final := game.Board()
	darkCount, lightCount := final.Score()
	winner, _ := final.Winner()

	return &Result{
		ID:     id,
		Game:   game,
		Dark:   darkCount,
		Light:  lightCount,
		Winner: winner,
	}, nil
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
