package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/lk16/flippy/greedy/internal/config"
	"github.com/lk16/flippy/greedy/internal/othello"
	"github.com/lk16/flippy/greedy/internal/selfplay"
)

func main() {
	games := flag.Int("games", 1, "number of games to play")
	delay := flag.Duration("delay", 0, "pause before every move, such as 500ms")
	darkName := flag.String("dark", "greedy", "dark player: greedy, random or remote")
	lightName := flag.String("light", "greedy", "light player: greedy, random or remote")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for random players")
	flag.Parse()

	config.SetLogLevel()

	rng := rand.New(rand.NewSource(*seed))

	dark, err := selfplay.PlayerByName(*darkName, rng)
	if err != nil {
		slog.Error("Invalid dark player", "error", err)
		os.Exit(1)
	}

	light, err := selfplay.PlayerByName(*lightName, rng)
	if err != nil {
		slog.Error("Invalid light player", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	wins := map[othello.Cell]int{}

	for range *games {
		result, err := selfplay.Play(ctx, othello.NewBoard(), dark, light, *delay)
		if err != nil {
			slog.Error("Game failed", "error", err)
			os.Exit(1)
		}

		wins[result.Winner]++

		slog.Info("Game finished",
			"game", result.ID,
			"winner", result.Winner.String(),
			"dark", result.Dark,
			"light", result.Light,
			"moves", result.Game.Transcript(),
			"board", result.Game.Board().String(),
		)
	}

	slog.Info("All games finished",
		"games", *games,
		"dark_wins", wins[othello.Dark],
		"light_wins", wins[othello.Light],
		"draws", wins[othello.Empty],
	)
}
