package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show")
	moves := flag.String("moves", "", "moves to play from the start position, such as f5d6c3")
	flag.Parse()

	board, err := loadBoard(*boardString, *moves)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board.Print()
	fmt.Println(models.Status(board, false))
	fmt.Println(board.String())

	if row, col := board.GreedyMove(); row != othello.NoMove {
		move := othello.Square{Row: row, Col: col}
		fmt.Printf("greedy move: %s (%d flips)\n", move, board.CountFlips(row, col))
	}
}

func loadBoard(boardString, moves string) (*othello.Board, error) {
	if boardString != "" && moves != "" {
		return nil, errors.New("use either -board or -moves, not both")
	}

	if boardString != "" {
		return othello.NewBoardFromString(boardString)
	}

	game, err := othello.NewGameFromTranscript(moves)
	if err != nil {
		return nil, err
	}
	return game.Board(), nil
}
