package othello

import (
	"fmt"
	"strings"
)

// Game represents an Othello game, either complete or in progress.
type Game struct {
	// start is the board before any move is played. This allows for custom start positions for debugging.
	start *Board

	// board is the board after all moves were played.
	board *Board

	// moves is the list of moves in the game. Passes are implicit.
	moves []Square
}

// NewGameWithStart creates a new empty game with custom start board.
func NewGameWithStart(start *Board) *Game {
	return &Game{
		start: start.Clone(),
		board: start.Clone(),
		moves: make([]Square, 0),
	}
}

// NewGame creates a new empty game from the standard starting position.
func NewGame() *Game {
	return NewGameWithStart(NewBoard())
}

// NewGameFromTranscript creates a game from moves in field notation, such as "f5d6c3".
// Whitespace between moves is ignored.
func NewGameFromTranscript(transcript string) (*Game, error) {
	fields := strings.Join(strings.Fields(transcript), "")
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("transcript has odd length %d", len(fields))
	}

	game := NewGame()

	for i := 0; i < len(fields); i += 2 {
		move, err := ParseSquare(fields[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("failed to parse move %d: %w", i/2+1, err)
		}

		if err := game.PushMove(move); err != nil {
			return nil, fmt.Errorf("failed to push move %d: %w", i/2+1, err)
		}
	}

	return game, nil
}

// PushMove plays a move on the current board and appends it to the game.
func (g *Game) PushMove(move Square) error {
	if err := g.board.MakeMove(move.Row, move.Col); err != nil {
		return err
	}

	g.moves = append(g.moves, move)
	return nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Start returns a copy of the start board.
func (g *Game) Start() *Board {
	return g.start.Clone()
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []Square {
	return append([]Square{}, g.moves...)
}

// Transcript returns all moves in field notation without separators.
func (g *Game) Transcript() string {
	var sb strings.Builder
	for _, move := range g.moves {
		sb.WriteString(move.String())
	}
	return sb.String()
}
