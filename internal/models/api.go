package models

import (
	"errors"
	"fmt"

	"github.com/lk16/flippy/greedy/internal/othello"
)

// BoardRequest represents a request that carries a single board.
type BoardRequest struct {
	Board string `json:"board"`
}

// ParseBoard parses the board of the request.
func (r *BoardRequest) ParseBoard() (*othello.Board, error) {
	if r.Board == "" {
		return nil, errors.New("board is empty or missing")
	}

	board, err := othello.NewBoardFromString(r.Board)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	return board, nil
}

// MoveRequest represents a request to validate or play a move on a board.
type MoveRequest struct {
	Board string         `json:"board"`
	Move  othello.Square `json:"move"`
}

// ParseBoard parses the board of the request.
func (r *MoveRequest) ParseBoard() (*othello.Board, error) {
	boardRequest := BoardRequest{Board: r.Board}
	return boardRequest.ParseBoard()
}

// Apply plays the move on the board of the request and returns the resulting board.
// Illegal moves return an error wrapping othello.ErrInvalidMove.
func (r *MoveRequest) Apply() (*othello.Board, error) {
	board, err := r.ParseBoard()
	if err != nil {
		return nil, err
	}

	if err = board.MakeMove(r.Move.Row, r.Move.Col); err != nil {
		return nil, err
	}

	return board, nil
}

// Score holds the disc count of both sides.
type Score struct {
	Dark  int `json:"dark"`
	Light int `json:"light"`
}

// BoardResponse describes a board for display.
type BoardResponse struct {
	Board      string           `json:"board"`
	Turn       string           `json:"turn"`
	GameOver   bool             `json:"game_over"`
	Score      Score            `json:"score"`
	ValidMoves []othello.Square `json:"valid_moves"`
	Status     string           `json:"status"`
}

// NewBoardResponse creates a BoardResponse for a board.
func NewBoardResponse(board *othello.Board) BoardResponse {
	dark, light := board.Score()

	return BoardResponse{
		Board:      board.String(),
		Turn:       board.Turn().String(),
		GameOver:   board.IsGameOver(),
		Score:      Score{Dark: dark, Light: light},
		ValidMoves: board.ValidMoves(),
		Status:     Status(board, false),
	}
}

// ValidateResponse is the response for move validation.
type ValidateResponse struct {
	Valid bool `json:"valid"`
	Flips int  `json:"flips"`
}

// NewValidateResponse checks a move on a board.
func NewValidateResponse(board *othello.Board, move othello.Square) ValidateResponse {
	valid := board.IsValidMove(move.Row, move.Col)

	flips := 0
	if valid {
		flips = board.CountFlips(move.Row, move.Col)
	}

	return ValidateResponse{Valid: valid, Flips: flips}
}

// GreedyMoveResponse is the response for greedy move selection.
// Move is nil when the side to move has no legal move.
type GreedyMoveResponse struct {
	Move   *othello.Square `json:"move"`
	Flips  int             `json:"flips"`
	Cached bool            `json:"cached"`
}

// NewGreedyMoveResponse computes the greedy move for a board.
func NewGreedyMoveResponse(board *othello.Board) GreedyMoveResponse {
	move, flips := board.GreedyChoice()
	if !move.InBounds() {
		return GreedyMoveResponse{}
	}

	return GreedyMoveResponse{
		Move:  &move,
		Flips: flips,
	}
}

// CacheStats contains the hit and miss counters of the greedy move cache.
type CacheStats struct {
	Enabled bool  `json:"enabled"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
