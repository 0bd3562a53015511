package models

import (
	"testing"

	"github.com/lk16/flippy/greedy/internal/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startBoard = "00000008100000000000001008000000-d"

func TestBoardRequestParseBoard(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		wantErr string
	}{
		{name: "OK", board: startBoard},
		{name: "Empty", board: "", wantErr: "board is empty or missing"},
		{name: "Garbage", board: "hello", wantErr: "invalid board"},
		{name: "StartMarkedGameOver", board: "00000008100000000000001008000000-x", wantErr: "turn does not match board"},
		{name: "SideToMoveMustPass", board: "00000000000000010000000000000002-l", wantErr: "turn does not match board"},
		{name: "GameOver", board: "00000000000000010000000000000000-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BoardRequest{Board: tt.board}
			board, err := req.ParseBoard()
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.board, board.String())
		})
	}
}

func TestMoveRequestApply(t *testing.T) {
	req := MoveRequest{Board: startBoard, Move: othello.Square{Row: 3, Col: 2}}

	board, err := req.Apply()
	require.NoError(t, err)
	require.Equal(t, othello.TurnLight, board.Turn())

	req.Move = othello.Square{Row: 0, Col: 0}
	_, err = req.Apply()
	require.ErrorIs(t, err, othello.ErrInvalidMove)

	req.Board = ""
	_, err = req.Apply()
	require.Error(t, err)
	require.NotErrorIs(t, err, othello.ErrInvalidMove)
}

func TestNewBoardResponse(t *testing.T) {
	resp := NewBoardResponse(othello.NewBoard())

	want := BoardResponse{
		Board:    startBoard,
		Turn:     "Dark",
		GameOver: false,
		Score:    Score{Dark: 2, Light: 2},
		ValidMoves: []othello.Square{
			{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4},
		},
		Status: "Dark's turn",
	}
	require.Equal(t, want, resp)
}

func TestNewValidateResponse(t *testing.T) {
	board := othello.NewBoard()

	require.Equal(t, ValidateResponse{Valid: true, Flips: 1}, NewValidateResponse(board, othello.Square{Row: 2, Col: 3}))
	require.Equal(t, ValidateResponse{Valid: false, Flips: 0}, NewValidateResponse(board, othello.Square{Row: 0, Col: 0}))
	require.Equal(t, ValidateResponse{Valid: false, Flips: 0}, NewValidateResponse(board, othello.Square{Row: -3, Col: 9}))
}

func TestNewGreedyMoveResponse(t *testing.T) {
	resp := NewGreedyMoveResponse(othello.NewBoard())
	require.NotNil(t, resp.Move)
	require.Equal(t, othello.Square{Row: 2, Col: 3}, *resp.Move)
	require.Equal(t, 1, resp.Flips)
	require.False(t, resp.Cached)

	over, err := othello.NewBoardFromGrid(othello.Grid{}, othello.GameOver)
	require.NoError(t, err)

	resp = NewGreedyMoveResponse(over)
	require.Nil(t, resp.Move)
	require.Equal(t, 0, resp.Flips)
}
