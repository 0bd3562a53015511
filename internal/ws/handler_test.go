package ws

import (
	"encoding/json"
	"testing"

	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/othello"
	"github.com/lk16/flippy/greedy/internal/services"
	"github.com/stretchr/testify/require"
)

const startBoard = "00000008100000000000001008000000-d"

func newTestHandler() *Handler {
	return &Handler{services: &services.Services{}, id: "test"}
}

func incoming(t *testing.T, event string, id int, data any) *Incoming {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	return &Incoming{Event: event, ID: id, Data: raw}
}

func TestHandleMessage_Board(t *testing.T) {
	h := newTestHandler()

	out, err := h.handleMessage(incoming(t, "board_request", 3, models.BoardRequest{Board: startBoard}))
	require.NoError(t, err)
	require.Equal(t, 3, out.ID)
	require.Empty(t, out.Error)

	resp, ok := out.Data.(models.BoardResponse)
	require.True(t, ok)
	require.Equal(t, "Dark's turn", resp.Status)
	require.Len(t, resp.ValidMoves, 4)
}

func TestHandleMessage_Apply(t *testing.T) {
	h := newTestHandler()

	req := models.MoveRequest{Board: startBoard, Move: othello.Square{Row: 3, Col: 2}}
	out, err := h.handleMessage(incoming(t, "apply_request", 4, req))
	require.NoError(t, err)

	resp, ok := out.Data.(models.BoardResponse)
	require.True(t, ok)
	require.Equal(t, models.Score{Dark: 4, Light: 1}, resp.Score)
	require.Equal(t, "Light", resp.Turn)
}

func TestHandleMessage_ApplyInvalidMove(t *testing.T) {
	h := newTestHandler()

	req := models.MoveRequest{Board: startBoard, Move: othello.Square{Row: 0, Col: 0}}
	out, err := h.handleMessage(incoming(t, "apply_request", 5, req))
	require.NoError(t, err)
	require.Equal(t, 5, out.ID)
	require.Nil(t, out.Data)
	require.Contains(t, out.Error, "invalid move")
}

func TestHandleMessage_Greedy(t *testing.T) {
	h := newTestHandler()

	out, err := h.handleMessage(incoming(t, "greedy_request", 6, models.BoardRequest{Board: startBoard}))
	require.NoError(t, err)

	resp, ok := out.Data.(models.GreedyMoveResponse)
	require.True(t, ok)
	require.Equal(t, &othello.Square{Row: 2, Col: 3}, resp.Move)
}

func TestHandleMessage_Errors(t *testing.T) {
	h := newTestHandler()

	_, err := h.handleMessage(&Incoming{})
	require.Error(t, err)

	_, err = h.handleMessage(&Incoming{Event: "evaluation_request"})
	require.Error(t, err)

	_, err = h.handleMessage(incoming(t, "board_request", 1, models.BoardRequest{Board: "nope"}))
	require.Error(t, err)

	_, err = h.handleMessage(&Incoming{Event: "greedy_request", Data: json.RawMessage(`[1,2]`)})
	require.Error(t, err)
}
