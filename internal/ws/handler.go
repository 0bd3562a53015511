package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/othello"
	"github.com/lk16/flippy/greedy/internal/repository"
	"github.com/lk16/flippy/greedy/internal/services"
)

const (
	greedyMoveTimeout = 2 * time.Second
)

type Handler struct {
	services *services.Services
	ws       *websocket.Conn
	id       string
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws, id: uuid.New().String()}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "conn", h.id, "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "conn", h.id, "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "board_request":
		return h.handleBoardRequest(req)
	case "apply_request":
		return h.handleApplyRequest(req)
	case "greedy_request":
		return h.handleGreedyRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	slog.Info("ws connection opened", "conn", h.id)

	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleBoardRequest(req *Incoming) (*Outgoing, error) {
	var reqData models.BoardRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws board request unmarshal error: %w", err)
	}

	board, err := reqData.ParseBoard()
	if err != nil {
		return nil, fmt.Errorf("ws board request: %w", err)
	}

	return &Outgoing{ID: req.ID, Data: models.NewBoardResponse(board)}, nil
}

// handleApplyRequest plays a move. An illegal move is reported to the client without closing the connection.
func (h *Handler) handleApplyRequest(req *Incoming) (*Outgoing, error) {
	var reqData models.MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws apply request unmarshal error: %w", err)
	}

	board, err := reqData.Apply()
	if errors.Is(err, othello.ErrInvalidMove) {
		return &Outgoing{ID: req.ID, Error: err.Error()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ws apply request: %w", err)
	}

	return &Outgoing{ID: req.ID, Data: models.NewBoardResponse(board)}, nil
}

func (h *Handler) handleGreedyRequest(req *Incoming) (*Outgoing, error) {
	var reqData models.BoardRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws greedy request unmarshal error: %w", err)
	}

	board, err := reqData.ParseBoard()
	if err != nil {
		return nil, fmt.Errorf("ws greedy request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), greedyMoveTimeout)
	defer cancel()

	repo := repository.NewMoveRepositoryFromServices(h.services)

	response, err := repo.GreedyMove(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to compute greedy move: %w", err)
	}

	return &Outgoing{ID: req.ID, Data: response}, nil
}
