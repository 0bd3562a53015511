package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lk16/flippy/greedy/internal/config"
	"github.com/lk16/flippy/greedy/internal/middleware"
	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/othello"
)

const (
	clientTimeout = 5 * time.Second
)

// APIClient talks to the HTTP API of a running server.
type APIClient struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	httpClient *http.Client
}

func NewAPIClient(config *config.ClientConfig) *APIClient {
	return &APIClient{
		config: config,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// logRequestAsCurl logs the request as a curl command at debug level.
func (c *APIClient) logRequestAsCurl(request *http.Request, body []byte) {
	// Do not build string if we're not logging it
	if !slog.Default().Enabled(request.Context(), slog.LevelDebug) {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(request.Method)
	builder.WriteString(" '")
	builder.WriteString(request.URL.String())
	builder.WriteString("'")

	for key, values := range request.Header {
		for _, value := range values {
			builder.WriteString(" -H '")
			builder.WriteString(strings.ToLower(key))
			builder.WriteString(": ")
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if len(body) > 0 {
		builder.WriteString(" -d '")
		builder.WriteString(strings.ReplaceAll(string(body), "'", "'\\''"))
		builder.WriteString("'")
	}

	slog.Debug("api request", "curl", builder.String())
}

// request sends a request and decodes the JSON response into out.
func (c *APIClient) request(ctx context.Context, method string, path string, payload any, out any) error {
	var body []byte

	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	request, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	request.Header.Set(middleware.TokenHeader, c.config.Token)

	c.logRequestAsCurl(request, body)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("api response", "status", response.Status, "body", string(responseBody))

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(responseBody, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %v: %s", response.Status, apiErr.Error)
		}
		return fmt.Errorf("server returned unexpected status %v", response.Status)
	}

	if err = json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *APIClient) post(ctx context.Context, path string, payload any, out any) error {
	return c.request(ctx, http.MethodPost, path, payload, out)
}

func (c *APIClient) get(ctx context.Context, path string, out any) error {
	return c.request(ctx, http.MethodGet, path, nil, out)
}

// DescribeBoard fetches turn, score, legal moves and status of a board.
func (c *APIClient) DescribeBoard(ctx context.Context, board *othello.Board) (models.BoardResponse, error) {
	var response models.BoardResponse
	if err := c.post(ctx, "/api/board", models.BoardRequest{Board: board.String()}, &response); err != nil {
		return models.BoardResponse{}, fmt.Errorf("failed to describe board: %w", err)
	}
	return response, nil
}

// ApplyMove plays a move on the server and returns the resulting board.
func (c *APIClient) ApplyMove(ctx context.Context, board *othello.Board, move othello.Square) (*othello.Board, error) {
	payload := models.MoveRequest{Board: board.String(), Move: move}

	var response models.BoardResponse
	if err := c.post(ctx, "/api/moves/apply", payload, &response); err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	return othello.NewBoardFromString(response.Board)
}

// GreedyMove asks the server for the greedy move of a board.
func (c *APIClient) GreedyMove(ctx context.Context, board *othello.Board) (models.GreedyMoveResponse, error) {
	var response models.GreedyMoveResponse
	if err := c.post(ctx, "/api/moves/greedy", models.BoardRequest{Board: board.String()}, &response); err != nil {
		return models.GreedyMoveResponse{}, fmt.Errorf("failed to get greedy move: %w", err)
	}
	return response, nil
}

// CacheStats fetches the counters of the greedy move cache.
func (c *APIClient) CacheStats(ctx context.Context) (models.CacheStats, error) {
	var stats models.CacheStats
	if err := c.get(ctx, "/api/stats", &stats); err != nil {
		return models.CacheStats{}, fmt.Errorf("failed to get cache stats: %w", err)
	}
	return stats, nil
}
