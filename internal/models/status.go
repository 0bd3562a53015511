package models

import (
	"fmt"

	"github.com/lk16/flippy/greedy/internal/othello"
)

// Status returns a one-line summary of the board for display, such as "Dark's turn".
// Set thinking while the automated side is about to reply.
func Status(board *othello.Board, thinking bool) string {
	if board.IsGameOver() {
		dark, light := board.Score()

		result := "Draw!"
		if winner, _ := board.Winner(); winner != othello.Empty {
			result = winner.String() + " wins!"
		}

		return fmt.Sprintf("Game Over! %s Score: Dark %d - Light %d", result, dark, light)
	}

	status := board.Turn().String() + "'s turn"
	if thinking {
		status += " (thinking...)"
	}
	return status
}
