package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/greedy/internal/models"
	"github.com/lk16/flippy/greedy/internal/repository"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// DescribeBoard returns turn, score, legal moves and status of a board.
func DescribeBoard(c *fiber.Ctx) error {
	var payload models.BoardRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	board, err := payload.ParseBoard()
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(models.NewBoardResponse(board))
}

// ValidateMove checks whether a move is legal for the side to move.
func ValidateMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	board, err := payload.ParseBoard()
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(models.NewValidateResponse(board, payload.Move))
}

// ApplyMove plays a move and returns the resulting board.
func ApplyMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	board, err := payload.Apply()
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(models.NewBoardResponse(board))
}

// GreedyMove returns the move that flips the most discs for the side to move.
func GreedyMove(c *fiber.Ctx) error {
	var payload models.BoardRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}

	board, err := payload.ParseBoard()
	if err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.NewMoveRepository(c)
	response, err := repo.GreedyMove(c.Context(), board)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetCacheStats returns the counters of the greedy move cache.
func GetCacheStats(c *fiber.Ctx) error {
	repo := repository.NewMoveRepository(c)
	stats, err := repo.GetCacheStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

