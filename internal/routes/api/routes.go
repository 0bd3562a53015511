package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/greedy/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Board routes
	apiGroup.Post("/board", DescribeBoard)

	// Move routes
	apiGroup.Post("/moves/validate", ValidateMove)
	apiGroup.Post("/moves/apply", ApplyMove)
	apiGroup.Post("/moves/greedy", GreedyMove)

	// Cache routes
	apiGroup.Get("/stats", GetCacheStats)
}
