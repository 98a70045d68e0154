package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/services"
)

// GetProgress returns the chart-ready series built from the client's
// submitted check-ins.
func (handler *Handler) GetProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	submissions, err := handler.checkinService.HistoryForClient(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load progress")
	}
	return c.JSON(fiber.Map{"points": services.BuildProgressSeries(submissions)})
}
