package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type intakeInput struct {
	PlanName string `json:"plan_name"`
	Phone    string `json:"phone"`
}

// CompleteIntake marks the multi-step intake form as finished. The payload of
// the questionnaire itself lives with the form frontend; this endpoint records
// the contact details and flips the lifecycle state to active.
func (handler *Handler) CompleteIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var input intakeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	plan := strings.TrimSpace(input.PlanName)
	phone := strings.TrimSpace(input.Phone)
	if err := handler.repositories.Clients.UpdateContactDetails(user.ID, plan, phone); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save intake")
	}

	if err := handler.intakeService.CompleteIntake(user.ID, time.Now().In(handler.location)); err != nil {
		return respondServiceError(c, err, "failed to save intake")
	}
	return c.JSON(fiber.Map{"ok": true})
}
