package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// domainRejectionStatus maps the deterministic domain outcomes onto HTTP
// statuses. Anything unmapped is an infrastructural failure.
func domainRejectionStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, services.ErrInvalidExtension), errors.Is(err, services.ErrInvalidSlot):
		return fiber.StatusBadRequest, true
	case errors.Is(err, services.ErrAlreadySubmitted), errors.Is(err, services.ErrIntakeAlreadyCompleted):
		return fiber.StatusConflict, true
	case errors.Is(err, services.ErrNotYetFillable):
		return fiber.StatusForbidden, true
	case errors.Is(err, services.ErrEmptyMessage), errors.Is(err, services.ErrWeakProvisionPassword),
		errors.Is(err, services.ErrEmptyPlan):
		return fiber.StatusBadRequest, true
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusConflict, true
	case errors.Is(err, services.ErrPlanNotFound):
		return fiber.StatusNotFound, true
	default:
		return 0, false
	}
}

func respondServiceError(c *fiber.Ctx, err error, fallbackMessage string) error {
	if status, ok := domainRejectionStatus(err); ok {
		return apiError(c, status, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, fallbackMessage)
}
