package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/services"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin only"})
	}
	return c.Next()
}

// ClientAccessRequired gates the client dashboard APIs. Every request
// re-evaluates the access lifecycle so a lock or an expiry applied since login
// terminates the session immediately. Clients that never finished intake are
// fenced onto the intake endpoints.
func (handler *Handler) ClientAccessRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	if user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "client only"})
	}

	decision, profile, err := handler.accessService.EvaluateAccess(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate access")
	}
	if !decision.Allowed {
		handler.clearAuthCookie(c)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  "access denied",
			"reason": decision.Reason,
		})
	}

	if !profile.IntakeCompleted && !isIntakePath(c.Path()) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":  "intake required",
			"reason": services.AccessReasonIntake,
		})
	}

	c.Locals(contextProfileKey, &profile)
	return c.Next()
}

func isIntakePath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == "/api/intake" || strings.HasPrefix(cleanPath, "/api/intake/")
}
