package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/models"
)

const (
	authCookieName    = "sevenfit_auth"
	contextUserKey    = "current_user"
	contextProfileKey = "current_profile"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentProfile(c *fiber.Ctx) (*models.ClientProfile, bool) {
	profile, ok := c.Locals(contextProfileKey).(*models.ClientProfile)
	return profile, ok
}
