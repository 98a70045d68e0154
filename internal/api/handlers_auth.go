package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sevenfit/coaching/internal/db"
	"github.com/sevenfit/coaching/internal/models"
	"github.com/sevenfit/coaching/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	PlanName string `json:"plan_name"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	input.Email = services.NormalizeEmail(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	input.PlanName = strings.TrimSpace(input.PlanName)
	return input, nil
}

// Register is the self-service signup used by prospects arriving from the
// consultancy page. The account starts on the default plan with intake still
// pending; an administrator can adjust entitlement afterwards.
func (handler *Handler) Register(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if len(input.Password) < 8 {
		return apiError(c, fiber.StatusBadRequest, "password too short")
	}

	exists, err := handler.authService.RegistrationEmailExists(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	now := time.Now().In(handler.location)
	user := models.User{
		PublicID:     uuid.NewString(),
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleClient,
		FullName:     input.FullName,
		CreatedAt:    now,
	}
	profile := models.ClientProfile{
		PlanName:        input.PlanName,
		EntitlementDays: models.DefaultEntitlementDays,
		CreatedAt:       now,
	}
	if err := handler.authService.CreateClientAccount(&user, &profile); err != nil {
		if db.IsUniqueConstraintError(err) {
			return apiError(c, fiber.StatusConflict, "email already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"public_id": user.PublicID,
		"email":     user.Email,
		"status":    models.StatusPendingIntake,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptLimit, loginAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	user, err := handler.authService.FindByNormalizedEmail(input.Email)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	handler.loginLimiter.reset(limiterKey)

	response := fiber.Map{
		"public_id": user.PublicID,
		"role":      user.Role,
	}

	if !user.IsAdmin() {
		decision, profile, err := handler.accessService.EvaluateAccess(user.ID, now)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to evaluate access")
		}
		if !decision.Allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "access denied",
				"reason": decision.Reason,
			})
		}
		response["status"] = services.AccountStatus(profile, now, handler.location)
		if profile.ExpirationDate != nil {
			response["expiration_date"] = profile.ExpirationDate.Format("2006-01-02")
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(response)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	response := fiber.Map{
		"public_id": user.PublicID,
		"email":     user.Email,
		"full_name": user.FullName,
		"role":      user.Role,
	}
	if user.IsAdmin() {
		return c.JSON(response)
	}

	profile, err := handler.repositories.Clients.FindByUserID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	response["status"] = services.AccountStatus(profile, time.Now(), handler.location)
	response["plan_name"] = profile.PlanName
	response["entitlement_days"] = profile.EntitlementDays
	response["bonus_days"] = profile.BonusDays
	if profile.ExpirationDate != nil {
		response["expiration_date"] = profile.ExpirationDate.Format("2006-01-02")
	}
	return c.JSON(response)
}
