package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/models"
	"github.com/sevenfit/coaching/internal/services"
)

func (handler *Handler) resolveClient(c *fiber.Ctx) (models.User, bool) {
	user, err := handler.authService.FindByPublicID(c.Params("id"))
	if err != nil || user.IsAdmin() {
		return models.User{}, false
	}
	return user, true
}

func (handler *Handler) ListClients(c *fiber.Ctx) error {
	rows, err := handler.repositories.Clients.ListOverviews()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list clients")
	}

	now := time.Now()
	clients := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		profile := models.ClientProfile{
			EntitlementDays: row.EntitlementDays,
			BonusDays:       row.BonusDays,
			ExpirationDate:  row.ExpirationDate,
			AccessLocked:    row.AccessLocked,
			IntakeCompleted: row.IntakeCompleted,
			CreatedAt:       row.CreatedAt,
		}
		entry := fiber.Map{
			"public_id":        row.PublicID,
			"email":            row.Email,
			"full_name":        row.FullName,
			"plan_name":        row.PlanName,
			"entitlement_days": row.EntitlementDays,
			"bonus_days":       row.BonusDays,
			"access_locked":    row.AccessLocked,
			"intake_completed": row.IntakeCompleted,
			"status":           services.AccountStatus(profile, now, handler.location),
			"created_at":       row.CreatedAt.Format("2006-01-02"),
		}
		if row.ExpirationDate != nil {
			entry["expiration_date"] = row.ExpirationDate.Format("2006-01-02")
		}
		clients = append(clients, entry)
	}
	return c.JSON(fiber.Map{"clients": clients})
}

type provisionInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FullName        string `json:"full_name"`
	PlanName        string `json:"plan_name"`
	EntitlementDays int    `json:"entitlement_days"`
}

func (handler *Handler) ProvisionClient(c *fiber.Ctx) error {
	var input provisionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, profile, err := handler.adminService.ProvisionClient(services.ProvisionInput{
		Email:           input.Email,
		Password:        input.Password,
		FullName:        input.FullName,
		PlanName:        input.PlanName,
		EntitlementDays: input.EntitlementDays,
	}, time.Now())
	if err != nil {
		return respondServiceError(c, err, "failed to provision client")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"public_id":        user.PublicID,
		"email":            user.Email,
		"entitlement_days": profile.EntitlementDays,
	})
}

func (handler *Handler) GetClientDetail(c *fiber.Ctx) error {
	user, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	profile, err := handler.repositories.Clients.FindByUserID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load client")
	}

	now := time.Now()
	statuses, err := handler.checkinService.StatusForClient(user.ID, profile.CreatedAt, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	submissions, err := handler.checkinService.HistoryForClient(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}

	response := fiber.Map{
		"public_id":        user.PublicID,
		"email":            user.Email,
		"full_name":        user.FullName,
		"plan_name":        profile.PlanName,
		"phone":            profile.Phone,
		"entitlement_days": profile.EntitlementDays,
		"bonus_days":       profile.BonusDays,
		"access_locked":    profile.AccessLocked,
		"intake_completed": profile.IntakeCompleted,
		"status":           services.AccountStatus(profile, now, handler.location),
		"slots":            buildSlotStatusResponses(statuses[:]),
		"progress":         services.BuildProgressSeries(submissions),
		"created_at":       profile.CreatedAt.Format("2006-01-02"),
	}
	if profile.ExpirationDate != nil {
		response["expiration_date"] = profile.ExpirationDate.Format("2006-01-02")
	}
	return c.JSON(response)
}

type extendInput struct {
	Days int `json:"days"`
}

// GrantExtension adds paid days to a client account. The extension also
// unblocks a locked account, mirroring the product rule that paying for more
// time restores access.
func (handler *Handler) GrantExtension(c *fiber.Ctx) error {
	user, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	var input extendInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	newExpiration, err := handler.accessService.GrantExtension(user.ID, input.Days, time.Now())
	if err != nil {
		return respondServiceError(c, err, "failed to extend access")
	}
	return c.JSON(fiber.Map{"expiration_date": newExpiration.Format("2006-01-02")})
}

func (handler *Handler) LockClientAccess(c *fiber.Ctx) error {
	user, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}
	if err := handler.accessService.LockAccess(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to lock access")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) UnlockClientAccess(c *fiber.Ctx) error {
	user, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}
	if err := handler.accessService.UnlockAccess(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlock access")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetClientSupportThread(c *fiber.Ctx) error {
	user, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	thread, err := handler.supportService.Thread(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load messages")
	}
	if err := handler.supportService.MarkThreadRead(user.ID, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update messages")
	}
	return c.JSON(fiber.Map{"messages": buildSupportThreadResponse(thread)})
}

func (handler *Handler) PostClientSupportReply(c *fiber.Ctx) error {
	user, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	var input supportPostInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	message, err := handler.supportService.Post(user.ID, models.SenderCoach, input.Body, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err, "failed to save message")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": message.ID})
}
