package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/services"
)

type slotStatusResponse struct {
	SequenceNumber int    `json:"sequence_number"`
	State          string `json:"state"`
	UnlockDate     string `json:"unlock_date"`
	SubmittedAt    string `json:"submitted_at,omitempty"`
}

func buildSlotStatusResponses(statuses []services.SlotStatus) []slotStatusResponse {
	responses := make([]slotStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		response := slotStatusResponse{
			SequenceNumber: status.SequenceNumber,
			State:          string(status.State),
			UnlockDate:     status.UnlockDate.Format("2006-01-02"),
		}
		if status.SubmittedAt != nil {
			response.SubmittedAt = status.SubmittedAt.Format(time.RFC3339)
		}
		responses = append(responses, response)
	}
	return responses
}

// GetCheckinStatus reports which of the client's four weekly check-in forms
// are submitted, fillable, or still pending.
func (handler *Handler) GetCheckinStatus(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	profile, ok := currentProfile(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	statuses, err := handler.checkinService.StatusForClient(user.ID, profile.CreatedAt, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load check-ins")
	}
	return c.JSON(fiber.Map{"slots": buildSlotStatusResponses(statuses[:])})
}

type checkinSubmitInput struct {
	Hydration          string            `json:"hydration"`
	SleepHours         string            `json:"sleep_hours"`
	TrainingDays       map[string]string `json:"training_days"`
	CompletedExercises []string          `json:"completed_exercises"`
	Weight             *float64          `json:"weight"`
	Reflection         string            `json:"reflection"`
}

func (handler *Handler) SubmitCheckin(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	profile, ok := currentProfile(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	sequenceNumber, err := c.ParamsInt("sequence")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid slot number")
	}

	var input checkinSubmitInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	submission, err := handler.checkinService.Submit(user.ID, profile.CreatedAt, sequenceNumber, services.CheckinInput{
		Hydration:          input.Hydration,
		SleepHours:         input.SleepHours,
		TrainingDays:       input.TrainingDays,
		CompletedExercises: input.CompletedExercises,
		Weight:             input.Weight,
		Reflection:         input.Reflection,
	}, time.Now())
	if err != nil {
		return respondServiceError(c, err, "failed to save check-in")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"sequence_number": submission.SequenceNumber,
		"submitted_at":    submission.SubmittedAt.Format(time.RFC3339),
	})
}
