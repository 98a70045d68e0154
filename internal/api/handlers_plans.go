package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/models"
)

type dietPlanResponse struct {
	ID         uint   `json:"id"`
	Hydration  string `json:"hydration,omitempty"`
	MealWake   string `json:"meal_wake,omitempty"`
	MealLunch  string `json:"meal_lunch,omitempty"`
	MealSnack  string `json:"meal_snack,omitempty"`
	MealDinner string `json:"meal_dinner,omitempty"`
	SentAt     string `json:"sent_at"`
}

func buildDietPlanResponses(plans []models.DietPlan) []dietPlanResponse {
	responses := make([]dietPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, dietPlanResponse{
			ID:         plan.ID,
			Hydration:  plan.Hydration,
			MealWake:   plan.MealWake,
			MealLunch:  plan.MealLunch,
			MealSnack:  plan.MealSnack,
			MealDinner: plan.MealDinner,
			SentAt:     plan.SentAt.Format(time.RFC3339),
		})
	}
	return responses
}

type trainingPlanResponse struct {
	ID               uint                `json:"id"`
	RepetitionNotes  string              `json:"repetition_notes,omitempty"`
	SetNotes         string              `json:"set_notes,omitempty"`
	RestNotes        string              `json:"rest_notes,omitempty"`
	ProgressionNotes string              `json:"progression_notes,omitempty"`
	Workouts         []models.WorkoutDay `json:"workouts"`
	SentAt           string              `json:"sent_at"`
}

func buildTrainingPlanResponses(plans []models.TrainingPlan) []trainingPlanResponse {
	responses := make([]trainingPlanResponse, 0, len(plans))
	for _, plan := range plans {
		workouts := plan.Workouts
		if workouts == nil {
			workouts = []models.WorkoutDay{}
		}
		responses = append(responses, trainingPlanResponse{
			ID:               plan.ID,
			RepetitionNotes:  plan.RepetitionNotes,
			SetNotes:         plan.SetNotes,
			RestNotes:        plan.RestNotes,
			ProgressionNotes: plan.ProgressionNotes,
			Workouts:         workouts,
			SentAt:           plan.SentAt.Format(time.RFC3339),
		})
	}
	return responses
}

// GetDietPlans returns the diets the coach has sent, newest first.
func (handler *Handler) GetDietPlans(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	plans, err := handler.planService.DietsFor(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load diets")
	}
	return c.JSON(fiber.Map{"diets": buildDietPlanResponses(plans)})
}

// GetTrainingPlans returns the training plans the coach has sent, newest
// first.
func (handler *Handler) GetTrainingPlans(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	plans, err := handler.planService.TrainingsFor(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load training plans")
	}
	return c.JSON(fiber.Map{"trainings": buildTrainingPlanResponses(plans)})
}
