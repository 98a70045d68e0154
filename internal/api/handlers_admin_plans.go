package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sevenfit/coaching/internal/models"
	"github.com/sevenfit/coaching/internal/services"
)

type dietPlanInput struct {
	Hydration  string `json:"hydration"`
	MealWake   string `json:"meal_wake"`
	MealLunch  string `json:"meal_lunch"`
	MealSnack  string `json:"meal_snack"`
	MealDinner string `json:"meal_dinner"`
}

func (handler *Handler) ListClientDiets(c *fiber.Ctx) error {
	client, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	plans, err := handler.planService.DietsFor(client.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load diets")
	}
	return c.JSON(fiber.Map{"diets": buildDietPlanResponses(plans)})
}

func (handler *Handler) SendClientDiet(c *fiber.Ctx) error {
	admin, _ := currentUser(c)
	client, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	var input dietPlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	plan, err := handler.planService.SendDiet(client.ID, admin.ID, services.DietInput{
		Hydration:  input.Hydration,
		MealWake:   input.MealWake,
		MealLunch:  input.MealLunch,
		MealSnack:  input.MealSnack,
		MealDinner: input.MealDinner,
	}, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err, "failed to save diet")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": plan.ID})
}

func (handler *Handler) DeleteClientDiet(c *fiber.Ctx) error {
	client, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	planID, err := c.ParamsInt("planID")
	if err != nil || planID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	if err := handler.planService.RemoveDiet(client.ID, uint(planID)); err != nil {
		return respondServiceError(c, err, "failed to delete diet")
	}
	return c.JSON(fiber.Map{"ok": true})
}

type trainingPlanInput struct {
	RepetitionNotes  string              `json:"repetition_notes"`
	SetNotes         string              `json:"set_notes"`
	RestNotes        string              `json:"rest_notes"`
	ProgressionNotes string              `json:"progression_notes"`
	Workouts         []models.WorkoutDay `json:"workouts"`
}

func (handler *Handler) ListClientTrainings(c *fiber.Ctx) error {
	client, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	plans, err := handler.planService.TrainingsFor(client.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load training plans")
	}
	return c.JSON(fiber.Map{"trainings": buildTrainingPlanResponses(plans)})
}

func (handler *Handler) SendClientTraining(c *fiber.Ctx) error {
	admin, _ := currentUser(c)
	client, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	var input trainingPlanInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	plan, err := handler.planService.SendTraining(client.ID, admin.ID, services.TrainingInput{
		RepetitionNotes:  input.RepetitionNotes,
		SetNotes:         input.SetNotes,
		RestNotes:        input.RestNotes,
		ProgressionNotes: input.ProgressionNotes,
		Workouts:         input.Workouts,
	}, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err, "failed to save training plan")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": plan.ID})
}

func (handler *Handler) DeleteClientTraining(c *fiber.Ctx) error {
	client, ok := handler.resolveClient(c)
	if !ok {
		return apiError(c, fiber.StatusNotFound, "client not found")
	}

	planID, err := c.ParamsInt("planID")
	if err != nil || planID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid plan id")
	}

	if err := handler.planService.RemoveTraining(client.ID, uint(planID)); err != nil {
		return respondServiceError(c, err, "failed to delete training plan")
	}
	return c.JSON(fiber.Map{"ok": true})
}
