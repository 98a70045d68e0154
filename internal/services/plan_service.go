package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

var (
	ErrEmptyPlan         = errors.New("plan has no content")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanLoadFailed    = errors.New("load plans failed")
	ErrPlanPersistFailed = errors.New("persist plan failed")
)

type PlanRepository interface {
	ListDietPlansByUser(userID uint) ([]models.DietPlan, error)
	CreateDietPlan(plan *models.DietPlan) error
	DeleteDietPlan(userID uint, planID uint) (int64, error)
	ListTrainingPlansByUser(userID uint) ([]models.TrainingPlan, error)
	CreateTrainingPlan(plan *models.TrainingPlan) error
	DeleteTrainingPlan(userID uint, planID uint) (int64, error)
}

// PlanService delivers coach-authored diet and training plans to clients.
// Plans are write-once rows; revising one means sending a replacement and
// deleting the old row.
type PlanService struct {
	plans PlanRepository
}

func NewPlanService(plans PlanRepository) *PlanService {
	return &PlanService{plans: plans}
}

type DietInput struct {
	Hydration  string
	MealWake   string
	MealLunch  string
	MealSnack  string
	MealDinner string
}

func (service *PlanService) SendDiet(userID uint, sentBy uint, input DietInput, now time.Time) (models.DietPlan, error) {
	plan := models.DietPlan{
		UserID:     userID,
		SentByID:   sentBy,
		Hydration:  strings.TrimSpace(input.Hydration),
		MealWake:   strings.TrimSpace(input.MealWake),
		MealLunch:  strings.TrimSpace(input.MealLunch),
		MealSnack:  strings.TrimSpace(input.MealSnack),
		MealDinner: strings.TrimSpace(input.MealDinner),
		SentAt:     now,
	}
	if plan.Hydration == "" && plan.MealWake == "" && plan.MealLunch == "" &&
		plan.MealSnack == "" && plan.MealDinner == "" {
		return models.DietPlan{}, ErrEmptyPlan
	}
	if err := service.plans.CreateDietPlan(&plan); err != nil {
		return models.DietPlan{}, ErrPlanPersistFailed
	}
	return plan, nil
}

func (service *PlanService) DietsFor(userID uint) ([]models.DietPlan, error) {
	plans, err := service.plans.ListDietPlansByUser(userID)
	if err != nil {
		return nil, ErrPlanLoadFailed
	}
	return plans, nil
}

func (service *PlanService) RemoveDiet(userID uint, planID uint) error {
	removed, err := service.plans.DeleteDietPlan(userID, planID)
	if err != nil {
		return ErrPlanPersistFailed
	}
	if removed == 0 {
		return ErrPlanNotFound
	}
	return nil
}

type TrainingInput struct {
	RepetitionNotes  string
	SetNotes         string
	RestNotes        string
	ProgressionNotes string
	Workouts         []models.WorkoutDay
}

func (service *PlanService) SendTraining(userID uint, sentBy uint, input TrainingInput, now time.Time) (models.TrainingPlan, error) {
	plan := models.TrainingPlan{
		UserID:           userID,
		SentByID:         sentBy,
		RepetitionNotes:  strings.TrimSpace(input.RepetitionNotes),
		SetNotes:         strings.TrimSpace(input.SetNotes),
		RestNotes:        strings.TrimSpace(input.RestNotes),
		ProgressionNotes: strings.TrimSpace(input.ProgressionNotes),
		Workouts:         pruneEmptyWorkouts(input.Workouts),
		SentAt:           now,
	}
	if plan.RepetitionNotes == "" && plan.SetNotes == "" && plan.RestNotes == "" &&
		plan.ProgressionNotes == "" && len(plan.Workouts) == 0 {
		return models.TrainingPlan{}, ErrEmptyPlan
	}
	if err := service.plans.CreateTrainingPlan(&plan); err != nil {
		return models.TrainingPlan{}, ErrPlanPersistFailed
	}
	return plan, nil
}

func (service *PlanService) TrainingsFor(userID uint) ([]models.TrainingPlan, error) {
	plans, err := service.plans.ListTrainingPlansByUser(userID)
	if err != nil {
		return nil, ErrPlanLoadFailed
	}
	return plans, nil
}

func (service *PlanService) RemoveTraining(userID uint, planID uint) error {
	removed, err := service.plans.DeleteTrainingPlan(userID, planID)
	if err != nil {
		return ErrPlanPersistFailed
	}
	if removed == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// pruneEmptyWorkouts drops day blocks the author left completely blank, the
// same way the admin form only submits filled-in days.
func pruneEmptyWorkouts(workouts []models.WorkoutDay) []models.WorkoutDay {
	kept := make([]models.WorkoutDay, 0, len(workouts))
	for _, workout := range workouts {
		if strings.TrimSpace(workout.DayLabel) == "" &&
			strings.TrimSpace(workout.Focus) == "" &&
			len(workout.Exercises) == 0 {
			continue
		}
		kept = append(kept, workout)
	}
	return kept
}
