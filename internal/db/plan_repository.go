package db

import (
	"github.com/sevenfit/coaching/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) ListDietPlansByUser(userID uint) ([]models.DietPlan, error) {
	plans := make([]models.DietPlan, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("sent_at DESC, id DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *PlanRepository) CreateDietPlan(plan *models.DietPlan) error {
	return repo.database.Create(plan).Error
}

// DeleteDietPlan removes one plan scoped to its owner and reports how many
// rows matched, so callers can tell a miss from a removal.
func (repo *PlanRepository) DeleteDietPlan(userID uint, planID uint) (int64, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.DietPlan{})
	return result.RowsAffected, result.Error
}

func (repo *PlanRepository) ListTrainingPlansByUser(userID uint) ([]models.TrainingPlan, error) {
	plans := make([]models.TrainingPlan, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("sent_at DESC, id DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *PlanRepository) CreateTrainingPlan(plan *models.TrainingPlan) error {
	return repo.database.Create(plan).Error
}

func (repo *PlanRepository) DeleteTrainingPlan(userID uint, planID uint) (int64, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.TrainingPlan{})
	return result.RowsAffected, result.Error
}
