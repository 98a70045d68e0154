package db

import (
	"github.com/sevenfit/coaching/internal/models"
	"gorm.io/gorm"
)

type CheckinRepository struct {
	database *gorm.DB
}

func NewCheckinRepository(database *gorm.DB) *CheckinRepository {
	return &CheckinRepository{database: database}
}

func (repo *CheckinRepository) ListByUser(userID uint) ([]models.CheckinSubmission, error) {
	submissions := make([]models.CheckinSubmission, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("sequence_number ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (repo *CheckinRepository) Create(submission *models.CheckinSubmission) error {
	return repo.database.Create(submission).Error
}
