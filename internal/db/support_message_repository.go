package db

import (
	"github.com/sevenfit/coaching/internal/models"
	"gorm.io/gorm"
)

type SupportMessageRepository struct {
	database *gorm.DB
}

func NewSupportMessageRepository(database *gorm.DB) *SupportMessageRepository {
	return &SupportMessageRepository{database: database}
}

func (repo *SupportMessageRepository) ListByUser(userID uint) ([]models.SupportMessage, error) {
	messages := make([]models.SupportMessage, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *SupportMessageRepository) Create(message *models.SupportMessage) error {
	return repo.database.Create(message).Error
}

func (repo *SupportMessageRepository) CountUnreadFromSender(userID uint, sender string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SupportMessage{}).
		Where("user_id = ? AND sender = ? AND read = ?", userID, sender, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *SupportMessageRepository) MarkReadFromSender(userID uint, sender string) error {
	return repo.database.Model(&models.SupportMessage{}).
		Where("user_id = ? AND sender = ?", userID, sender).
		Update("read", true).Error
}
