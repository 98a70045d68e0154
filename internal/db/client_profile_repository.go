package db

import (
	"time"

	"github.com/sevenfit/coaching/internal/models"
	"gorm.io/gorm"
)

type ClientProfileRepository struct {
	database *gorm.DB
}

func NewClientProfileRepository(database *gorm.DB) *ClientProfileRepository {
	return &ClientProfileRepository{database: database}
}

func (repo *ClientProfileRepository) FindByUserID(userID uint) (models.ClientProfile, error) {
	var profile models.ClientProfile
	if err := repo.database.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.ClientProfile{}, err
	}
	return profile, nil
}

// PersistInitialExpiration writes a lazily computed expiration date. The guard
// on expiration_date keeps a date another writer already persisted intact.
func (repo *ClientProfileRepository) PersistInitialExpiration(userID uint, expiration time.Time) error {
	return repo.database.Model(&models.ClientProfile{}).
		Where("user_id = ? AND expiration_date IS NULL", userID).
		Update("expiration_date", expiration).Error
}

// ApplyExtension persists the extension outcome as a single write so the
// expiration date, the audit counter, and the unlock land together.
func (repo *ClientProfileRepository) ApplyExtension(userID uint, expiration time.Time, bonusDays int) error {
	return repo.database.Model(&models.ClientProfile{}).Where("user_id = ?", userID).Updates(map[string]any{
		"expiration_date": expiration,
		"bonus_days":      bonusDays,
		"access_locked":   false,
	}).Error
}

func (repo *ClientProfileRepository) SetAccessLocked(userID uint, locked bool) error {
	return repo.database.Model(&models.ClientProfile{}).
		Where("user_id = ?", userID).
		Update("access_locked", locked).Error
}

func (repo *ClientProfileRepository) UpdateContactDetails(userID uint, planName string, phone string) error {
	updates := map[string]any{}
	if planName != "" {
		updates["plan_name"] = planName
	}
	if phone != "" {
		updates["phone"] = phone
	}
	if len(updates) == 0 {
		return nil
	}
	return repo.database.Model(&models.ClientProfile{}).Where("user_id = ?", userID).Updates(updates).Error
}

func (repo *ClientProfileRepository) CompleteIntake(userID uint, completedAt time.Time) error {
	return repo.database.Model(&models.ClientProfile{}).Where("user_id = ?", userID).Updates(map[string]any{
		"intake_completed":    true,
		"intake_completed_at": completedAt,
	}).Error
}

type ClientOverviewRow struct {
	UserID          uint       `gorm:"column:user_id"`
	PublicID        string     `gorm:"column:public_id"`
	Email           string     `gorm:"column:email"`
	FullName        string     `gorm:"column:full_name"`
	PlanName        string     `gorm:"column:plan_name"`
	EntitlementDays int        `gorm:"column:entitlement_days"`
	BonusDays       int        `gorm:"column:bonus_days"`
	ExpirationDate  *time.Time `gorm:"column:expiration_date"`
	AccessLocked    bool       `gorm:"column:access_locked"`
	IntakeCompleted bool       `gorm:"column:intake_completed"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
}

func (repo *ClientProfileRepository) ListOverviews() ([]ClientOverviewRow, error) {
	rows := make([]ClientOverviewRow, 0)
	err := repo.database.
		Table("client_profiles").
		Select(`client_profiles.user_id, users.public_id, users.email, users.full_name,
			client_profiles.plan_name, client_profiles.entitlement_days, client_profiles.bonus_days,
			client_profiles.expiration_date, client_profiles.access_locked,
			client_profiles.intake_completed, client_profiles.created_at`).
		Joins("JOIN users ON users.id = client_profiles.user_id").
		Order("client_profiles.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
