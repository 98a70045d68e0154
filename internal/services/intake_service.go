package services

import (
	"errors"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

var (
	ErrIntakeAlreadyCompleted = errors.New("intake already completed")
	ErrIntakePersistFailed    = errors.New("persist intake failed")
)

type IntakeProfileRepository interface {
	FindByUserID(userID uint) (models.ClientProfile, error)
	CompleteIntake(userID uint, completedAt time.Time) error
}

type IntakeService struct {
	profiles IntakeProfileRepository
}

func NewIntakeService(profiles IntakeProfileRepository) *IntakeService {
	return &IntakeService{profiles: profiles}
}

// CompleteIntake marks the client's intake form as finished. Completing twice
// is rejected so the completion timestamp stays the first one.
func (service *IntakeService) CompleteIntake(userID uint, now time.Time) error {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return ErrAccessLookupFailed
	}
	if profile.IntakeCompleted {
		return ErrIntakeAlreadyCompleted
	}
	if err := service.profiles.CompleteIntake(userID, now); err != nil {
		return ErrIntakePersistFailed
	}
	return nil
}
