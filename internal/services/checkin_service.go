package services

import (
	"errors"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

var (
	ErrInvalidSlot          = errors.New("check-in slot number out of range")
	ErrAlreadySubmitted     = errors.New("check-in already submitted for this slot")
	ErrNotYetFillable       = errors.New("check-in slot is not fillable yet")
	ErrCheckinLoadFailed    = errors.New("load check-ins failed")
	ErrCheckinPersistFailed = errors.New("persist check-in failed")
)

type CheckinSubmissionRepository interface {
	ListByUser(userID uint) ([]models.CheckinSubmission, error)
	Create(submission *models.CheckinSubmission) error
}

type CheckinUniqueViolationClassifier func(err error) bool

type CheckinService struct {
	checkins     CheckinSubmissionRepository
	isDuplicate  CheckinUniqueViolationClassifier
	intervalDays int
	location     *time.Location
}

func NewCheckinService(checkins CheckinSubmissionRepository, isDuplicate CheckinUniqueViolationClassifier, intervalDays int, location *time.Location) *CheckinService {
	if intervalDays <= 0 {
		intervalDays = DefaultCheckinIntervalDays
	}
	if location == nil {
		location = time.UTC
	}
	if isDuplicate == nil {
		isDuplicate = func(error) bool { return false }
	}
	return &CheckinService{
		checkins:     checkins,
		isDuplicate:  isDuplicate,
		intervalDays: intervalDays,
		location:     location,
	}
}

func (service *CheckinService) ScheduleFor(accountCreatedAt time.Time) UnlockSchedule {
	return NewUnlockSchedule(accountCreatedAt, service.intervalDays, service.location)
}

func (service *CheckinService) StatusForClient(userID uint, accountCreatedAt time.Time, now time.Time) ([models.CheckinSlotCount]SlotStatus, error) {
	submissions, err := service.checkins.ListByUser(userID)
	if err != nil {
		return [models.CheckinSlotCount]SlotStatus{}, ErrCheckinLoadFailed
	}
	return ComputeSlotStatuses(submissions, service.ScheduleFor(accountCreatedAt), now), nil
}

type CheckinInput struct {
	Hydration          string
	SleepHours         string
	TrainingDays       map[string]string
	CompletedExercises []string
	Weight             *float64
	Reflection         string
}

// Submit re-validates the slot at persist time and then inserts. A uniqueness
// violation from the store means another submission won the race and is
// reported as ErrAlreadySubmitted, exactly like the pre-check outcome.
func (service *CheckinService) Submit(userID uint, accountCreatedAt time.Time, sequenceNumber int, input CheckinInput, now time.Time) (models.CheckinSubmission, error) {
	submissions, err := service.checkins.ListByUser(userID)
	if err != nil {
		return models.CheckinSubmission{}, ErrCheckinLoadFailed
	}

	schedule := service.ScheduleFor(accountCreatedAt)
	if err := ValidateSlotSubmission(sequenceNumber, submissions, schedule, now); err != nil {
		return models.CheckinSubmission{}, err
	}

	submission := models.CheckinSubmission{
		UserID:             userID,
		SequenceNumber:     sequenceNumber,
		Hydration:          input.Hydration,
		SleepHours:         input.SleepHours,
		TrainingDays:       input.TrainingDays,
		CompletedExercises: input.CompletedExercises,
		Weight:             input.Weight,
		Reflection:         input.Reflection,
		SubmittedAt:        now,
	}
	if err := service.checkins.Create(&submission); err != nil {
		if service.isDuplicate(err) {
			return models.CheckinSubmission{}, ErrAlreadySubmitted
		}
		return models.CheckinSubmission{}, ErrCheckinPersistFailed
	}
	return submission, nil
}

func (service *CheckinService) HistoryForClient(userID uint) ([]models.CheckinSubmission, error) {
	submissions, err := service.checkins.ListByUser(userID)
	if err != nil {
		return nil, ErrCheckinLoadFailed
	}
	return submissions, nil
}
