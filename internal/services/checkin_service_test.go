package services

import (
	"errors"
	"testing"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

type stubCheckinRepo struct {
	submissions []models.CheckinSubmission
	listErr     error
	createErr   error
	created     *models.CheckinSubmission
}

func (stub *stubCheckinRepo) ListByUser(uint) ([]models.CheckinSubmission, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return stub.submissions, nil
}

func (stub *stubCheckinRepo) Create(submission *models.CheckinSubmission) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.created = submission
	return nil
}

func TestSubmitRecordsFillableSlot(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	repo := &stubCheckinRepo{}
	service := NewCheckinService(repo, nil, 7, time.UTC)

	now := created.AddDate(0, 0, 1)
	weight := 82.5
	submission, err := service.Submit(1, created, 1, CheckinInput{
		Hydration:  "3L",
		SleepHours: "7h",
		Weight:     &weight,
	}, now)
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if submission.SequenceNumber != 1 || !submission.SubmittedAt.Equal(now) {
		t.Fatalf("unexpected submission %+v", submission)
	}
	if repo.created == nil {
		t.Fatal("expected submission to be persisted")
	}
}

func TestSubmitRejectsDuplicateSlotRegardlessOfPayload(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	repo := &stubCheckinRepo{
		submissions: []models.CheckinSubmission{{SequenceNumber: 1, SubmittedAt: created}},
	}
	service := NewCheckinService(repo, nil, 7, time.UTC)

	_, err := service.Submit(1, created, 1, CheckinInput{Hydration: "2L"}, created.AddDate(0, 0, 3))
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestSubmitRejectsLockedSlot(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	service := NewCheckinService(&stubCheckinRepo{}, nil, 7, time.UTC)

	_, err := service.Submit(1, created, 2, CheckinInput{}, created.AddDate(0, 0, 10))
	if !errors.Is(err, ErrNotYetFillable) {
		t.Fatalf("expected ErrNotYetFillable, got %v", err)
	}
}

func TestSubmitMapsStoreUniqueViolationToAlreadySubmitted(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	duplicateErr := errors.New("UNIQUE constraint failed: checkin_submissions.user_id")
	repo := &stubCheckinRepo{createErr: duplicateErr}
	service := NewCheckinService(repo, func(err error) bool {
		return errors.Is(err, duplicateErr)
	}, 7, time.UTC)

	_, err := service.Submit(1, created, 1, CheckinInput{}, created)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected racing duplicate to surface as ErrAlreadySubmitted, got %v", err)
	}
}

func TestSubmitSurfacesOtherPersistenceFailures(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	repo := &stubCheckinRepo{createErr: errors.New("disk full")}
	service := NewCheckinService(repo, func(error) bool { return false }, 7, time.UTC)

	_, err := service.Submit(1, created, 1, CheckinInput{}, created)
	if !errors.Is(err, ErrCheckinPersistFailed) {
		t.Fatalf("expected ErrCheckinPersistFailed, got %v", err)
	}
}
