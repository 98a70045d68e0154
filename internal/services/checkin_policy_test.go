package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

func testSchedule(created time.Time) UnlockSchedule {
	return NewUnlockSchedule(created, 7, time.UTC)
}

func submission(sequence int, at time.Time) models.CheckinSubmission {
	return models.CheckinSubmission{SequenceNumber: sequence, SubmittedAt: at}
}

func TestUnlockScheduleDates(t *testing.T) {
	created := time.Date(2026, 1, 5, 18, 30, 0, 0, time.UTC)
	schedule := testSchedule(created)

	for sequence, wantOffset := range map[int]int{1: 0, 2: 7, 3: 14, 4: 21} {
		want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC).AddDate(0, 0, wantOffset)
		if got := schedule.UnlockDate(sequence); !got.Equal(want) {
			t.Fatalf("UnlockDate(%d) = %s, want %s", sequence, got, want)
		}
	}
}

func TestSlotOneFillableAtCreation(t *testing.T) {
	created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	statuses := ComputeSlotStatuses(nil, testSchedule(created), created)

	if statuses[0].State != SlotFillable {
		t.Fatalf("slot 1 state = %q, want fillable", statuses[0].State)
	}
	for slot := 1; slot < models.CheckinSlotCount; slot++ {
		if statuses[slot].State != SlotPending {
			t.Fatalf("slot %d state = %q, want pending", slot+1, statuses[slot].State)
		}
	}
}

func TestNextSlotWaitsForUnlockDateEvenWhenPreviousSubmitted(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	schedule := testSchedule(created)
	submissions := []models.CheckinSubmission{submission(1, created.AddDate(0, 0, 5))}

	day6 := created.AddDate(0, 0, 6)
	statuses := ComputeSlotStatuses(submissions, schedule, day6)
	if statuses[1].State != SlotPending {
		t.Fatalf("slot 2 on day 6 = %q, want pending", statuses[1].State)
	}

	day7 := created.AddDate(0, 0, 7)
	statuses = ComputeSlotStatuses(submissions, schedule, day7)
	if statuses[1].State != SlotFillable {
		t.Fatalf("slot 2 on day 7 = %q, want fillable", statuses[1].State)
	}
}

func TestSlotNeverFillableBeforePreviousSubmitted(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	schedule := testSchedule(created)

	// Far past every unlock date: ordering alone must hold slots back.
	farAlong := created.AddDate(0, 0, 60)
	cases := [][]models.CheckinSubmission{
		nil,
		{submission(1, created)},
		{submission(1, created), submission(2, created)},
	}

	for submittedCount, submissions := range cases {
		statuses := ComputeSlotStatuses(submissions, schedule, farAlong)
		for slot := 0; slot < models.CheckinSlotCount; slot++ {
			if slot > submittedCount && statuses[slot].State == SlotFillable {
				t.Fatalf("with %d submissions slot %d is fillable, want pending", submittedCount, slot+1)
			}
		}
		if statuses[submittedCount].State != SlotFillable {
			t.Fatalf("with %d submissions slot %d should be fillable, got %q", submittedCount, submittedCount+1, statuses[submittedCount].State)
		}
	}
}

func TestComputeSlotStatusesIsDeterministic(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	schedule := testSchedule(created)
	submissions := []models.CheckinSubmission{
		submission(1, created.AddDate(0, 0, 2)),
		submission(2, created.AddDate(0, 0, 9)),
	}
	today := created.AddDate(0, 0, 15)

	first := ComputeSlotStatuses(submissions, schedule, today)
	second := ComputeSlotStatuses(submissions, schedule, today)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical inputs")
	}
}

func TestComputeSlotStatusesIgnoresOutOfRangeSubmissions(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	submissions := []models.CheckinSubmission{
		submission(0, created),
		submission(5, created),
	}

	statuses := ComputeSlotStatuses(submissions, testSchedule(created), created)
	if statuses[0].State != SlotFillable {
		t.Fatalf("slot 1 state = %q, want fillable", statuses[0].State)
	}
}

func TestMisconfiguredPastUnlockDateIsJustFillable(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	// A zero interval collapses every unlock date onto the creation day;
	// the constructor normalizes it back to the default cadence.
	schedule := NewUnlockSchedule(created, 0, time.UTC)
	if schedule.interval != DefaultCheckinIntervalDays {
		t.Fatalf("expected default interval, got %d", schedule.interval)
	}

	// With a one-day interval all unlock dates are already in the past by
	// day 30; submitted order is still the only gate.
	oneDay := NewUnlockSchedule(created, 1, time.UTC)
	statuses := ComputeSlotStatuses([]models.CheckinSubmission{submission(1, created)}, oneDay, created.AddDate(0, 0, 30))
	if statuses[1].State != SlotFillable {
		t.Fatalf("slot 2 state = %q, want fillable", statuses[1].State)
	}
}

func TestValidateSlotSubmission(t *testing.T) {
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	schedule := testSchedule(created)
	submissions := []models.CheckinSubmission{submission(1, created.AddDate(0, 0, 1))}
	today := created.AddDate(0, 0, 8)

	if err := ValidateSlotSubmission(2, submissions, schedule, today); err != nil {
		t.Fatalf("slot 2 should be submittable, got %v", err)
	}
	if err := ValidateSlotSubmission(1, submissions, schedule, today); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted for slot 1, got %v", err)
	}
	if err := ValidateSlotSubmission(3, submissions, schedule, today); !errors.Is(err, ErrNotYetFillable) {
		t.Fatalf("expected ErrNotYetFillable for slot 3, got %v", err)
	}
	if err := ValidateSlotSubmission(0, submissions, schedule, today); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot for slot 0, got %v", err)
	}
	if err := ValidateSlotSubmission(5, submissions, schedule, today); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot for slot 5, got %v", err)
	}
}
