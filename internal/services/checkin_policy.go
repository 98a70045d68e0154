package services

import (
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

const DefaultCheckinIntervalDays = 7

type SlotState string

const (
	SlotSubmitted SlotState = "submitted"
	SlotFillable  SlotState = "fillable"
	SlotPending   SlotState = "pending"
)

type SlotStatus struct {
	SequenceNumber int
	State          SlotState
	UnlockDate     time.Time
	SubmittedAt    *time.Time
}

// UnlockSchedule anchors the four check-in slots to the account's creation
// day. Slot 1 unlocks immediately; each later slot unlocks a fixed number of
// days after the previous one. The interval is configuration, not a constant.
type UnlockSchedule struct {
	anchor   time.Time
	interval int
	location *time.Location
}

func NewUnlockSchedule(accountCreatedAt time.Time, intervalDays int, location *time.Location) UnlockSchedule {
	if intervalDays <= 0 {
		intervalDays = DefaultCheckinIntervalDays
	}
	if location == nil {
		location = time.UTC
	}
	return UnlockSchedule{
		anchor:   DateAtLocation(accountCreatedAt, location),
		interval: intervalDays,
		location: location,
	}
}

func (schedule UnlockSchedule) UnlockDate(sequenceNumber int) time.Time {
	return schedule.anchor.AddDate(0, 0, (sequenceNumber-1)*schedule.interval)
}

// ComputeSlotStatuses derives the state of every slot from the submissions on
// record. Pure in its inputs: no clock reads, no store access. A slot is
// fillable only when it has no submission, its unlock date has arrived, and
// every earlier slot is already submitted. An unlock date in the past does not
// get special treatment; the plain today-vs-unlock comparison covers it.
func ComputeSlotStatuses(submissions []models.CheckinSubmission, schedule UnlockSchedule, today time.Time) [models.CheckinSlotCount]SlotStatus {
	submittedAt := make(map[int]time.Time, len(submissions))
	for _, submission := range submissions {
		if submission.SequenceNumber < 1 || submission.SequenceNumber > models.CheckinSlotCount {
			continue
		}
		submittedAt[submission.SequenceNumber] = submission.SubmittedAt
	}

	day := DateAtLocation(today, schedule.location)
	var statuses [models.CheckinSlotCount]SlotStatus
	previousSubmitted := true
	for sequence := 1; sequence <= models.CheckinSlotCount; sequence++ {
		status := SlotStatus{
			SequenceNumber: sequence,
			UnlockDate:     schedule.UnlockDate(sequence),
		}

		if at, ok := submittedAt[sequence]; ok {
			moment := at
			status.State = SlotSubmitted
			status.SubmittedAt = &moment
		} else if previousSubmitted && !day.Before(status.UnlockDate) {
			status.State = SlotFillable
		} else {
			status.State = SlotPending
		}

		statuses[sequence-1] = status
		_, previousSubmitted = submittedAt[sequence]
	}
	return statuses
}

// ValidateSlotSubmission is the best-effort pre-check before persisting a
// submission. The store's uniqueness constraint remains the authoritative
// guard against racing duplicates.
func ValidateSlotSubmission(sequenceNumber int, submissions []models.CheckinSubmission, schedule UnlockSchedule, today time.Time) error {
	if sequenceNumber < 1 || sequenceNumber > models.CheckinSlotCount {
		return ErrInvalidSlot
	}
	statuses := ComputeSlotStatuses(submissions, schedule, today)
	switch statuses[sequenceNumber-1].State {
	case SlotSubmitted:
		return ErrAlreadySubmitted
	case SlotFillable:
		return nil
	default:
		return ErrNotYetFillable
	}
}
