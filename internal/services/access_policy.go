package services

import (
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

// Access denial reasons. A locked account wins over an unexpired date.
const (
	AccessDeniedBlocked = "blocked"
	AccessDeniedExpired = "expired"

	// AccessReasonIntake is not a lifecycle denial; it tags responses that
	// fence a client onto the intake form.
	AccessReasonIntake = "intake_required"
)

type AccessDecision struct {
	Allowed bool
	Reason  string
}

// ExpirationFrom derives the expiration day from the account's creation
// instant and its entitlement plus any extensions already granted. A zero
// creation time falls back to now, which covers brand-new rows evaluated
// before their timestamps round-trip through the store.
func ExpirationFrom(createdAt time.Time, entitlementDays int, bonusDays int, now time.Time, location *time.Location) time.Time {
	base := createdAt
	if base.IsZero() {
		base = now
	}
	return DateAtLocation(base, location).AddDate(0, 0, entitlementDays+bonusDays)
}

// DecideAccess applies the lifecycle rules to a snapshot: a lock always
// denies, and the expiration day itself still grants access.
func DecideAccess(accessLocked bool, expiration time.Time, now time.Time, location *time.Location) AccessDecision {
	if accessLocked {
		return AccessDecision{Allowed: false, Reason: AccessDeniedBlocked}
	}
	today := DateAtLocation(now, location)
	if today.After(DateAtLocation(expiration, location)) {
		return AccessDecision{Allowed: false, Reason: AccessDeniedExpired}
	}
	return AccessDecision{Allowed: true}
}

// AccountStatus collapses the profile flags into one lifecycle state.
func AccountStatus(profile models.ClientProfile, now time.Time, location *time.Location) string {
	if profile.AccessLocked {
		return models.StatusBlocked
	}
	if profile.ExpirationDate != nil {
		today := DateAtLocation(now, location)
		if today.After(DateAtLocation(*profile.ExpirationDate, location)) {
			return models.StatusExpired
		}
	}
	if !profile.IntakeCompleted {
		return models.StatusPendingIntake
	}
	return models.StatusActive
}
