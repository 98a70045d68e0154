package services

import (
	"errors"
	"time"

	"github.com/sevenfit/coaching/internal/models"
)

var (
	ErrInvalidExtension    = errors.New("extension days must be positive")
	ErrAccessLookupFailed  = errors.New("load client profile failed")
	ErrAccessPersistFailed = errors.New("persist client access failed")
)

type AccessProfileRepository interface {
	FindByUserID(userID uint) (models.ClientProfile, error)
	PersistInitialExpiration(userID uint, expiration time.Time) error
	ApplyExtension(userID uint, expiration time.Time, bonusDays int) error
	SetAccessLocked(userID uint, locked bool) error
}

type AccessService struct {
	profiles AccessProfileRepository
	location *time.Location
}

func NewAccessService(profiles AccessProfileRepository, location *time.Location) *AccessService {
	if location == nil {
		location = time.UTC
	}
	return &AccessService{profiles: profiles, location: location}
}

// EvaluateAccess decides whether a client may log in right now. A locked
// account is denied before anything else happens, and its evaluation writes
// nothing. Otherwise the first evaluation of an account computes and persists
// its expiration date; after that the persisted date is authoritative and is
// never recomputed, so extensions an administrator already applied cannot be
// double counted.
func (service *AccessService) EvaluateAccess(userID uint, now time.Time) (AccessDecision, models.ClientProfile, error) {
	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return AccessDecision{}, models.ClientProfile{}, ErrAccessLookupFailed
	}

	if profile.AccessLocked {
		return AccessDecision{Allowed: false, Reason: AccessDeniedBlocked}, profile, nil
	}

	if profile.ExpirationDate == nil {
		expiration := ExpirationFrom(profile.CreatedAt, profile.EntitlementDays, profile.BonusDays, now, service.location)
		if err := service.profiles.PersistInitialExpiration(userID, expiration); err != nil {
			return AccessDecision{}, models.ClientProfile{}, ErrAccessPersistFailed
		}
		profile.ExpirationDate = &expiration
	}

	return DecideAccess(profile.AccessLocked, *profile.ExpirationDate, now, service.location), profile, nil
}

// GrantExtension advances the expiration date by extraDays and implicitly
// unblocks the account. BonusDays is bumped for display only; once an
// expiration date exists it is advanced directly, never re-derived.
func (service *AccessService) GrantExtension(userID uint, extraDays int, now time.Time) (time.Time, error) {
	if extraDays <= 0 {
		return time.Time{}, ErrInvalidExtension
	}

	profile, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return time.Time{}, ErrAccessLookupFailed
	}

	base := profile.ExpirationDate
	if base == nil {
		computed := ExpirationFrom(profile.CreatedAt, profile.EntitlementDays, profile.BonusDays, now, service.location)
		base = &computed
	}

	newExpiration := DateAtLocation(*base, service.location).AddDate(0, 0, extraDays)
	if err := service.profiles.ApplyExtension(userID, newExpiration, profile.BonusDays+extraDays); err != nil {
		return time.Time{}, ErrAccessPersistFailed
	}
	return newExpiration, nil
}

func (service *AccessService) LockAccess(userID uint) error {
	if err := service.profiles.SetAccessLocked(userID, true); err != nil {
		return ErrAccessPersistFailed
	}
	return nil
}

func (service *AccessService) UnlockAccess(userID uint) error {
	if err := service.profiles.SetAccessLocked(userID, false); err != nil {
		return ErrAccessPersistFailed
	}
	return nil
}
