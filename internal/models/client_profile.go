package models

import "time"

const (
	DefaultEntitlementDays  = 30
	ExtendedEntitlementDays = 90
)

// Account lifecycle states derived from the profile flags. The flags stay
// independent columns for compatibility with admin tooling, but callers reason
// about the account through exactly one of these states.
const (
	StatusPendingIntake = "pending_intake"
	StatusActive        = "active"
	StatusExpired       = "expired"
	StatusBlocked       = "blocked"
)

type ClientProfile struct {
	ID                uint       `gorm:"primaryKey"`
	UserID            uint       `gorm:"not null;uniqueIndex"`
	PlanName          string     `gorm:"not null;default:''"`
	Phone             string     `gorm:"not null;default:''"`
	EntitlementDays   int        `gorm:"not null;default:30"`
	BonusDays         int        `gorm:"not null;default:0"`
	ExpirationDate    *time.Time `gorm:"type:date"`
	AccessLocked      bool       `gorm:"not null;default:false"`
	IntakeCompleted   bool       `gorm:"not null;default:false"`
	IntakeCompletedAt *time.Time
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time
}

// NormalizeEntitlementDays maps arbitrary admin input onto the plans the
// product sells. Anything that is not the extended plan falls back to the
// default plan.
func NormalizeEntitlementDays(days int) int {
	if days == ExtendedEntitlementDays {
		return ExtendedEntitlementDays
	}
	return DefaultEntitlementDays
}
