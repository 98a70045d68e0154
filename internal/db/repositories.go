package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repositories struct {
	Users    *UserRepository
	Clients  *ClientProfileRepository
	Checkins *CheckinRepository
	Support  *SupportMessageRepository
	Plans    *PlanRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Clients:  NewClientProfileRepository(database),
		Checkins: NewCheckinRepository(database),
		Support:  NewSupportMessageRepository(database),
		Plans:    NewPlanRepository(database),
	}
}

// IsUniqueConstraintError reports whether err came from the store rejecting a
// row that violates a uniqueness constraint. The sqlite driver does not always
// translate into gorm.ErrDuplicatedKey, so the raw message is checked too.
func IsUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
