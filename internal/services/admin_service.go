package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sevenfit/coaching/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken            = errors.New("email already registered")
	ErrProvisionFailed       = errors.New("provision client failed")
	ErrWeakProvisionPassword = errors.New("password too short")
)

const minProvisionPasswordLength = 8

type ProvisionUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	CreateWithClientProfile(user *models.User, profile *models.ClientProfile) error
}

type AdminService struct {
	users    ProvisionUserRepository
	location *time.Location
}

func NewAdminService(users ProvisionUserRepository, location *time.Location) *AdminService {
	if location == nil {
		location = time.UTC
	}
	return &AdminService{users: users, location: location}
}

type ProvisionInput struct {
	Email           string
	Password        string
	FullName        string
	PlanName        string
	EntitlementDays int
}

// ProvisionClient creates a client account the way the admin panel does:
// entitlement days are normalized to the plans on sale and the intake form is
// left for the client to complete. User and profile land in one transactional
// write so a failure cannot strand a profileless login.
func (service *AdminService) ProvisionClient(input ProvisionInput, now time.Time) (models.User, models.ClientProfile, error) {
	email := NormalizeEmail(input.Email)
	if len(input.Password) < minProvisionPasswordLength {
		return models.User{}, models.ClientProfile{}, ErrWeakProvisionPassword
	}

	exists, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, models.ClientProfile{}, ErrProvisionFailed
	}
	if exists {
		return models.User{}, models.ClientProfile{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.ClientProfile{}, ErrProvisionFailed
	}

	user := models.User{
		PublicID:     uuid.NewString(),
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleClient,
		FullName:     input.FullName,
		CreatedAt:    now.In(service.location),
	}
	profile := models.ClientProfile{
		PlanName:        input.PlanName,
		EntitlementDays: models.NormalizeEntitlementDays(input.EntitlementDays),
		CreatedAt:       now.In(service.location),
	}
	if err := service.users.CreateWithClientProfile(&user, &profile); err != nil {
		return models.User{}, models.ClientProfile{}, ErrProvisionFailed
	}
	return user, profile, nil
}
