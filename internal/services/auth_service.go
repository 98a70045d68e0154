package services

import (
	"strings"

	"github.com/sevenfit/coaching/internal/models"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	FindByPublicID(publicID string) (models.User, error)
	CreateWithClientProfile(user *models.User, profile *models.ClientProfile) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(NormalizeEmail(email))
}

// CreateClientAccount persists a new client and its profile as one atomic
// write.
func (service *AuthService) CreateClientAccount(user *models.User, profile *models.ClientProfile) error {
	return service.users.CreateWithClientProfile(user, profile)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(NormalizeEmail(email))
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) FindByPublicID(publicID string) (models.User, error) {
	return service.users.FindByPublicID(strings.TrimSpace(publicID))
}
