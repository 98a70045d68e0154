package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sevenfit/coaching/internal/db"
	"github.com/sevenfit/coaching/internal/models"
)

// EnsureAdminUser creates the first administrator account from the
// environment when the database has none. With no credentials configured the
// instance simply starts without an admin, which is fine for tests.
func EnsureAdminUser(database *gorm.DB, email string, password string, location *time.Location) error {
	users := db.NewUserRepository(database)

	admins, err := users.CountByRole(models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins > 0 {
		return nil
	}
	if email == "" || password == "" {
		log.Println("no admin account configured; set ADMIN_EMAIL and ADMIN_PASSWORD to create one")
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.User{
		PublicID:     uuid.NewString(),
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now().In(location),
	}
	if err := users.Create(&admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	log.Printf("created admin account %s", email)
	return nil
}
