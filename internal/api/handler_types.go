package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/sevenfit/coaching/internal/db"
	"github.com/sevenfit/coaching/internal/services"
)

type Handler struct {
	db                  *gorm.DB
	secretKey           []byte
	location            *time.Location
	cookieSecure        bool
	checkinIntervalDays int

	repositories   *db.Repositories
	authService    *services.AuthService
	accessService  *services.AccessService
	checkinService *services.CheckinService
	intakeService  *services.IntakeService
	supportService *services.SupportService
	adminService   *services.AdminService
	planService    *services.PlanService

	loginLimiter *attemptLimiter
}

const (
	defaultAuthTokenTTL = 7 * 24 * time.Hour

	loginAttemptLimit  = 10
	loginAttemptWindow = 15 * time.Minute
)

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Config struct {
	SecretKey           string
	Location            *time.Location
	CookieSecure        bool
	CheckinIntervalDays int
}

func NewHandler(database *gorm.DB, config Config) *Handler {
	location := config.Location
	if location == nil {
		location = time.UTC
	}
	intervalDays := config.CheckinIntervalDays
	if intervalDays <= 0 {
		intervalDays = services.DefaultCheckinIntervalDays
	}

	handler := &Handler{
		db:                  database,
		secretKey:           []byte(config.SecretKey),
		location:            location,
		cookieSecure:        config.CookieSecure,
		checkinIntervalDays: intervalDays,
		loginLimiter:        newAttemptLimiter(),
	}

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.accessService = services.NewAccessService(handler.repositories.Clients, location)
	handler.checkinService = services.NewCheckinService(handler.repositories.Checkins, db.IsUniqueConstraintError, intervalDays, location)
	handler.intakeService = services.NewIntakeService(handler.repositories.Clients)
	handler.supportService = services.NewSupportService(handler.repositories.Support)
	handler.adminService = services.NewAdminService(handler.repositories.Users, location)
	handler.planService = services.NewPlanService(handler.repositories.Plans)
	return handler
}
