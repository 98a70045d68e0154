package models

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	PublicID     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:client"`
	FullName     string    `gorm:"not null;default:''"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}
