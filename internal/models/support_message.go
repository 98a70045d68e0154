package models

import "time"

const (
	SenderClient = "client"
	SenderCoach  = "coach"
)

type SupportMessage struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Sender    string    `gorm:"not null"`
	Body      string    `gorm:"not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}
