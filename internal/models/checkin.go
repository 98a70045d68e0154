package models

import "time"

const CheckinSlotCount = 4

// Training completion levels a client can report per weekday. LevelNone is the
// "did not train" answer, distinct from a day with no answer at all.
const (
	TrainingLevelFull = "100%"
	TrainingLevelHigh = "75%"
	TrainingLevelHalf = "50%"
	TrainingLevelNone = "Não treinei"
)

type CheckinSubmission struct {
	ID                 uint              `gorm:"primaryKey"`
	UserID             uint              `gorm:"not null;uniqueIndex:uidx_user_sequence"`
	SequenceNumber     int               `gorm:"not null;uniqueIndex:uidx_user_sequence"`
	Hydration          string            `gorm:"not null;default:''"`
	SleepHours         string            `gorm:"not null;default:''"`
	TrainingDays       map[string]string `gorm:"serializer:json"`
	CompletedExercises []string          `gorm:"serializer:json"`
	Weight             *float64
	Reflection         string    `gorm:"not null;default:''"`
	SubmittedAt        time.Time `gorm:"not null"`
	CreatedAt          time.Time
}
