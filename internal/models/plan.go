package models

import "time"

// DietPlan is one personalized diet the coach sends a client. Clients can
// receive several over time; the dashboard shows the newest first.
type DietPlan struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	SentByID   uint      `gorm:"not null"`
	Hydration  string    `gorm:"not null;default:''"`
	MealWake   string    `gorm:"not null;default:''"`
	MealLunch  string    `gorm:"not null;default:''"`
	MealSnack  string    `gorm:"not null;default:''"`
	MealDinner string    `gorm:"not null;default:''"`
	SentAt     time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

type ExerciseSet struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
}

// WorkoutDay is one labeled training day inside a plan (treino A, B, ...).
type WorkoutDay struct {
	DayLabel  string        `json:"day_label"`
	Focus     string        `json:"focus"`
	Exercises []ExerciseSet `json:"exercises"`
}

type TrainingPlan struct {
	ID               uint         `gorm:"primaryKey"`
	UserID           uint         `gorm:"not null;index"`
	SentByID         uint         `gorm:"not null"`
	RepetitionNotes  string       `gorm:"not null;default:''"`
	SetNotes         string       `gorm:"not null;default:''"`
	RestNotes        string       `gorm:"not null;default:''"`
	ProgressionNotes string       `gorm:"not null;default:''"`
	Workouts         []WorkoutDay `gorm:"serializer:json"`
	SentAt           time.Time    `gorm:"not null"`
	CreatedAt        time.Time
}
