package entities

import (
	"github.com/google/uuid"
	"time"
)

type EatingOutLog struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `gorm:"index" json:"user_id"`
	MealName          string    `json:"meal_name"`
	Calories          float64   `json:"calories"`
	ProteinG          float64   `json:"protein_g"`
	CarbsG            float64   `json:"carbs_g"`
	FatG              float64   `json:"fat_g"`
	FiberG            float64   `json:"fiber_g"`
	VegetableServings float64   `json:"vegetable_servings"`
	Components        string    `gorm:"type:text" json:"components"` // JSON-encoded array
	HealthAssessment  string    `json:"health_assessment"`
	AINotes           string    `gorm:"type:text" json:"ai_notes"`
	Notes             string    `gorm:"type:text" json:"notes"`
	PhotoURL          string    `json:"photo_url,omitempty"`
	EatenAt           time.Time `gorm:"index" json:"eaten_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
