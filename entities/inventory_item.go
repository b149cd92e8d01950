package entities

import (
	"github.com/google/uuid"
	"time"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `json:"expiry_date"`
	Location     string    `json:"location"` // "fridge", "freezer", "pantry"
	IsConsumed   bool      `json:"is_consumed"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
