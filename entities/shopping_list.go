package entities

import (
	"github.com/google/uuid"
)

// ShoppingList rows are guarded by a partial unique index on
// (user_id) WHERE is_active, created in the migration. Concurrent
// get-or-create requests therefore cannot produce two active lists.
type ShoppingList struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`

	User  *User               `gorm:"foreignKey:UserID"`
	Items []*ShoppingListItem `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID `gorm:"index" json:"shopping_list_id"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	Unit           *string   `json:"unit"`
	Source         string    `json:"source"` // "recipe", "meal_plan", "manual"
	Category       string    `json:"category"`
	IsChecked      bool      `json:"is_checked"`

	Timestamp
}
