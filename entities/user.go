package entities

import (
	"github.com/google/uuid"
)

// User carries only the identity columns this service needs; account
// management lives in the external auth provider.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email string    `gorm:"uniqueIndex" json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`

	Timestamp
}
