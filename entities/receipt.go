package entities

import (
	"github.com/google/uuid"
	"time"
)

type Receipt struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"index" json:"user_id"`
	StoreName    string    `json:"store_name"`
	StoreAddress string    `json:"store_address"`
	ReceiptDate  time.Time `gorm:"index" json:"receipt_date"`
	Subtotal     float64   `json:"subtotal"`
	Tax          float64   `json:"tax"`
	Total        float64   `json:"total"`

	User  *User          `gorm:"foreignKey:UserID"`
	Items []*ReceiptItem `gorm:"foreignKey:ReceiptID"`
	Timestamp
}

type ReceiptItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID uuid.UUID `gorm:"index" json:"receipt_id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`

	Timestamp
}
