package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddInventoryItems = "inventory items added successfully"
	MessageSuccessGetInventoryItems = "inventory items retrieved successfully"
	MessageFailedAddInventoryItems  = "failed to add inventory items"
	MessageFailedGetInventoryItems  = "failed to retrieve inventory items"

	ErrInventoryItemNotFound = errors.New("inventory item not found")
)

type (
	AddInventoryItemRequest struct {
		Name         string  `json:"name" validate:"required"`
		Category     string  `json:"category"`
		Quantity     float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit         string  `json:"unit"`
		PurchaseDate string  `json:"purchase_date"`
		ExpiryDate   string  `json:"expiry_date"`
		Location     string  `json:"location" validate:"required,oneof=fridge freezer pantry"`
	}

	AddInventoryItemsRequest struct {
		Items []AddInventoryItemRequest `json:"items" validate:"required,min=1,dive"`
	}

	InventoryItemResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Category     string    `json:"category"`
		Quantity     float64   `json:"quantity"`
		Unit         string    `json:"unit"`
		PurchaseDate time.Time `json:"purchase_date"`
		ExpiryDate   time.Time `json:"expiry_date"`
		Location     string    `json:"location"`
		IsConsumed   bool      `json:"is_consumed"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
