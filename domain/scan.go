package domain

import "errors"

var (
	MessageSuccessScanItems = "items scanned successfully"
	MessageFailedScanItems  = "Failed to scan items"

	ErrNoImagesProvided   = errors.New("at least one image is required")
	ErrInvalidLocation    = errors.New("location must be one of fridge, freezer, pantry")
	ErrScanFailed         = errors.New("vision analysis failed")
	ErrAIServiceDisabled  = errors.New("AI service not configured")
)

// High-confidence detections sit at or above this score; everything below
// needs a human look before saving.
const ConfidenceThreshold = 0.8

type (
	ScanItemsRequest struct {
		Images   []string `json:"images" validate:"required,min=1,dive,required"`
		Location string   `json:"location" validate:"required,oneof=fridge freezer pantry"`
	}

	DetectedItem struct {
		Name                string  `json:"name"`
		Category            string  `json:"category"`
		Quantity            float64 `json:"quantity"`
		Unit                string  `json:"unit"`
		EstimatedExpiryDays int     `json:"estimated_expiry_days"`
		Confidence          float64 `json:"confidence"`
		Freshness           string  `json:"freshness"`
		ExpiryDate          string  `json:"expiry_date"`
		PurchaseDate        string  `json:"purchase_date"`
		Location            string  `json:"location"`
	}

	ScanSummary struct {
		TotalItems     int `json:"total_items"`
		HighConfidence int `json:"high_confidence"`
		NeedsReview    int `json:"needs_review"`
	}

	ScanItemsResponse struct {
		Items   []DetectedItem `json:"items"`
		Summary ScanSummary    `json:"summary"`
	}
)
