package scan

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/utils/gemini"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type (
	ScanService interface {
		ScanImages(ctx context.Context, req domain.ScanItemsRequest, userID string) (domain.ScanItemsResponse, error)
	}

	scanService struct {
		ai *gemini.Client
	}
)

func NewScanService(ai *gemini.Client) ScanService {
	return &scanService{ai: ai}
}

const scanPrompt = "Analyze these food images and respond ONLY with a valid JSON object of the form " +
	`{"items":[{"name":string,"category":string,"quantity":number,"unit":string,` +
	`"estimated_expiry_days":number,"confidence":number between 0 and 1,"freshness":string}]}. ` +
	"List every distinct food item visible across all images. " +
	"estimated_expiry_days is the remaining shelf life in days from today. " +
	"freshness is one of: fresh, good, use_soon, spoiled. " +
	"Do not include any explanations, markdown formatting, or extra text."

// geminiScanResult mirrors the JSON shape the prompt asks the model for.
type geminiScanResult struct {
	Items []struct {
		Name                string  `json:"name"`
		Category            string  `json:"category"`
		Quantity            float64 `json:"quantity"`
		Unit                string  `json:"unit"`
		EstimatedExpiryDays int     `json:"estimated_expiry_days"`
		Confidence          float64 `json:"confidence"`
		Freshness           string  `json:"freshness"`
	} `json:"items"`
}

func (s *scanService) ScanImages(ctx context.Context, req domain.ScanItemsRequest, userID string) (domain.ScanItemsResponse, error) {
	if len(req.Images) == 0 {
		return domain.ScanItemsResponse{}, domain.ErrNoImagesProvided
	}
	if !validLocation(req.Location) {
		return domain.ScanItemsResponse{}, domain.ErrInvalidLocation
	}
	if !s.ai.Configured() {
		return domain.ScanItemsResponse{}, domain.ErrAIServiceDisabled
	}

	// All images go out in a single call; the model sees the whole batch.
	parts := make([]gemini.Part, 0, len(req.Images)+1)
	parts = append(parts, gemini.Part{Text: scanPrompt})
	for _, img := range req.Images {
		parts = append(parts, gemini.Part{MIMEType: "image/jpeg", Data: img})
	}

	responseText, err := s.ai.GenerateContent(ctx, parts, 0.1)
	if err != nil {
		return domain.ScanItemsResponse{}, fmt.Errorf("%w: %v", domain.ErrScanFailed, err)
	}

	jsonText, err := gemini.ExtractJSONObject(responseText)
	if err != nil {
		return domain.ScanItemsResponse{}, fmt.Errorf("%w: %v", domain.ErrScanFailed, err)
	}

	var result geminiScanResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		return domain.ScanItemsResponse{}, fmt.Errorf("%w: failed to parse vision response: %v", domain.ErrScanFailed, err)
	}

	today := time.Now()
	items := make([]domain.DetectedItem, 0, len(result.Items))
	summary := domain.ScanSummary{TotalItems: len(result.Items)}

	for _, raw := range result.Items {
		if raw.EstimatedExpiryDays < 0 {
			raw.EstimatedExpiryDays = 0
		}
		if raw.Quantity <= 0 {
			raw.Quantity = 1
		}

		if raw.Confidence >= domain.ConfidenceThreshold {
			summary.HighConfidence++
		} else {
			summary.NeedsReview++
		}

		items = append(items, domain.DetectedItem{
			Name:                raw.Name,
			Category:            raw.Category,
			Quantity:            raw.Quantity,
			Unit:                raw.Unit,
			EstimatedExpiryDays: raw.EstimatedExpiryDays,
			Confidence:          raw.Confidence,
			Freshness:           raw.Freshness,
			ExpiryDate:          today.AddDate(0, 0, raw.EstimatedExpiryDays).Format("2006-01-02"),
			PurchaseDate:        today.Format("2006-01-02"),
			Location:            req.Location,
		})
	}

	return domain.ScanItemsResponse{Items: items, Summary: summary}, nil
}

func validLocation(location string) bool {
	switch location {
	case "fridge", "freezer", "pantry":
		return true
	}
	return false
}
