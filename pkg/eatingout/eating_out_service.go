package eatingout

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/entities"
	"PantryTrack-Backend/internal/utils/gemini"
	"PantryTrack-Backend/internal/utils/storage"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const recentLogsLimit = 50

type (
	EatingOutService interface {
		LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.EatingOutLogResponse, error)
		GetLogs(ctx context.Context, userID string) ([]domain.EatingOutLogResponse, error)
	}

	eatingOutService struct {
		eatingOutRepository EatingOutRepository
		ai                  *gemini.Client
		s3                  storage.AwsS3
	}
)

func NewEatingOutService(eatingOutRepository EatingOutRepository, ai *gemini.Client, s3 storage.AwsS3) EatingOutService {
	return &eatingOutService{
		eatingOutRepository: eatingOutRepository,
		ai:                  ai,
		s3:                  s3,
	}
}

const mealPrompt = "Analyze this restaurant meal photo and respond ONLY with a valid JSON object containing exactly these fields: " +
	"'meal_name' (string), 'calories' (number), 'protein_g' (number), 'carbs_g' (number), 'fat_g' (number), 'fiber_g' (number), " +
	"'vegetable_servings' (number), 'components' (array of strings naming the visible dishes or parts), " +
	"'health_assessment' (one of: healthy, moderate, indulgent), 'ai_notes' (string, one or two sentences of advice). " +
	"Estimate for the whole plate as served. Do not include any explanations, markdown formatting, or extra text."

func (s *eatingOutService) LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.EatingOutLogResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EatingOutLogResponse{}, domain.ErrParseUUID
	}
	if !s.ai.Configured() {
		return domain.EatingOutLogResponse{}, domain.ErrAIServiceDisabled
	}

	analysis, err := s.analyzeMeal(ctx, req.Image)
	if err != nil {
		return domain.EatingOutLogResponse{}, fmt.Errorf("%w: %v", domain.ErrMealAnalysisFailed, err)
	}

	// Photo upload is best-effort; a storage failure never loses the log.
	var photoURL string
	if imageBytes, decodeErr := base64.StdEncoding.DecodeString(req.Image); decodeErr == nil {
		objectKey, uploadErr := s.s3.UploadUserFile(ctx, userID, imageBytes, "image/jpeg", storage.AllowImage...)
		if uploadErr != nil {
			log.Printf("Error uploading meal photo: %v", uploadErr)
		} else {
			photoURL = s.s3.GetPublicLinkKey(objectKey)
		}
	}

	componentsJSON, _ := json.Marshal(analysis.Components)

	entry := &entities.EatingOutLog{
		ID:                uuid.New(),
		UserID:            userUUID,
		MealName:          analysis.MealName,
		Calories:          analysis.Calories,
		ProteinG:          analysis.ProteinG,
		CarbsG:            analysis.CarbsG,
		FatG:              analysis.FatG,
		FiberG:            analysis.FiberG,
		VegetableServings: analysis.VegetableServings,
		Components:        string(componentsJSON),
		HealthAssessment:  analysis.HealthAssessment,
		AINotes:           analysis.AINotes,
		Notes:             req.Notes,
		PhotoURL:          photoURL,
		EatenAt:           time.Now(),
	}

	if err := s.eatingOutRepository.CreateLog(ctx, entry); err != nil {
		return domain.EatingOutLogResponse{}, fmt.Errorf("%w: %v", domain.ErrMealSaveFailed, err)
	}

	return toLogResponse(entry), nil
}

func (s *eatingOutService) analyzeMeal(ctx context.Context, image string) (domain.MealAnalysis, error) {
	responseText, err := s.ai.GenerateContent(ctx, []gemini.Part{
		{Text: mealPrompt},
		{MIMEType: "image/jpeg", Data: image},
	}, 0.1)
	if err != nil {
		return domain.MealAnalysis{}, err
	}

	jsonText, err := gemini.ExtractJSONObject(responseText)
	if err != nil {
		return domain.MealAnalysis{}, err
	}

	var analysis domain.MealAnalysis
	if err := json.Unmarshal([]byte(jsonText), &analysis); err != nil {
		return domain.MealAnalysis{}, fmt.Errorf("failed to parse meal analysis: %v", err)
	}

	if analysis.MealName == "" {
		analysis.MealName = "Unknown Meal"
	}

	return analysis, nil
}

func (s *eatingOutService) GetLogs(ctx context.Context, userID string) ([]domain.EatingOutLogResponse, error) {
	logs, err := s.eatingOutRepository.GetRecentLogs(ctx, userID, recentLogsLimit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.EatingOutLogResponse, 0, len(logs))
	for _, entry := range logs {
		response = append(response, toLogResponse(entry))
	}
	return response, nil
}

func toLogResponse(entry *entities.EatingOutLog) domain.EatingOutLogResponse {
	var components []string
	_ = json.Unmarshal([]byte(entry.Components), &components)

	return domain.EatingOutLogResponse{
		ID:                entry.ID.String(),
		MealName:          entry.MealName,
		Calories:          entry.Calories,
		ProteinG:          entry.ProteinG,
		CarbsG:            entry.CarbsG,
		FatG:              entry.FatG,
		FiberG:            entry.FiberG,
		VegetableServings: entry.VegetableServings,
		Components:        components,
		HealthAssessment:  entry.HealthAssessment,
		AINotes:           entry.AINotes,
		Notes:             entry.Notes,
		PhotoURL:          entry.PhotoURL,
		EatenAt:           entry.EatenAt,
	}
}
