package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogMeal  = "meal logged successfully"
	MessageSuccessGetMeals = "meal logs retrieved successfully"
	MessageFailedLogMeal   = "Failed to analyze meal"
	MessageFailedSaveMeal  = "Failed to save meal log"
	MessageFailedGetMeals  = "failed to retrieve meal logs"

	ErrMealAnalysisFailed = errors.New("meal analysis failed")
	ErrMealSaveFailed     = errors.New("meal log could not be saved")
)

type (
	LogMealRequest struct {
		Image string `json:"image" validate:"required"`
		Notes string `json:"notes"`
	}

	// MealAnalysis is the structured estimate the vision model returns for a
	// restaurant meal photo.
	MealAnalysis struct {
		MealName          string   `json:"meal_name"`
		Calories          float64  `json:"calories"`
		ProteinG          float64  `json:"protein_g"`
		CarbsG            float64  `json:"carbs_g"`
		FatG              float64  `json:"fat_g"`
		FiberG            float64  `json:"fiber_g"`
		VegetableServings float64  `json:"vegetable_servings"`
		Components        []string `json:"components"`
		HealthAssessment  string   `json:"health_assessment"`
		AINotes           string   `json:"ai_notes"`
	}

	EatingOutLogResponse struct {
		ID                string    `json:"id"`
		MealName          string    `json:"meal_name"`
		Calories          float64   `json:"calories"`
		ProteinG          float64   `json:"protein_g"`
		CarbsG            float64   `json:"carbs_g"`
		FatG              float64   `json:"fat_g"`
		FiberG            float64   `json:"fiber_g"`
		VegetableServings float64   `json:"vegetable_servings"`
		Components        []string  `json:"components"`
		HealthAssessment  string    `json:"health_assessment"`
		AINotes           string    `json:"ai_notes"`
		Notes             string    `json:"notes,omitempty"`
		PhotoURL          string    `json:"photo_url,omitempty"`
		EatenAt           time.Time `json:"eaten_at"`
	}
)
