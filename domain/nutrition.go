package domain

import "errors"

var (
	MessageSuccessGetNutrition = "nutrition data retrieved successfully"
	MessageSuccessSearchFoods  = "foods retrieved successfully"
	MessageFailedGetNutrition  = "failed to retrieve nutrition data"
	MessageFailedSearchFoods   = "failed to search foods"
	MessageNutritionNotConfigured = "nutrition service not configured"

	ErrFoodNotFound                = errors.New("food not found")
	ErrNutritionServiceUnavailable = errors.New("nutrition service not configured")
	ErrMissingSearchQuery          = errors.New("query is required")
)

type (
	// FoodNutritionResponse is the normalized single-profile shape returned
	// when the caller does not ask for the provider's full serving detail.
	FoodNutritionResponse struct {
		FoodID             string  `json:"food_id"`
		Name               string  `json:"name"`
		Brand              string  `json:"brand,omitempty"`
		ServingDescription string  `json:"serving_description"`
		Calories           float64 `json:"calories"`
		ProteinG           float64 `json:"protein_g"`
		CarbsG             float64 `json:"carbs_g"`
		FatG               float64 `json:"fat_g"`
		FiberG             float64 `json:"fiber_g"`
		SugarG             float64 `json:"sugar_g"`
		SodiumMg           float64 `json:"sodium_mg"`
	}

	FoodSearchResult struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Brand       string `json:"brand,omitempty"`
		Type        string `json:"type"`
		Description string `json:"description,omitempty"`
	}

	FoodSearchResponse struct {
		Results      []FoodSearchResult `json:"results"`
		TotalResults int                `json:"total_results"`
		PageNumber   int                `json:"page_number"`
	}

	FoodAutocompleteResponse struct {
		Suggestions []string `json:"suggestions"`
	}
)
