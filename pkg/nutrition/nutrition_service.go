package nutrition

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/internal/utils/fatsecret"
	"context"
	"errors"
	"strconv"
)

const DefaultAutocompleteMax = 20

type (
	NutritionService interface {
		GetFoodNutrition(ctx context.Context, foodID string) (domain.FoodNutritionResponse, error)
		GetFoodDetailed(ctx context.Context, foodID string) (*fatsecret.Food, error)
		SearchFoods(ctx context.Context, query string, page, max int) (domain.FoodSearchResponse, error)
		Autocomplete(ctx context.Context, query string, max int) (domain.FoodAutocompleteResponse, error)
	}

	nutritionService struct {
		foodDB *fatsecret.Client
	}
)

func NewNutritionService(foodDB *fatsecret.Client) NutritionService {
	return &nutritionService{foodDB: foodDB}
}

func (s *nutritionService) GetFoodDetailed(ctx context.Context, foodID string) (*fatsecret.Food, error) {
	if !s.foodDB.Configured() {
		return nil, domain.ErrNutritionServiceUnavailable
	}

	food, err := s.foodDB.GetFood(ctx, foodID)
	if err != nil {
		if errors.Is(err, fatsecret.ErrFoodNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

// GetFoodNutrition collapses the provider's multi-serving record into a single
// nutrition profile, using the first serving the provider lists.
func (s *nutritionService) GetFoodNutrition(ctx context.Context, foodID string) (domain.FoodNutritionResponse, error) {
	food, err := s.GetFoodDetailed(ctx, foodID)
	if err != nil {
		return domain.FoodNutritionResponse{}, err
	}

	if len(food.Servings) == 0 {
		return domain.FoodNutritionResponse{}, domain.ErrFoodNotFound
	}

	serving := food.Servings[0]
	return domain.FoodNutritionResponse{
		FoodID:             food.FoodID,
		Name:               food.Name,
		Brand:              food.BrandName,
		ServingDescription: serving.ServingDescription,
		Calories:           parseFloat(serving.Calories),
		ProteinG:           parseFloat(serving.Protein),
		CarbsG:             parseFloat(serving.Carbohydrate),
		FatG:               parseFloat(serving.Fat),
		FiberG:             parseFloat(serving.Fiber),
		SugarG:             parseFloat(serving.Sugar),
		SodiumMg:           parseFloat(serving.Sodium),
	}, nil
}

func (s *nutritionService) SearchFoods(ctx context.Context, query string, page, max int) (domain.FoodSearchResponse, error) {
	if !s.foodDB.Configured() {
		return domain.FoodSearchResponse{}, domain.ErrNutritionServiceUnavailable
	}
	if query == "" {
		return domain.FoodSearchResponse{}, domain.ErrMissingSearchQuery
	}

	result, err := s.foodDB.SearchFoods(ctx, query, page, max)
	if err != nil {
		return domain.FoodSearchResponse{}, err
	}

	response := domain.FoodSearchResponse{
		Results:      make([]domain.FoodSearchResult, 0, len(result.Foods)),
		TotalResults: result.TotalResults,
		PageNumber:   result.PageNumber,
	}
	for _, food := range result.Foods {
		response.Results = append(response.Results, domain.FoodSearchResult{
			ID:          food.FoodID,
			Name:        food.Name,
			Brand:       food.BrandName,
			Type:        food.Type,
			Description: food.Description,
		})
	}

	return response, nil
}

func (s *nutritionService) Autocomplete(ctx context.Context, query string, max int) (domain.FoodAutocompleteResponse, error) {
	if !s.foodDB.Configured() {
		return domain.FoodAutocompleteResponse{}, domain.ErrNutritionServiceUnavailable
	}
	if query == "" {
		return domain.FoodAutocompleteResponse{}, domain.ErrMissingSearchQuery
	}
	if max <= 0 {
		max = DefaultAutocompleteMax
	}

	suggestions, err := s.foodDB.Autocomplete(ctx, query, max)
	if err != nil {
		return domain.FoodAutocompleteResponse{}, err
	}

	if suggestions == nil {
		suggestions = []string{}
	}
	return domain.FoodAutocompleteResponse{Suggestions: suggestions}, nil
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
