package shoppinglist

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/entities"
	"PantryTrack-Backend/internal/utils/gemini"
	"PantryTrack-Backend/pkg/inventory"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

type (
	ShoppingListService interface {
		BulkAdd(ctx context.Context, req domain.BulkAddRequest, userID string) (domain.ShoppingListResponse, error)
		GenerateFromMeal(ctx context.Context, req domain.FromMealRequest, userID string) (domain.FromMealResponse, error)
		SuggestAlternatives(ctx context.Context, req domain.SuggestAlternativesRequest) (domain.SuggestAlternativesResponse, error)
		GetActiveList(ctx context.Context, userID string) (domain.ShoppingListResponse, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		inventoryRepository    inventory.InventoryRepository
		ai                     *gemini.Client
	}
)

func NewShoppingListService(
	shoppingListRepository ShoppingListRepository,
	inventoryRepository inventory.InventoryRepository,
	ai *gemini.Client,
) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		inventoryRepository:    inventoryRepository,
		ai:                     ai,
	}
}

const fromMealPrompt = "You are a grocery planning assistant. Given a meal the user wants to cook and a list of ingredients " +
	"they already have at home, respond ONLY with a valid JSON object containing exactly these fields: " +
	"'recipe_name' (string), 'needed' (array of objects with 'name' string, 'quantity' number, 'unit' string, 'category' string), " +
	"'already_have' (array of strings naming the home ingredients the recipe uses). " +
	"Only list ingredients in 'needed' that are NOT in the home list. Use common grocery categories like produce, dairy, meat, pantry. " +
	"Do not include any explanations, markdown formatting, or extra text.\n\nMeal: %s\n\nIngredients at home: %s"

const alternativesPrompt = "Suggest practical substitutes a home cook could buy instead of '%s'%s. " +
	"Respond ONLY with a valid JSON array of 3 to 5 strings, each naming one alternative. " +
	"Do not include any explanations, markdown formatting, or extra text."

func (s *shoppingListService) BulkAdd(ctx context.Context, req domain.BulkAddRequest, userID string) (domain.ShoppingListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	list, err := s.shoppingListRepository.GetOrCreateActiveList(ctx, userUUID)
	if err != nil {
		return domain.ShoppingListResponse{}, fmt.Errorf("%w: %v", domain.ErrShoppingListUnavailable, err)
	}

	rows := make([]*entities.ShoppingListItem, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := 1.0
		if item.Quantity != nil {
			quantity = *item.Quantity
		}

		rows = append(rows, &entities.ShoppingListItem{
			ID:             uuid.New(),
			ShoppingListID: list.ID,
			Name:           item.Name,
			Quantity:       quantity,
			Unit:           item.Unit,
			Source:         domain.ShoppingItemSourceRecipe,
			Category:       item.Category,
		})
	}

	if err := s.shoppingListRepository.AddItems(ctx, rows); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return s.GetActiveList(ctx, userID)
}

func (s *shoppingListService) GenerateFromMeal(ctx context.Context, req domain.FromMealRequest, userID string) (domain.FromMealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FromMealResponse{}, domain.ErrParseUUID
	}
	if !s.ai.Configured() {
		return domain.FromMealResponse{}, domain.ErrAIServiceDisabled
	}

	pantry, err := s.inventoryRepository.GetUnconsumedItemNames(ctx, userID)
	if err != nil {
		log.Printf("Error loading pantry names for meal generation: %v", err)
		pantry = nil
	}

	pantryList := "none"
	if len(pantry) > 0 {
		pantryList = strings.Join(pantry, ", ")
	}

	responseText, err := s.ai.GenerateContent(ctx, []gemini.Part{
		{Text: fmt.Sprintf(fromMealPrompt, req.MealDescription, pantryList)},
	}, 0.2)
	if err != nil {
		return domain.FromMealResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	jsonText, err := gemini.ExtractJSONObject(responseText)
	if err != nil {
		return domain.FromMealResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	var generated struct {
		RecipeName  string                  `json:"recipe_name"`
		Needed      []domain.MealIngredient `json:"needed"`
		AlreadyHave []string                `json:"already_have"`
	}
	if err := json.Unmarshal([]byte(jsonText), &generated); err != nil {
		return domain.FromMealResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	response := domain.FromMealResponse{
		RecipeName:  generated.RecipeName,
		Needed:      generated.Needed,
		AlreadyHave: generated.AlreadyHave,
	}
	if response.Needed == nil {
		response.Needed = []domain.MealIngredient{}
	}
	if response.AlreadyHave == nil {
		response.AlreadyHave = []string{}
	}

	if req.AddToList && len(response.Needed) > 0 {
		// List insertion is best-effort; the generated items are still
		// returned when persistence fails.
		if err := s.addGeneratedItems(ctx, userUUID, response.Needed); err != nil {
			log.Printf("Error adding generated items to shopping list: %v", err)
		} else {
			response.AddedToList = true
		}
	}

	return response, nil
}

func (s *shoppingListService) addGeneratedItems(ctx context.Context, userID uuid.UUID, ingredients []domain.MealIngredient) error {
	list, err := s.shoppingListRepository.GetOrCreateActiveList(ctx, userID)
	if err != nil {
		return err
	}

	rows := make([]*entities.ShoppingListItem, 0, len(ingredients))
	for _, ingredient := range ingredients {
		quantity := ingredient.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		var unit *string
		if ingredient.Unit != "" {
			value := ingredient.Unit
			unit = &value
		}

		rows = append(rows, &entities.ShoppingListItem{
			ID:             uuid.New(),
			ShoppingListID: list.ID,
			Name:           ingredient.Name,
			Quantity:       quantity,
			Unit:           unit,
			Source:         domain.ShoppingItemSourceMealPlan,
			Category:       ingredient.Category,
		})
	}

	return s.shoppingListRepository.AddItems(ctx, rows)
}

func (s *shoppingListService) SuggestAlternatives(ctx context.Context, req domain.SuggestAlternativesRequest) (domain.SuggestAlternativesResponse, error) {
	if !s.ai.Configured() {
		return domain.SuggestAlternativesResponse{}, domain.ErrAIServiceDisabled
	}

	contextHint := ""
	if req.Context != "" {
		contextHint = fmt.Sprintf(" for %s", req.Context)
	}

	responseText, err := s.ai.GenerateContent(ctx, []gemini.Part{
		{Text: fmt.Sprintf(alternativesPrompt, req.ItemName, contextHint)},
	}, 0.3)
	if err != nil {
		return domain.SuggestAlternativesResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	jsonText, err := gemini.ExtractJSONArray(responseText)
	if err != nil {
		return domain.SuggestAlternativesResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	var alternatives []string
	if err := json.Unmarshal([]byte(jsonText), &alternatives); err != nil {
		return domain.SuggestAlternativesResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	return domain.SuggestAlternativesResponse{
		ItemName:     req.ItemName,
		Alternatives: alternatives,
	}, nil
}

func (s *shoppingListService) GetActiveList(ctx context.Context, userID string) (domain.ShoppingListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}

	list, err := s.shoppingListRepository.GetActiveListWithItems(ctx, userUUID)
	if err != nil {
		return domain.ShoppingListResponse{}, fmt.Errorf("%w: %v", domain.ErrShoppingListUnavailable, err)
	}

	items := make([]domain.ShoppingListItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, domain.ShoppingListItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			Source:    item.Source,
			Category:  item.Category,
			IsChecked: item.IsChecked,
		})
	}

	return domain.ShoppingListResponse{
		ID:       list.ID.String(),
		Name:     list.Name,
		IsActive: list.IsActive,
		Items:    items,
	}, nil
}
