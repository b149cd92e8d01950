package domain

import "errors"

const (
	DefaultShoppingListName = "My Shopping List"

	ShoppingItemSourceRecipe   = "recipe"
	ShoppingItemSourceMealPlan = "meal_plan"
	ShoppingItemSourceManual   = "manual"
)

var (
	MessageSuccessBulkAddItems    = "items added to shopping list"
	MessageSuccessGenerateFromMeal = "shopping items generated from meal"
	MessageSuccessSuggestAlternatives = "alternatives suggested"
	MessageSuccessGetShoppingList = "shopping list retrieved successfully"
	MessageFailedBulkAddItems     = "failed to add items to shopping list"
	MessageFailedGenerateFromMeal = "Failed to generate shopping items"
	MessageFailedSuggestAlternatives = "Failed to suggest alternatives"
	MessageFailedGetShoppingList  = "failed to retrieve shopping list"

	ErrShoppingListUnavailable = errors.New("active shopping list could not be resolved")
	ErrGenerationFailed        = errors.New("shopping item generation failed")
)

type (
	BulkAddItem struct {
		Name     string   `json:"name" validate:"required"`
		Quantity *float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit     *string  `json:"unit"`
		Category string   `json:"category"`
	}

	BulkAddRequest struct {
		Items []BulkAddItem `json:"items" validate:"required,min=1,dive"`
	}

	FromMealRequest struct {
		MealDescription string `json:"meal_description" validate:"required"`
		AddToList       bool   `json:"add_to_list"`
	}

	MealIngredient struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Category string  `json:"category"`
	}

	FromMealResponse struct {
		RecipeName  string           `json:"recipe_name"`
		Needed      []MealIngredient `json:"needed"`
		AlreadyHave []string         `json:"already_have"`
		AddedToList bool             `json:"added_to_list"`
	}

	SuggestAlternativesRequest struct {
		ItemName string `json:"item_name" validate:"required"`
		Context  string `json:"context"`
	}

	SuggestAlternativesResponse struct {
		ItemName     string   `json:"item_name"`
		Alternatives []string `json:"alternatives"`
	}

	ShoppingListItemResponse struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Quantity  float64 `json:"quantity"`
		Unit      *string `json:"unit"`
		Source    string  `json:"source"`
		Category  string  `json:"category,omitempty"`
		IsChecked bool    `json:"is_checked"`
	}

	ShoppingListResponse struct {
		ID       string                     `json:"id"`
		Name     string                     `json:"name"`
		IsActive bool                       `json:"is_active"`
		Items    []ShoppingListItemResponse `json:"items"`
	}
)
