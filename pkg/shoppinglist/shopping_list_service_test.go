package shoppinglist

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/entities"
	"PantryTrack-Backend/internal/utils/gemini"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shoppingListRepoMock struct {
	list       *entities.ShoppingList
	listErr    error
	added      []*entities.ShoppingListItem
	addErr     error
	getCreated int
}

func (m *shoppingListRepoMock) GetOrCreateActiveList(_ context.Context, userID uuid.UUID) (*entities.ShoppingList, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.getCreated++
	if m.list == nil {
		m.list = &entities.ShoppingList{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     domain.DefaultShoppingListName,
			IsActive: true,
		}
	}
	return m.list, nil
}

func (m *shoppingListRepoMock) GetActiveListWithItems(ctx context.Context, userID uuid.UUID) (*entities.ShoppingList, error) {
	list, err := m.GetOrCreateActiveList(ctx, userID)
	if err != nil {
		return nil, err
	}
	list.Items = m.added
	return list, nil
}

func (m *shoppingListRepoMock) AddItems(_ context.Context, items []*entities.ShoppingListItem) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.added = append(m.added, items...)
	return nil
}

type pantryMock struct {
	names []string
}

func (m *pantryMock) AddInventoryItems(_ context.Context, _ []*entities.InventoryItem) error {
	return nil
}

func (m *pantryMock) GetInventoryItems(_ context.Context, _ string, _ string, _, _ int) ([]*entities.InventoryItem, int64, error) {
	return nil, 0, nil
}

func (m *pantryMock) GetUnconsumedItemNames(_ context.Context, _ string) ([]string, error) {
	return m.names, nil
}

func fakeAssistantServer(t *testing.T, modelText string, status int) *gemini.Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		quoted, _ := json.Marshal(modelText)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":` + string(quoted) + `}]}}]}`))
	}))
	t.Cleanup(ts.Close)

	return &gemini.Client{APIKey: "k", Model: "m", BaseURL: ts.URL, HTTPClient: ts.Client()}
}

const userID = "7f8b9c0d-1111-2222-3333-444455556666"

func TestBulkAddDefaultsQuantityAndSource(t *testing.T) {
	t.Parallel()

	repo := &shoppingListRepoMock{}
	svc := NewShoppingListService(repo, &pantryMock{}, &gemini.Client{})

	half := 0.5
	unit := "kg"
	res, err := svc.BulkAdd(context.Background(), domain.BulkAddRequest{
		Items: []domain.BulkAddItem{
			{Name: "Milk"},
			{Name: "Potatoes", Quantity: &half, Unit: &unit, Category: "produce"},
		},
	}, userID)
	require.NoError(t, err)

	require.Len(t, repo.added, 2)
	assert.Equal(t, 1.0, repo.added[0].Quantity)
	assert.Nil(t, repo.added[0].Unit)
	assert.Equal(t, domain.ShoppingItemSourceRecipe, repo.added[0].Source)
	assert.Equal(t, 0.5, repo.added[1].Quantity)
	assert.Equal(t, "kg", *repo.added[1].Unit)

	assert.Equal(t, domain.DefaultShoppingListName, res.Name)
	assert.True(t, res.IsActive)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Milk", res.Items[0].Name)
}

func TestBulkAddRejectsMalformedUserID(t *testing.T) {
	t.Parallel()

	svc := NewShoppingListService(&shoppingListRepoMock{}, &pantryMock{}, &gemini.Client{})

	_, err := svc.BulkAdd(context.Background(), domain.BulkAddRequest{
		Items: []domain.BulkAddItem{{Name: "Milk"}},
	}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGenerateFromMealAddsNeededItems(t *testing.T) {
	t.Parallel()

	repo := &shoppingListRepoMock{}
	pantry := &pantryMock{names: []string{"rice", "soy sauce"}}
	ai := fakeAssistantServer(t, `{"recipe_name":"Chicken Stir Fry","needed":[{"name":"chicken breast","quantity":500,"unit":"g","category":"meat"},{"name":"bell pepper","quantity":2,"unit":"","category":"produce"}],"already_have":["rice","soy sauce"]}`, http.StatusOK)
	svc := NewShoppingListService(repo, pantry, ai)

	res, err := svc.GenerateFromMeal(context.Background(), domain.FromMealRequest{
		MealDescription: "chicken stir fry",
		AddToList:       true,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "Chicken Stir Fry", res.RecipeName)
	assert.Equal(t, []string{"rice", "soy sauce"}, res.AlreadyHave)
	assert.True(t, res.AddedToList)

	require.Len(t, repo.added, 2)
	assert.Equal(t, domain.ShoppingItemSourceMealPlan, repo.added[0].Source)
	assert.Equal(t, 500.0, repo.added[0].Quantity)
	require.NotNil(t, repo.added[0].Unit)
	assert.Equal(t, "g", *repo.added[0].Unit)
	assert.Nil(t, repo.added[1].Unit)
}

func TestGenerateFromMealWithoutAddToList(t *testing.T) {
	t.Parallel()

	repo := &shoppingListRepoMock{}
	ai := fakeAssistantServer(t, `{"recipe_name":"Omelette","needed":[{"name":"eggs","quantity":6,"unit":"","category":"dairy"}],"already_have":[]}`, http.StatusOK)
	svc := NewShoppingListService(repo, &pantryMock{}, ai)

	res, err := svc.GenerateFromMeal(context.Background(), domain.FromMealRequest{
		MealDescription: "omelette",
	}, userID)
	require.NoError(t, err)

	assert.False(t, res.AddedToList)
	assert.Empty(t, repo.added)
	require.Len(t, res.Needed, 1)
}

func TestGenerateFromMealInsertFailureStillReturnsItems(t *testing.T) {
	t.Parallel()

	repo := &shoppingListRepoMock{addErr: errors.New("connection reset")}
	ai := fakeAssistantServer(t, `{"recipe_name":"Pasta","needed":[{"name":"penne","quantity":1,"unit":"box","category":"pantry"}],"already_have":[]}`, http.StatusOK)
	svc := NewShoppingListService(repo, &pantryMock{}, ai)

	res, err := svc.GenerateFromMeal(context.Background(), domain.FromMealRequest{
		MealDescription: "pasta",
		AddToList:       true,
	}, userID)
	require.NoError(t, err)

	assert.False(t, res.AddedToList)
	require.Len(t, res.Needed, 1)
	assert.Equal(t, "penne", res.Needed[0].Name)
}

func TestGenerateFromMealUpstreamFailure(t *testing.T) {
	t.Parallel()

	ai := fakeAssistantServer(t, "", http.StatusInternalServerError)
	svc := NewShoppingListService(&shoppingListRepoMock{}, &pantryMock{}, ai)

	_, err := svc.GenerateFromMeal(context.Background(), domain.FromMealRequest{
		MealDescription: "soup",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGenerateFromMealUnconfigured(t *testing.T) {
	t.Parallel()

	svc := NewShoppingListService(&shoppingListRepoMock{}, &pantryMock{}, &gemini.Client{})

	_, err := svc.GenerateFromMeal(context.Background(), domain.FromMealRequest{
		MealDescription: "soup",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrAIServiceDisabled)
}

func TestSuggestAlternativesParsesArray(t *testing.T) {
	t.Parallel()

	ai := fakeAssistantServer(t, "```json\n[\"greek yogurt\", \"cottage cheese\", \"silken tofu\"]\n```", http.StatusOK)
	svc := NewShoppingListService(&shoppingListRepoMock{}, &pantryMock{}, ai)

	res, err := svc.SuggestAlternatives(context.Background(), domain.SuggestAlternativesRequest{
		ItemName: "sour cream",
		Context:  "baking",
	})
	require.NoError(t, err)

	assert.Equal(t, "sour cream", res.ItemName)
	assert.Equal(t, []string{"greek yogurt", "cottage cheese", "silken tofu"}, res.Alternatives)
}

func TestGetActiveListCreatesOnFirstUse(t *testing.T) {
	t.Parallel()

	repo := &shoppingListRepoMock{}
	svc := NewShoppingListService(repo, &pantryMock{}, &gemini.Client{})

	res, err := svc.GetActiveList(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultShoppingListName, res.Name)
	assert.True(t, res.IsActive)
	assert.Empty(t, res.Items)
	assert.Equal(t, 1, repo.getCreated)
}
