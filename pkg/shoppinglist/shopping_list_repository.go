package shoppinglist

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ShoppingListRepository interface {
		GetOrCreateActiveList(ctx context.Context, userID uuid.UUID) (*entities.ShoppingList, error)
		GetActiveListWithItems(ctx context.Context, userID uuid.UUID) (*entities.ShoppingList, error)
		AddItems(ctx context.Context, items []*entities.ShoppingListItem) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// GetOrCreateActiveList resolves the user's single active list. The insert
// relies on the partial unique index on (user_id) WHERE is_active, so a
// concurrent insert loses the race cleanly and the follow-up fetch returns
// the winner's row.
func (r *shoppingListRepository) GetOrCreateActiveList(ctx context.Context, userID uuid.UUID) (*entities.ShoppingList, error) {
	list := &entities.ShoppingList{
		UserID:   userID,
		Name:     domain.DefaultShoppingListName,
		IsActive: true,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(list).Error; err != nil {
		return nil, err
	}

	var active entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&active).Error; err != nil {
		return nil, err
	}

	return &active, nil
}

func (r *shoppingListRepository) GetActiveListWithItems(ctx context.Context, userID uuid.UUID) (*entities.ShoppingList, error) {
	list, err := r.GetOrCreateActiveList(ctx, userID)
	if err != nil {
		return nil, err
	}

	var full entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		First(&full, "id = ?", list.ID).Error; err != nil {
		return nil, err
	}

	return &full, nil
}

func (r *shoppingListRepository) AddItems(ctx context.Context, items []*entities.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}
