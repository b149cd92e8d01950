package inventory

import (
	"PantryTrack-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddInventoryItems(ctx context.Context, items []*entities.InventoryItem) error
		GetInventoryItems(ctx context.Context, userID string, location string, page, limit int) ([]*entities.InventoryItem, int64, error)
		GetUnconsumedItemNames(ctx context.Context, userID string) ([]string, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddInventoryItems(ctx context.Context, items []*entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *inventoryRepository) GetInventoryItems(ctx context.Context, userID string, location string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	var items []*entities.InventoryItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if location != "all" && location != "" {
		query = query.Where("location = ?", location)
	}

	if err := query.Model(&entities.InventoryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *inventoryRepository) GetUnconsumedItemNames(ctx context.Context, userID string) ([]string, error) {
	var names []string

	if err := r.db.WithContext(ctx).Model(&entities.InventoryItem{}).
		Where("user_id = ? AND is_consumed = ?", userID, false).
		Order("name asc").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}

	return names, nil
}
