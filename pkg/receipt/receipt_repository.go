package receipt

import (
	"PantryTrack-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error
		GetReceipts(ctx context.Context, userID string, page, limit int) ([]*entities.Receipt, int64, error)
		GetSpendingAggregates(ctx context.Context, userID string, monthStart time.Time) (totalSpent float64, receiptCount int64, monthSpent float64, err error)
		DeleteReceipt(ctx context.Context, id string, userID string) error
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(items).Error
}

func (r *receiptRepository) GetReceipts(ctx context.Context, userID string, page, limit int) ([]*entities.Receipt, int64, error) {
	var receipts []*entities.Receipt
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Receipt{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Items").
		Offset(offset).Limit(limit).
		Order("receipt_date desc").
		Find(&receipts).Error; err != nil {
		return nil, 0, err
	}

	return receipts, count, nil
}

func (r *receiptRepository) GetSpendingAggregates(ctx context.Context, userID string, monthStart time.Time) (float64, int64, float64, error) {
	var totalSpent, monthSpent float64
	var receiptCount int64

	base := r.db.WithContext(ctx).Model(&entities.Receipt{}).Where("user_id = ?", userID)

	if err := base.Session(&gorm.Session{}).Count(&receiptCount).Error; err != nil {
		return 0, 0, 0, err
	}

	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalSpent).Error; err != nil {
		return 0, 0, 0, err
	}

	if err := base.Session(&gorm.Session{}).
		Where("receipt_date >= ?", monthStart).
		Select("COALESCE(SUM(total), 0)").
		Scan(&monthSpent).Error; err != nil {
		return 0, 0, 0, err
	}

	return totalSpent, receiptCount, monthSpent, nil
}

// DeleteReceipt scopes the delete by owner. A foreign or unknown id removes
// nothing and reports nothing; callers cannot probe for other users' rows.
func (r *receiptRepository) DeleteReceipt(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Receipt{}).Error
}
