package eatingout

import (
	"PantryTrack-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	EatingOutRepository interface {
		CreateLog(ctx context.Context, log *entities.EatingOutLog) error
		GetRecentLogs(ctx context.Context, userID string, limit int) ([]*entities.EatingOutLog, error)
	}

	eatingOutRepository struct {
		db *gorm.DB
	}
)

func NewEatingOutRepository(db *gorm.DB) EatingOutRepository {
	return &eatingOutRepository{db: db}
}

func (r *eatingOutRepository) CreateLog(ctx context.Context, log *entities.EatingOutLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *eatingOutRepository) GetRecentLogs(ctx context.Context, userID string, limit int) ([]*entities.EatingOutLog, error) {
	var logs []*entities.EatingOutLog

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("eaten_at desc").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}
