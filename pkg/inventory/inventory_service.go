package inventory

import (
	"PantryTrack-Backend/domain"
	"PantryTrack-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	InventoryService interface {
		AddItems(ctx context.Context, req domain.AddInventoryItemsRequest, userID string) ([]domain.InventoryItemResponse, error)
		GetItems(ctx context.Context, userID string, location string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

func (s *inventoryService) AddItems(ctx context.Context, req domain.AddInventoryItemsRequest, userID string) ([]domain.InventoryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	items := make([]*entities.InventoryItem, 0, len(req.Items))
	for _, item := range req.Items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		purchaseDate := now
		if item.PurchaseDate != "" {
			if parsed, err := time.Parse("2006-01-02", item.PurchaseDate); err == nil {
				purchaseDate = parsed
			}
		}

		expiryDate := now
		if item.ExpiryDate != "" {
			if parsed, err := time.Parse("2006-01-02", item.ExpiryDate); err == nil {
				expiryDate = parsed
			}
		}

		items = append(items, &entities.InventoryItem{
			ID:           uuid.New(),
			UserID:       userUUID,
			Name:         item.Name,
			Category:     item.Category,
			Quantity:     quantity,
			Unit:         item.Unit,
			PurchaseDate: purchaseDate,
			ExpiryDate:   expiryDate,
			Location:     item.Location,
		})
	}

	if err := s.inventoryRepository.AddInventoryItems(ctx, items); err != nil {
		return nil, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

func (s *inventoryService) GetItems(ctx context.Context, userID string, location string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetInventoryItems(ctx, userID, location, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.InventoryItemResponse
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, count, nil
}

func toItemResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		Category:     item.Category,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		PurchaseDate: item.PurchaseDate,
		ExpiryDate:   item.ExpiryDate,
		Location:     item.Location,
		IsConsumed:   item.IsConsumed,
		CreatedAt:    item.CreatedAt,
	}
}
