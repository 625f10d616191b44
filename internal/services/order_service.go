package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

// OrderService handles buy-now purchases: a single transition from available
// straight to sold_out, no approval round-trip.
type OrderService struct {
	orderRepo repositories.OrderRepository
	itemRepo  repositories.ItemRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, itemRepo repositories.ItemRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, itemRepo: itemRepo}
}

func (s *OrderService) Purchase(db *gorm.DB, itemID, buyerID string) (*dto.OrderResponse, error) {
	item, err := s.itemRepo.FindByID(db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if item.SellerID == buyerID {
		return nil, apperrors.ErrOwnItemReservation
	}
	if item.Status != models.ItemStatusAvailable {
		return nil, apperrors.ErrItemNotReservable
	}

	order := &models.Order{
		ItemID:          item.ID,
		BuyerID:         buyerID,
		PriceAtPurchase: item.Price,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		claimed, err := s.itemRepo.ClaimStatus(tx, item.ID, models.ItemStatusAvailable, models.ItemStatusSoldOut)
		if err != nil {
			return apperrors.DatabaseError(err, "order", "Failed to claim item")
		}
		if !claimed {
			return apperrors.ErrItemNotReservable
		}
		if err := s.orderRepo.Create(tx, order); err != nil {
			return apperrors.DatabaseError(err, "order", "Failed to create order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("order placed", "order_id", order.ID, "item_id", item.ID, "buyer_id", buyerID)

	return &dto.OrderResponse{
		ID:              order.ID,
		PriceAtPurchase: order.PriceAtPurchase,
		Item:            toItemResponse(item, buyerID),
		CreatedAt:       order.CreatedAt,
	}, nil
}

func (s *OrderService) ListForBuyer(db *gorm.DB, buyerID string) ([]*dto.OrderResponse, error) {
	orders, err := s.orderRepo.FindByBuyer(db, buyerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.OrderResponse, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		responses = append(responses, &dto.OrderResponse{
			ID:              o.ID,
			PriceAtPurchase: o.PriceAtPurchase,
			Item:            toItemResponse(&o.Item, buyerID),
			CreatedAt:       o.CreatedAt,
		})
	}
	return responses, nil
}
