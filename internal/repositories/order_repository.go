package repositories

import (
	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

type OrderRepository interface {
	Create(db *gorm.DB, order *models.Order) error
	FindByBuyer(db *gorm.DB, buyerID string) ([]models.Order, error)
}

type OrderRepositoryImpl struct{}

func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *OrderRepositoryImpl) FindByBuyer(db *gorm.DB, buyerID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Item").Preload("Item.Seller").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
