package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

var ErrReservationNotFound = errors.New("reservation not found")

type ReservationRepository interface {
	Create(db *gorm.DB, reservation *models.Reservation) error
	FindByID(db *gorm.DB, id string) (*models.Reservation, error)
	FindPendingBySeller(db *gorm.DB, sellerID string) ([]models.Reservation, error)
	FindByBuyer(db *gorm.DB, buyerID string) ([]models.Reservation, error)

	// ClaimStatus is the conditional-update counterpart of
	// ItemRepository.ClaimStatus for the reservation row.
	ClaimStatus(db *gorm.DB, reservationID string, from, to models.ReservationStatus) (bool, error)
}

type ReservationRepositoryImpl struct{}

func NewReservationRepository() ReservationRepository {
	return &ReservationRepositoryImpl{}
}

func (r *ReservationRepositoryImpl) Create(db *gorm.DB, reservation *models.Reservation) error {
	return db.Create(reservation).Error
}

func (r *ReservationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := db.Preload("Item").Preload("Item.Seller").Preload("Buyer").
		First(&reservation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepositoryImpl) FindPendingBySeller(db *gorm.DB, sellerID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.Preload("Item").Preload("Buyer").
		Joins("JOIN items ON items.id = reservations.item_id").
		Where("items.seller_id = ? AND reservations.status = ?", sellerID, models.ReservationStatusPendingApproval).
		Order("reservations.created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepositoryImpl) FindByBuyer(db *gorm.DB, buyerID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.Preload("Item").Preload("Item.Seller").Preload("Item.Likes").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepositoryImpl) ClaimStatus(db *gorm.DB, reservationID string, from, to models.ReservationStatus) (bool, error) {
	result := db.Model(&models.Reservation{}).
		Where("id = ? AND status = ?", reservationID, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
