package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	ExistsByReservationAndReviewer(db *gorm.DB, reservationID, reviewerID string) (bool, error)
	FindByReviewee(db *gorm.DB, revieweeID string) ([]models.Review, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("Reviewer").Preload("Reviewee").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ExistsByReservationAndReviewer(db *gorm.DB, reservationID, reviewerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Review{}).
		Where("reservation_id = ? AND reviewer_id = ?", reservationID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) FindByReviewee(db *gorm.DB, revieweeID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Reviewer").
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
