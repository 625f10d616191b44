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

type ReviewService struct {
	reviewRepo      repositories.ReviewRepository
	reservationRepo repositories.ReservationRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, reservationRepo repositories.ReservationRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, reservationRepo: reservationRepo}
}

// Create files a review for a completed transaction. Only the buyer or the
// seller may review, only once each, and the reviewee is always the other
// party.
func (s *ReviewService) Create(db *gorm.DB, reservationID, reviewerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	reservation, err := s.reservationRepo.FindByID(db, reservationID)
	if err != nil {
		if errors.Is(err, repositories.ErrReservationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	sellerID := reservation.Item.SellerID
	if reviewerID != reservation.BuyerID && reviewerID != sellerID {
		return nil, apperrors.ErrNotTransactionParty
	}
	if reservation.Status != models.ReservationStatusCompleted {
		return nil, apperrors.ErrReservationNotCompleted
	}

	exists, err := s.reviewRepo.ExistsByReservationAndReviewer(db, reservationID, reviewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyReviewed
	}

	revieweeID := sellerID
	if reviewerID == sellerID {
		revieweeID = reservation.BuyerID
	}

	review := &models.Review{
		ReservationID: reservationID,
		ReviewerID:    reviewerID,
		RevieweeID:    revieweeID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		// The composite unique index closes the race between the Exists
		// check and this insert.
		return nil, apperrors.ErrAlreadyReviewed
	}

	logger.Info("review created",
		"review_id", review.ID, "reservation_id", reservationID, "reviewer_id", reviewerID)

	created, err := s.reviewRepo.FindByID(db, review.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toReviewResponse(created), nil
}

// ListForUser returns the reviews a user has received, newest first.
func (s *ReviewService) ListForUser(db *gorm.DB, userID string) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByReviewee(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}
	return responses, nil
}

func toReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:            review.ID,
		ReservationID: review.ReservationID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		Reviewer: dto.ReviewerInfo{
			ID:       review.Reviewer.ID,
			Username: review.Reviewer.Username,
		},
		RevieweeID: review.RevieweeID,
		CreatedAt:  review.CreatedAt,
	}
}
