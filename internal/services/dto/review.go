package dto

import (
	"time"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

type CreateReviewRequest struct {
	Rating  models.Rating `json:"rating" validate:"required,oneof=good normal bad"`
	Comment string        `json:"comment" validate:"omitempty,max=2000"`
}

type ReviewerInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ReviewResponse struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	Rating        models.Rating `json:"rating"`
	Comment       string        `json:"comment,omitempty"`
	Reviewer      ReviewerInfo  `json:"reviewer"`
	RevieweeID    string        `json:"reviewee_id"`
	CreatedAt     time.Time     `json:"created_at"`
}
