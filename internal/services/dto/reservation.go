package dto

import (
	"time"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

type BuyerInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ReservationSummary is what sellers see in their pending-request inbox and
// buyers see in their reservation history.
type ReservationSummary struct {
	ID                 string                   `json:"id"`
	Status             models.ReservationStatus `json:"status"`
	PriceAtReservation int                      `json:"price_at_reservation"`
	Item               *ItemResponse            `json:"item,omitempty"`
	Buyer              *BuyerInfo               `json:"buyer,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
}

type CreateReservationResponse struct {
	ReservationID string `json:"reservation_id"`
}

type CreateOrderRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type OrderResponse struct {
	ID              string        `json:"id"`
	PriceAtPurchase int           `json:"price_at_purchase"`
	Item            *ItemResponse `json:"item,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
