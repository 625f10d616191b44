package dto

import (
	"time"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

type CreateItemRequest struct {
	Title       string   `json:"title" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Price       int      `json:"price" validate:"min=0"`
	Category    string   `json:"category" validate:"omitempty,max=50"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,max=5,dive,url"`
}

type UpdateItemRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string   `json:"description,omitempty"`
	Price       *int      `json:"price,omitempty" validate:"omitempty,min=0"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=50"`
	ImageURLs   *[]string `json:"image_urls,omitempty" validate:"omitempty,max=5,dive,url"`
}

type SellerInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ItemResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       int               `json:"price"`
	Status      models.ItemStatus `json:"status"`
	Category    string            `json:"category,omitempty"`
	ImageURLs   []string          `json:"image_urls"`
	Seller      SellerInfo        `json:"seller"`
	LikeCount   int               `json:"like_count"`
	IsLiked     bool              `json:"is_liked_by_current_user"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ItemListResponse struct {
	Items       []*ItemResponse `json:"items"`
	TotalItems  int64           `json:"total_items"`
	TotalPages  int             `json:"total_pages"`
	CurrentPage int             `json:"current_page"`
}
