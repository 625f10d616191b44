package services

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/search"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

type ItemService struct {
	itemRepo   repositories.ItemRepository
	socialRepo repositories.SocialRepository
}

func NewItemService(itemRepo repositories.ItemRepository, socialRepo repositories.SocialRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo, socialRepo: socialRepo}
}

func (s *ItemService) Create(db *gorm.DB, sellerID string, req *dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item := &models.Item{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Status:      models.ItemStatusAvailable,
		SellerID:    sellerID,
		SearchText:  search.Key(req.Title, req.Description),
	}
	if len(req.ImageURLs) > 0 {
		raw, err := json.Marshal(req.ImageURLs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		item.ImageURLs = datatypes.JSON(raw)
	}

	if err := s.itemRepo.Create(db, item); err != nil {
		return nil, apperrors.DatabaseError(err, "item", "Failed to create item")
	}

	logger.Info("item created", "item_id", item.ID, "seller_id", sellerID)

	created, err := s.itemRepo.FindByID(db, item.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toItemResponse(created, sellerID), nil
}

// Update applies the provided fields only. Price and text changes recompute
// the search key; status is never writable through this path.
func (s *ItemService) Update(db *gorm.DB, itemID, actorID string, req *dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.findItem(db, itemID)
	if err != nil {
		return nil, err
	}
	if item.SellerID != actorID {
		return nil, apperrors.ErrNotItemSeller
	}
	if item.Status != models.ItemStatusAvailable {
		return nil, apperrors.ErrInvalidStatus("item",
			"Items under reservation or sold out cannot be edited")
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.ImageURLs != nil {
		raw, err := json.Marshal(*req.ImageURLs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		item.ImageURLs = datatypes.JSON(raw)
	}
	item.SearchText = search.Key(item.Title, item.Description)

	if err := s.itemRepo.Update(db, item); err != nil {
		return nil, apperrors.DatabaseError(err, "item", "Failed to update item")
	}
	return toItemResponse(item, actorID), nil
}

func (s *ItemService) Delete(db *gorm.DB, itemID, actorID string, isAdmin bool) error {
	item, err := s.findItem(db, itemID)
	if err != nil {
		return err
	}
	if item.SellerID != actorID && !isAdmin {
		return apperrors.ErrNotItemSeller
	}
	if item.Status == models.ItemStatusPendingReservation || item.Status == models.ItemStatusReserved {
		return apperrors.ErrInvalidStatus("item",
			"Items with an active reservation cannot be deleted")
	}
	if err := s.itemRepo.Delete(db, itemID); err != nil {
		return apperrors.DatabaseError(err, "item", "Failed to delete item")
	}
	logger.Info("item deleted", "item_id", itemID, "actor_id", actorID)
	return nil
}

func (s *ItemService) GetByID(db *gorm.DB, itemID, currentUserID string) (*dto.ItemResponse, error) {
	item, err := s.findItem(db, itemID)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, currentUserID), nil
}

func (s *ItemService) List(db *gorm.DB, page, pageSize int, currentUserID string) (*dto.ItemListResponse, error) {
	offset := (page - 1) * pageSize
	items, total, err := s.itemRepo.FindAll(db, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildItemList(items, total, page, pageSize, currentUserID), nil
}

func (s *ItemService) ListByCategory(db *gorm.DB, category string, page, pageSize int, currentUserID string) (*dto.ItemListResponse, error) {
	offset := (page - 1) * pageSize
	items, total, err := s.itemRepo.FindByCategory(db, category, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildItemList(items, total, page, pageSize, currentUserID), nil
}

func (s *ItemService) ListBySeller(db *gorm.DB, sellerID, currentUserID string) ([]*dto.ItemResponse, error) {
	items, err := s.itemRepo.FindBySeller(db, sellerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i], currentUserID))
	}
	return responses, nil
}

// Search normalizes the query the same way search keys are built at write
// time, so katakana, full-width and mixed-case queries all match.
func (s *ItemService) Search(db *gorm.DB, query, currentUserID string) ([]*dto.ItemResponse, error) {
	normalized := strings.TrimSpace(search.Normalize(query))
	if normalized == "" {
		return []*dto.ItemResponse{}, nil
	}
	items, err := s.itemRepo.Search(db, normalized)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i], currentUserID))
	}
	return responses, nil
}

func (s *ItemService) ListLikedBy(db *gorm.DB, userID string) ([]*dto.ItemResponse, error) {
	items, err := s.socialRepo.FindLikedItems(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i], userID))
	}
	return responses, nil
}

func (s *ItemService) findItem(db *gorm.DB, itemID string) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func buildItemList(items []models.Item, total int64, page, pageSize int, currentUserID string) *dto.ItemListResponse {
	responses := make([]*dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i], currentUserID))
	}
	return &dto.ItemListResponse{
		Items:       responses,
		TotalItems:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
	}
}

func toItemResponse(item *models.Item, currentUserID string) *dto.ItemResponse {
	var imageURLs []string
	if len(item.ImageURLs) > 0 {
		_ = json.Unmarshal(item.ImageURLs, &imageURLs)
	}
	if imageURLs == nil {
		imageURLs = []string{}
	}

	isLiked := false
	for _, like := range item.Likes {
		if like.UserID == currentUserID {
			isLiked = true
			break
		}
	}

	return &dto.ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Status:      item.Status,
		Category:    item.Category,
		ImageURLs:   imageURLs,
		Seller: dto.SellerInfo{
			ID:       item.Seller.ID,
			Username: item.Seller.Username,
		},
		LikeCount: len(item.Likes),
		IsLiked:   isLiked,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
