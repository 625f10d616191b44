package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

type AdminService struct {
	userRepo repositories.UserRepository
	itemRepo repositories.ItemRepository
}

func NewAdminService(userRepo repositories.UserRepository, itemRepo repositories.ItemRepository) *AdminService {
	return &AdminService{userRepo: userRepo, itemRepo: itemRepo}
}

type UserListResponse struct {
	Users       []*dto.UserDTO `json:"users"`
	TotalUsers  int64          `json:"total_users"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
}

func (s *AdminService) ListUsers(db *gorm.DB, page, pageSize int) (*UserListResponse, error) {
	offset := (page - 1) * pageSize
	users, total, err := s.userRepo.FindAll(db, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dtos := make([]*dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserDTO(&users[i]))
	}
	return &UserListResponse{
		Users:       dtos,
		TotalUsers:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
	}, nil
}

type ItemListAdminResponse struct {
	Items       []*dto.ItemResponse `json:"items"`
	TotalItems  int64               `json:"total_items"`
	TotalPages  int                 `json:"total_pages"`
	CurrentPage int                 `json:"current_page"`
}

func (s *AdminService) ListItems(db *gorm.DB, page, pageSize int) (*ItemListAdminResponse, error) {
	offset := (page - 1) * pageSize
	items, total, err := s.itemRepo.FindAll(db, pageSize, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toItemResponse(&items[i], ""))
	}
	return &ItemListAdminResponse{
		Items:       responses,
		TotalItems:  total,
		TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		CurrentPage: page,
	}, nil
}

func (s *AdminService) DeleteUser(db *gorm.DB, userID string) error {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.Delete(db, userID); err != nil {
		return apperrors.DatabaseError(err, "admin", "Failed to delete user")
	}
	logger.Warn("user deleted by admin", "user_id", userID)
	return nil
}

func (s *AdminService) DeleteItem(db *gorm.DB, itemID string) error {
	if _, err := s.itemRepo.FindByID(db, itemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.itemRepo.Delete(db, itemID); err != nil {
		return apperrors.DatabaseError(err, "admin", "Failed to delete item")
	}
	logger.Warn("item deleted by admin", "item_id", itemID)
	return nil
}
