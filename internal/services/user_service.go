package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

type UserService struct {
	userRepo   repositories.UserRepository
	socialRepo repositories.SocialRepository
}

func NewUserService(userRepo repositories.UserRepository, socialRepo repositories.SocialRepository) *UserService {
	return &UserService{userRepo: userRepo, socialRepo: socialRepo}
}

func (s *UserService) GetMe(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return toUserDTO(user), nil
}

func (s *UserService) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.DatabaseError(err, "user", "Failed to update profile")
	}
	return toUserDTO(user), nil
}

// GetPublicProfile returns a user as others see them. currentUserID may be
// empty for anonymous viewers, in which case IsFollowing is always false.
func (s *UserService) GetPublicProfile(db *gorm.DB, userID, currentUserID string) (*dto.PublicProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	followers, err := s.socialRepo.CountFollowers(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	following, err := s.socialRepo.CountFollowing(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	isFollowing := false
	if currentUserID != "" && currentUserID != userID {
		if _, err := s.socialRepo.FindFollow(db, currentUserID, userID); err == nil {
			isFollowing = true
		} else if !errors.Is(err, repositories.ErrFollowNotFound) {
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.PublicProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Bio:            user.Bio,
		FollowersCount: followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
		CreatedAt:      user.CreatedAt,
	}, nil
}
