package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

type SocialService struct {
	socialRepo repositories.SocialRepository
	itemRepo   repositories.ItemRepository
	userRepo   repositories.UserRepository
}

func NewSocialService(
	socialRepo repositories.SocialRepository,
	itemRepo repositories.ItemRepository,
	userRepo repositories.UserRepository,
) *SocialService {
	return &SocialService{socialRepo: socialRepo, itemRepo: itemRepo, userRepo: userRepo}
}

func (s *SocialService) LikeItem(db *gorm.DB, userID, itemID string) error {
	if _, err := s.itemRepo.FindByID(db, itemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.socialRepo.FindLike(db, userID, itemID); err == nil {
		return apperrors.ErrConflict("social", "Item is already liked")
	} else if !errors.Is(err, repositories.ErrLikeNotFound) {
		return apperrors.InternalError(err)
	}

	like := &models.Like{UserID: userID, ItemID: itemID}
	if err := s.socialRepo.CreateLike(db, like); err != nil {
		// A concurrent like hit the (user_id, item_id) unique index first.
		return apperrors.ErrConflict("social", "Item is already liked")
	}
	return nil
}

func (s *SocialService) UnlikeItem(db *gorm.DB, userID, itemID string) error {
	err := s.socialRepo.DeleteLike(db, userID, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrLikeNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SocialService) CommentOnItem(db *gorm.DB, userID, itemID string, req *dto.CommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.itemRepo.FindByID(db, itemID); err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{ItemID: itemID, UserID: userID, Text: req.Text}
	if err := s.socialRepo.CreateComment(db, comment); err != nil {
		return nil, apperrors.DatabaseError(err, "social", "Failed to create comment")
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CommentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		User:      dto.ParticipantInfo{ID: user.ID, Username: user.Username},
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *SocialService) ListComments(db *gorm.DB, itemID string) ([]*dto.CommentResponse, error) {
	comments, err := s.socialRepo.FindCommentsByItem(db, itemID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.CommentResponse, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		responses = append(responses, &dto.CommentResponse{
			ID:        c.ID,
			Text:      c.Text,
			User:      dto.ParticipantInfo{ID: c.User.ID, Username: c.User.Username},
			CreatedAt: c.CreatedAt,
		})
	}
	return responses, nil
}

func (s *SocialService) Follow(db *gorm.DB, followerID, followingID string) error {
	if followerID == followingID {
		return apperrors.ErrCannotFollowSelf
	}
	if _, err := s.userRepo.FindByID(db, followingID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if _, err := s.socialRepo.FindFollow(db, followerID, followingID); err == nil {
		return apperrors.ErrConflict("social", "Already following this user")
	} else if !errors.Is(err, repositories.ErrFollowNotFound) {
		return apperrors.InternalError(err)
	}

	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.socialRepo.CreateFollow(db, follow); err != nil {
		// A concurrent follow hit the unique pair index first.
		return apperrors.ErrConflict("social", "Already following this user")
	}
	return nil
}

func (s *SocialService) Unfollow(db *gorm.DB, followerID, followingID string) error {
	err := s.socialRepo.DeleteFollow(db, followerID, followingID)
	if err != nil {
		if errors.Is(err, repositories.ErrFollowNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
