package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

var (
	ErrLikeNotFound   = errors.New("like not found")
	ErrFollowNotFound = errors.New("follow not found")
)

type SocialRepository interface {
	// Likes
	CreateLike(db *gorm.DB, like *models.Like) error
	FindLike(db *gorm.DB, userID, itemID string) (*models.Like, error)
	DeleteLike(db *gorm.DB, userID, itemID string) error
	FindLikedItems(db *gorm.DB, userID string) ([]models.Item, error)

	// Comments
	CreateComment(db *gorm.DB, comment *models.Comment) error
	FindCommentsByItem(db *gorm.DB, itemID string) ([]models.Comment, error)

	// Follows
	CreateFollow(db *gorm.DB, follow *models.Follow) error
	FindFollow(db *gorm.DB, followerID, followingID string) (*models.Follow, error)
	DeleteFollow(db *gorm.DB, followerID, followingID string) error
	CountFollowers(db *gorm.DB, userID string) (int64, error)
	CountFollowing(db *gorm.DB, userID string) (int64, error)
}

type SocialRepositoryImpl struct{}

func NewSocialRepository() SocialRepository {
	return &SocialRepositoryImpl{}
}

func (r *SocialRepositoryImpl) CreateLike(db *gorm.DB, like *models.Like) error {
	return db.Create(like).Error
}

func (r *SocialRepositoryImpl) FindLike(db *gorm.DB, userID, itemID string) (*models.Like, error) {
	var like models.Like
	err := db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLikeNotFound
		}
		return nil, err
	}
	return &like, nil
}

func (r *SocialRepositoryImpl) DeleteLike(db *gorm.DB, userID, itemID string) error {
	result := db.Delete(&models.Like{}, "user_id = ? AND item_id = ?", userID, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLikeNotFound
	}
	return nil
}

func (r *SocialRepositoryImpl) FindLikedItems(db *gorm.DB, userID string) ([]models.Item, error) {
	var items []models.Item
	err := db.Preload("Seller").Preload("Likes").
		Joins("JOIN likes ON likes.item_id = items.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *SocialRepositoryImpl) CreateComment(db *gorm.DB, comment *models.Comment) error {
	return db.Create(comment).Error
}

func (r *SocialRepositoryImpl) FindCommentsByItem(db *gorm.DB, itemID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.Preload("User").
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *SocialRepositoryImpl) CreateFollow(db *gorm.DB, follow *models.Follow) error {
	return db.Create(follow).Error
}

func (r *SocialRepositoryImpl) FindFollow(db *gorm.DB, followerID, followingID string) (*models.Follow, error) {
	var follow models.Follow
	err := db.Where("follower_id = ? AND following_id = ?", followerID, followingID).First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFollowNotFound
		}
		return nil, err
	}
	return &follow, nil
}

func (r *SocialRepositoryImpl) DeleteFollow(db *gorm.DB, followerID, followingID string) error {
	result := db.Delete(&models.Follow{}, "follower_id = ? AND following_id = ?", followerID, followingID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (r *SocialRepositoryImpl) CountFollowers(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *SocialRepositoryImpl) CountFollowing(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
