package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

var ErrItemNotFound = errors.New("item not found")

type ItemRepository interface {
	Create(db *gorm.DB, item *models.Item) error
	FindByID(db *gorm.DB, id string) (*models.Item, error)
	Update(db *gorm.DB, item *models.Item) error
	Delete(db *gorm.DB, id string) error
	FindAll(db *gorm.DB, limit, offset int) ([]models.Item, int64, error)
	FindBySeller(db *gorm.DB, sellerID string) ([]models.Item, error)
	FindByCategory(db *gorm.DB, category string, limit, offset int) ([]models.Item, int64, error)
	Search(db *gorm.DB, normalizedQuery string) ([]models.Item, error)

	// ClaimStatus moves an item from one status to another with a single
	// conditional UPDATE. It returns false when the item was not in the
	// expected status, which is how concurrent claims lose the race.
	ClaimStatus(db *gorm.DB, itemID string, from, to models.ItemStatus) (bool, error)
}

type ItemRepositoryImpl struct{}

func NewItemRepository() ItemRepository {
	return &ItemRepositoryImpl{}
}

func (r *ItemRepositoryImpl) Create(db *gorm.DB, item *models.Item) error {
	return db.Create(item).Error
}

func (r *ItemRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Item, error) {
	var item models.Item
	err := db.Preload("Seller").Preload("Likes").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepositoryImpl) Update(db *gorm.DB, item *models.Item) error {
	return db.Save(item).Error
}

func (r *ItemRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	if err := db.Model(&models.Item{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Seller").Preload("Likes").
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *ItemRepositoryImpl) FindBySeller(db *gorm.DB, sellerID string) ([]models.Item, error) {
	var items []models.Item
	err := db.Preload("Seller").Preload("Likes").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) FindByCategory(db *gorm.DB, category string, limit, offset int) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	base := db.Model(&models.Item{}).Where("category = ?", category)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Seller").Preload("Likes").
		Where("category = ?", category).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *ItemRepositoryImpl) Search(db *gorm.DB, normalizedQuery string) ([]models.Item, error) {
	var items []models.Item
	err := db.Preload("Seller").Preload("Likes").
		Where("search_text LIKE ?", "%"+normalizedQuery+"%").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepositoryImpl) ClaimStatus(db *gorm.DB, itemID string, from, to models.ItemStatus) (bool, error) {
	result := db.Model(&models.Item{}).
		Where("id = ? AND status = ?", itemID, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
