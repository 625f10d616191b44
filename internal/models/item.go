package models

import "gorm.io/datatypes"

type Item struct {
	BaseModel
	Title       string     `gorm:"size:100;not null"`
	Description string     `gorm:"type:text;not null"`
	Price       int        `gorm:"not null;check:price >= 0"`
	Status      ItemStatus `gorm:"type:varchar(30);default:'available';index"`
	Category    string     `gorm:"size:50;index"`
	ImageURLs   datatypes.JSON

	// SearchText holds the kana-normalized concatenation of title and
	// description, recomputed on every write by the item service.
	SearchText string `gorm:"type:text;index"`

	SellerID string `gorm:"not null;index"`

	// Relations
	Seller   User      `gorm:"foreignKey:SellerID"`
	Likes    []Like    `gorm:"foreignKey:ItemID"`
	Comments []Comment `gorm:"foreignKey:ItemID"`
}
