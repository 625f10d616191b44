package models

import "time"

type User struct {
	BaseModel
	Username          string   `gorm:"not null"`
	Email             string   `gorm:"uniqueIndex;not null"`
	PasswordHash      string   `gorm:"not null"`
	Bio               string   `gorm:"type:text"`
	Role              UserRole `gorm:"type:varchar(20);default:'user'"`
	IsVerified        bool     `gorm:"default:false"`
	VerificationToken string

	// Relations
	Items         []Item         `gorm:"foreignKey:SellerID"`
	Reservations  []Reservation  `gorm:"foreignKey:BuyerID"`
	Likes         []Like         `gorm:"foreignKey:UserID"`
	Following     []Follow       `gorm:"foreignKey:FollowerID"`
	Followers     []Follow       `gorm:"foreignKey:FollowingID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
