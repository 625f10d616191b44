package models

type Like struct {
	BaseModel
	UserID string `gorm:"not null;index:idx_user_item,unique"`
	ItemID string `gorm:"not null;index:idx_user_item,unique"`

	// Relations
	User User `gorm:"foreignKey:UserID"`
	Item Item `gorm:"foreignKey:ItemID"`
}

type Comment struct {
	BaseModel
	ItemID string `gorm:"not null;index"`
	UserID string `gorm:"not null;index"`
	Text   string `gorm:"type:text;not null"`

	// Relations
	User User `gorm:"foreignKey:UserID"`
}

type Follow struct {
	BaseModel
	FollowerID  string `gorm:"not null;index:idx_follower_following,unique"`
	FollowingID string `gorm:"not null;index:idx_follower_following,unique"`

	// Relations
	Follower  User `gorm:"foreignKey:FollowerID"`
	Following User `gorm:"foreignKey:FollowingID"`
}
