package models

// Review rates the counterparty of a completed transaction. One review per
// (reservation, reviewer): buyer and seller each get one shot.
type Review struct {
	BaseModel
	ReservationID string `gorm:"not null;index:idx_reservation_reviewer,unique"`
	ReviewerID    string `gorm:"not null;index:idx_reservation_reviewer,unique"`
	RevieweeID    string `gorm:"not null;index"`
	Rating        Rating `gorm:"type:varchar(10);not null"`
	Comment       string `gorm:"type:text"`

	// Relations
	Reservation Reservation `gorm:"foreignKey:ReservationID"`
	Reviewer    User        `gorm:"foreignKey:ReviewerID"`
	Reviewee    User        `gorm:"foreignKey:RevieweeID"`
}
