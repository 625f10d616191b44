package models

type Reservation struct {
	BaseModel
	ItemID  string `gorm:"not null;index"`
	BuyerID string `gorm:"not null;index"`

	// Snapshot of the item price at request time. Never recomputed, even if
	// the item price changes later.
	PriceAtReservation int `gorm:"not null"`

	Status ReservationStatus `gorm:"type:varchar(30);default:'pending_approval';index"`

	// Relations
	Item  Item `gorm:"foreignKey:ItemID"`
	Buyer User `gorm:"foreignKey:BuyerID"`
}

// Order is the buy-now counterpart of a Reservation: the item is sold in a
// single step with no approval round-trip.
type Order struct {
	BaseModel
	ItemID          string `gorm:"not null;index"`
	BuyerID         string `gorm:"not null;index"`
	PriceAtPurchase int    `gorm:"not null"`

	// Relations
	Item  Item `gorm:"foreignKey:ItemID"`
	Buyer User `gorm:"foreignKey:BuyerID"`
}
