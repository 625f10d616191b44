package models

// Conversation is the message thread spawned when a reservation is approved.
// The unique index on ReservationID structurally prevents a second thread
// for the same reservation.
type Conversation struct {
	BaseModel
	ReservationID string `gorm:"not null;uniqueIndex"`

	// Relations
	Reservation  Reservation `gorm:"foreignKey:ReservationID"`
	Participants []User      `gorm:"many2many:conversation_participants"`
	Messages     []Message   `gorm:"foreignKey:ConversationID"`
}

type Message struct {
	BaseModel
	ConversationID string `gorm:"not null;index"`
	SenderID       string `gorm:"not null;index"`
	Text           string `gorm:"type:text;not null"`

	// Relations
	Sender User `gorm:"foreignKey:SenderID"`
}
