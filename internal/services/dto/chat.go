package dto

import "time"

type PostMessageRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

type ParticipantInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ConversationResponse struct {
	ID            string            `json:"id"`
	ReservationID string            `json:"reservation_id"`
	Participants  []ParticipantInfo `json:"participants"`
	Item          *ItemResponse     `json:"item,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type MessageResponse struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	Text           string          `json:"text"`
	Sender         ParticipantInfo `json:"sender"`
	CreatedAt      time.Time       `json:"created_at"`
}
