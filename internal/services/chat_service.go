package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

// ChatService guards every conversation operation behind a participant
// check. Non-participants get a 403 whether or not the conversation exists.
type ChatService struct {
	conversationRepo repositories.ConversationRepository
}

func NewChatService(conversationRepo repositories.ConversationRepository) *ChatService {
	return &ChatService{conversationRepo: conversationRepo}
}

func (s *ChatService) ListConversations(db *gorm.DB, userID string) ([]*dto.ConversationResponse, error) {
	conversations, err := s.conversationRepo.FindByParticipant(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.ConversationResponse, 0, len(conversations))
	for i := range conversations {
		responses = append(responses, toConversationResponse(&conversations[i], userID))
	}
	return responses, nil
}

func (s *ChatService) GetConversation(db *gorm.DB, conversationID, userID string) (*dto.ConversationResponse, error) {
	conversation, err := s.authorizeParticipant(db, conversationID, userID)
	if err != nil {
		return nil, err
	}
	return toConversationResponse(conversation, userID), nil
}

func (s *ChatService) ListMessages(db *gorm.DB, conversationID, userID string) ([]*dto.MessageResponse, error) {
	if _, err := s.authorizeParticipant(db, conversationID, userID); err != nil {
		return nil, err
	}
	messages, err := s.conversationRepo.FindMessages(db, conversationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	responses := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toMessageResponse(&messages[i]))
	}
	return responses, nil
}

func (s *ChatService) PostMessage(db *gorm.DB, conversationID, senderID string, req *dto.PostMessageRequest) (*dto.MessageResponse, error) {
	if _, err := s.authorizeParticipant(db, conversationID, senderID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           req.Text,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.conversationRepo.CreateMessage(tx, message); err != nil {
			return apperrors.DatabaseError(err, "chat", "Failed to store message")
		}
		return s.conversationRepo.Touch(tx, conversationID)
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.conversationRepo.FindMessageByID(db, message.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toMessageResponse(stored), nil
}

// ParticipantIDs is used by the websocket hub to fan a message out to the
// conversation's members only.
func (s *ChatService) ParticipantIDs(db *gorm.DB, conversationID string) ([]string, error) {
	return s.conversationRepo.ParticipantIDs(db, conversationID)
}

func (s *ChatService) authorizeParticipant(db *gorm.DB, conversationID, userID string) (*models.Conversation, error) {
	conversation, err := s.conversationRepo.FindByID(db, conversationID)
	if err != nil {
		if errors.Is(err, repositories.ErrConversationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	for _, participant := range conversation.Participants {
		if participant.ID == userID {
			return conversation, nil
		}
	}
	return nil, apperrors.ErrConversationAccessDenied
}

func toConversationResponse(conversation *models.Conversation, currentUserID string) *dto.ConversationResponse {
	participants := make([]dto.ParticipantInfo, 0, len(conversation.Participants))
	for _, p := range conversation.Participants {
		participants = append(participants, dto.ParticipantInfo{ID: p.ID, Username: p.Username})
	}
	response := &dto.ConversationResponse{
		ID:            conversation.ID,
		ReservationID: conversation.ReservationID,
		Participants:  participants,
		UpdatedAt:     conversation.UpdatedAt,
	}
	if conversation.Reservation.Item.ID != "" {
		response.Item = toItemResponse(&conversation.Reservation.Item, currentUserID)
	}
	return response
}

func toMessageResponse(message *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:             message.ID,
		ConversationID: message.ConversationID,
		Text:           message.Text,
		Sender: dto.ParticipantInfo{
			ID:       message.Sender.ID,
			Username: message.Sender.Username,
		},
		CreatedAt: message.CreatedAt,
	}
}
