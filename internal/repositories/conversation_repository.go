package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
)

var ErrConversationNotFound = errors.New("conversation not found")

type ConversationRepository interface {
	Create(db *gorm.DB, conversation *models.Conversation) error
	FindByID(db *gorm.DB, id string) (*models.Conversation, error)
	FindByReservation(db *gorm.DB, reservationID string) (*models.Conversation, error)
	FindByParticipant(db *gorm.DB, userID string) ([]models.Conversation, error)
	AddParticipants(db *gorm.DB, conversationID string, userIDs ...string) error
	IsParticipant(db *gorm.DB, conversationID, userID string) (bool, error)
	ParticipantIDs(db *gorm.DB, conversationID string) ([]string, error)
	Touch(db *gorm.DB, conversationID string) error

	CreateMessage(db *gorm.DB, message *models.Message) error
	FindMessageByID(db *gorm.DB, id string) (*models.Message, error)
	FindMessages(db *gorm.DB, conversationID string) ([]models.Message, error)
}

type ConversationRepositoryImpl struct{}

func NewConversationRepository() ConversationRepository {
	return &ConversationRepositoryImpl{}
}

func (r *ConversationRepositoryImpl) Create(db *gorm.DB, conversation *models.Conversation) error {
	return db.Create(conversation).Error
}

func (r *ConversationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := db.Preload("Participants").Preload("Reservation").Preload("Reservation.Item").
		First(&conversation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *ConversationRepositoryImpl) FindByReservation(db *gorm.DB, reservationID string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := db.Preload("Participants").
		Where("reservation_id = ?", reservationID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *ConversationRepositoryImpl) FindByParticipant(db *gorm.DB, userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := db.Preload("Participants").Preload("Reservation").Preload("Reservation.Item").
		Joins("JOIN conversation_participants cp ON cp.conversation_id = conversations.id").
		Where("cp.user_id = ?", userID).
		Order("conversations.updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}

func (r *ConversationRepositoryImpl) AddParticipants(db *gorm.DB, conversationID string, userIDs ...string) error {
	rows := make([]map[string]interface{}, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, map[string]interface{}{
			"conversation_id": conversationID,
			"user_id":         userID,
		})
	}
	return db.Table("conversation_participants").Create(rows).Error
}

func (r *ConversationRepositoryImpl) IsParticipant(db *gorm.DB, conversationID, userID string) (bool, error) {
	var count int64
	err := db.Table("conversation_participants").
		Where("conversation_id = ? AND user_id = ?", conversationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ConversationRepositoryImpl) ParticipantIDs(db *gorm.DB, conversationID string) ([]string, error) {
	var ids []string
	err := db.Table("conversation_participants").
		Where("conversation_id = ?", conversationID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// Touch bumps updated_at so the conversation sorts to the top of listings
// after a new message.
func (r *ConversationRepositoryImpl) Touch(db *gorm.DB, conversationID string) error {
	return db.Model(&models.Conversation{}).
		Where("id = ?", conversationID).
		Update("updated_at", time.Now()).Error
}

func (r *ConversationRepositoryImpl) CreateMessage(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *ConversationRepositoryImpl) FindMessageByID(db *gorm.DB, id string) (*models.Message, error) {
	var message models.Message
	err := db.Preload("Sender").First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *ConversationRepositoryImpl) FindMessages(db *gorm.DB, conversationID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
