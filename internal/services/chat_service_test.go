package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

// approvedConversation sets up an approved reservation between the given
// seller and buyer and returns the spawned conversation's ID.
func approvedConversation(t *testing.T, db *gorm.DB, seller, buyer *models.User, itemTitle string) string {
	t.Helper()

	reservations := newReservationService()
	item := createTestItem(t, db, seller, itemTitle, 500)
	created, err := reservations.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)
	require.NoError(t, reservations.Approve(db, created.ReservationID, seller.ID))

	var conversation models.Conversation
	require.NoError(t, db.First(&conversation, "reservation_id = ?", created.ReservationID).Error)
	return conversation.ID
}

func TestPostAndListMessages(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	conversationID := approvedConversation(t, db, seller, buyer, "Cabbage")

	first, err := svc.PostMessage(db, conversationID, buyer.ID, &dto.PostMessageRequest{Text: "Is Saturday pickup ok?"})
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, first.Sender.ID)
	assert.Equal(t, "buyer", first.Sender.Username)

	_, err = svc.PostMessage(db, conversationID, seller.ID, &dto.PostMessageRequest{Text: "Saturday works"})
	require.NoError(t, err)

	messages, err := svc.ListMessages(db, conversationID, buyer.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Is Saturday pickup ok?", messages[0].Text)
	assert.Equal(t, "Saturday works", messages[1].Text)
}

func TestConversationParticipantsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	stranger := createTestUser(t, db, "stranger")
	conversationID := approvedConversation(t, db, seller, buyer, "Cabbage")

	_, err := svc.GetConversation(db, conversationID, stranger.ID)
	requireAppCode(t, err, apperrors.CodeForbidden)

	_, err = svc.ListMessages(db, conversationID, stranger.ID)
	requireAppCode(t, err, apperrors.CodeForbidden)

	_, err = svc.PostMessage(db, conversationID, stranger.ID, &dto.PostMessageRequest{Text: "hello"})
	requireAppCode(t, err, apperrors.CodeForbidden)

	conversations, err := svc.ListConversations(db, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestGetConversationIncludesItem(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	conversationID := approvedConversation(t, db, seller, buyer, "Cabbage")

	conversation, err := svc.GetConversation(db, conversationID, buyer.ID)
	require.NoError(t, err)
	require.NotNil(t, conversation.Item)
	assert.Equal(t, "Cabbage", conversation.Item.Title)
	assert.Len(t, conversation.Participants, 2)
}

func TestMissingConversation(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService()

	buyer := createTestUser(t, db, "buyer")

	_, err := svc.GetConversation(db, "no-such-conversation", buyer.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestNewMessageBumpsConversation(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")

	older := approvedConversation(t, db, seller, buyer, "Cabbage")
	time.Sleep(10 * time.Millisecond)
	newer := approvedConversation(t, db, seller, buyer, "Daikon")

	conversations, err := svc.ListConversations(db, buyer.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, newer, conversations[0].ID)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.PostMessage(db, older, buyer.ID, &dto.PostMessageRequest{Text: "still there?"})
	require.NoError(t, err)

	conversations, err = svc.ListConversations(db, buyer.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, older, conversations[0].ID)
}

func TestParticipantIDs(t *testing.T) {
	db := newTestDB(t)
	svc := newChatService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	conversationID := approvedConversation(t, db, seller, buyer, "Cabbage")

	ids, err := svc.ParticipantIDs(db, conversationID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{seller.ID, buyer.ID}, ids)
}
