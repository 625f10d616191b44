package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

func requireAppCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestRequestReservation(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "tomatoes", 500)

	resp, err := svc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)
	require.NotEmpty(t, resp.ReservationID)

	var updated models.Item
	require.NoError(t, db.First(&updated, "id = ?", item.ID).Error)
	assert.Equal(t, models.ItemStatusPendingReservation, updated.Status)

	var reservation models.Reservation
	require.NoError(t, db.First(&reservation, "id = ?", resp.ReservationID).Error)
	assert.Equal(t, models.ReservationStatusPendingApproval, reservation.Status)
	assert.Equal(t, 500, reservation.PriceAtReservation)
	assert.Equal(t, buyer.ID, reservation.BuyerID)
}

func TestRequestReservationSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "cucumbers", 300)

	resp, err := svc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)

	// A later price change must not touch the snapshot.
	require.NoError(t, db.Model(&models.Item{}).Where("id = ?", item.ID).Update("price", 900).Error)

	var reservation models.Reservation
	require.NoError(t, db.First(&reservation, "id = ?", resp.ReservationID).Error)
	assert.Equal(t, 300, reservation.PriceAtReservation)
}

func TestRequestReservationOwnItem(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	item := createTestItem(t, db, seller, "carrots", 200)

	_, err := svc.Request(db, item.ID, seller.ID)
	requireAppCode(t, err, apperrors.CodeForbidden)
}

func TestRequestReservationUnavailableItem(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer1 := createTestUser(t, db, "buyer1")
	buyer2 := createTestUser(t, db, "buyer2")
	item := createTestItem(t, db, seller, "pumpkin", 800)

	_, err := svc.Request(db, item.ID, buyer1.ID)
	require.NoError(t, err)

	// The item is now pending_reservation; a second request loses.
	_, err = svc.Request(db, item.ID, buyer2.ID)
	requireAppCode(t, err, apperrors.CodeConflict)
}

func TestRequestReservationMissingItem(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()
	buyer := createTestUser(t, db, "buyer")

	_, err := svc.Request(db, "no-such-item", buyer.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestApproveSpawnsConversation(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "beans", 400)

	resp, err := svc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Approve(db, resp.ReservationID, seller.ID))

	var reservation models.Reservation
	require.NoError(t, db.First(&reservation, "id = ?", resp.ReservationID).Error)
	assert.Equal(t, models.ReservationStatusReserved, reservation.Status)

	var updated models.Item
	require.NoError(t, db.First(&updated, "id = ?", item.ID).Error)
	assert.Equal(t, models.ItemStatusReserved, updated.Status)

	var conversation models.Conversation
	require.NoError(t, db.Preload("Participants").
		First(&conversation, "reservation_id = ?", resp.ReservationID).Error)
	require.Len(t, conversation.Participants, 2)

	ids := []string{conversation.Participants[0].ID, conversation.Participants[1].ID}
	assert.Contains(t, ids, seller.ID)
	assert.Contains(t, ids, buyer.ID)
}

func TestApproveTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "leeks", 150)

	resp, err := svc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Approve(db, resp.ReservationID, seller.ID))

	// Approve is not idempotent: the second call must fail loudly.
	err = svc.Approve(db, resp.ReservationID, seller.ID)
	requireAppCode(t, err, apperrors.CodeConflict)

	var conversations int64
	require.NoError(t, db.Model(&models.Conversation{}).
		Where("reservation_id = ?", resp.ReservationID).Count(&conversations).Error)
	assert.EqualValues(t, 1, conversations)
}

func TestApproveByNonSellerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	stranger := createTestUser(t, db, "stranger")
	item := createTestItem(t, db, seller, "radish", 100)

	resp, err := svc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)

	requireAppCode(t, svc.Approve(db, resp.ReservationID, stranger.ID), apperrors.CodeForbidden)
	requireAppCode(t, svc.Approve(db, resp.ReservationID, buyer.ID), apperrors.CodeForbidden)
}

func TestRejectReleasesItem(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "spinach", 250)

	resp, err := svc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Reject(db, resp.ReservationID, seller.ID))

	var reservation models.Reservation
	require.NoError(t, db.First(&reservation, "id = ?", resp.ReservationID).Error)
	assert.Equal(t, models.ReservationStatusRejected, reservation.Status)

	var updated models.Item
	require.NoError(t, db.First(&updated, "id = ?", item.ID).Error)
	assert.Equal(t, models.ItemStatusAvailable, updated.Status)

	// No conversation for rejected requests.
	var conversations int64
	require.NoError(t, db.Model(&models.Conversation{}).Count(&conversations).Error)
	assert.EqualValues(t, 0, conversations)

	// The item is claimable again.
	buyer2 := createTestUser(t, db, "buyer2")
	_, err = svc.Request(db, item.ID, buyer2.ID)
	require.NoError(t, err)
}

func TestCompleteLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "eggplant", 350)

	resp, err := svc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)

	// Complete before approve is a conflict.
	requireAppCode(t, svc.Complete(db, resp.ReservationID, seller.ID), apperrors.CodeConflict)

	require.NoError(t, svc.Approve(db, resp.ReservationID, seller.ID))
	require.NoError(t, svc.Complete(db, resp.ReservationID, seller.ID))

	var reservation models.Reservation
	require.NoError(t, db.First(&reservation, "id = ?", resp.ReservationID).Error)
	assert.Equal(t, models.ReservationStatusCompleted, reservation.Status)
	assert.True(t, reservation.Status.IsTerminal())

	var updated models.Item
	require.NoError(t, db.First(&updated, "id = ?", item.ID).Error)
	assert.Equal(t, models.ItemStatusSoldOut, updated.Status)

	// Terminal: nothing moves anymore.
	requireAppCode(t, svc.Approve(db, resp.ReservationID, seller.ID), apperrors.CodeConflict)
	requireAppCode(t, svc.Reject(db, resp.ReservationID, seller.ID), apperrors.CodeConflict)
	requireAppCode(t, svc.Complete(db, resp.ReservationID, seller.ID), apperrors.CodeConflict)
}

func TestListPendingForSeller(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService()

	seller := createTestUser(t, db, "seller")
	otherSeller := createTestUser(t, db, "other_seller")
	buyer := createTestUser(t, db, "buyer")

	item1 := createTestItem(t, db, seller, "onions", 100)
	item2 := createTestItem(t, db, seller, "garlic", 200)
	item3 := createTestItem(t, db, otherSeller, "ginger", 300)

	r1, err := svc.Request(db, item1.ID, buyer.ID)
	require.NoError(t, err)
	_, err = svc.Request(db, item2.ID, buyer.ID)
	require.NoError(t, err)
	_, err = svc.Request(db, item3.ID, buyer.ID)
	require.NoError(t, err)

	// Approved requests leave the inbox.
	require.NoError(t, svc.Approve(db, r1.ReservationID, seller.ID))

	pending, err := svc.ListPendingForSeller(db, seller.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "garlic", pending[0].Item.Title)
	assert.Equal(t, buyer.ID, pending[0].Buyer.ID)

	mine, err := svc.ListForBuyer(db, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 3)
}
