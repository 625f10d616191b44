package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

func TestPurchase(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "Pumpkin", 1200)

	order, err := svc.Purchase(db, item.ID, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200, order.PriceAtPurchase)
	assert.Equal(t, item.ID, order.Item.ID)

	var stored models.Item
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	assert.Equal(t, models.ItemStatusSoldOut, stored.Status)
}

func TestPurchaseSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "Pumpkin", 1200)

	order, err := svc.Purchase(db, item.ID, buyer.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Item{}).Where("id = ?", item.ID).Update("price", 9999).Error)

	orders, err := svc.ListForBuyer(db, buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, 1200, orders[0].PriceAtPurchase)
}

func TestPurchaseOwnItem(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "seller")
	item := createTestItem(t, db, seller, "Pumpkin", 1200)

	_, err := svc.Purchase(db, item.ID, seller.ID)
	requireAppCode(t, err, apperrors.CodeForbidden)
}

func TestPurchaseUnavailableItem(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "seller")
	first := createTestUser(t, db, "first")
	second := createTestUser(t, db, "second")
	item := createTestItem(t, db, seller, "Pumpkin", 1200)

	_, err := svc.Purchase(db, item.ID, first.ID)
	require.NoError(t, err)

	_, err = svc.Purchase(db, item.ID, second.ID)
	requireAppCode(t, err, apperrors.CodeConflict)
}

func TestPurchaseReservedItem(t *testing.T) {
	db := newTestDB(t)
	orders := newOrderService()
	reservations := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	other := createTestUser(t, db, "other")
	item := createTestItem(t, db, seller, "Pumpkin", 1200)

	_, err := reservations.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)

	_, err = orders.Purchase(db, item.ID, other.ID)
	requireAppCode(t, err, apperrors.CodeConflict)
}

func TestPurchaseMissingItem(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService()

	buyer := createTestUser(t, db, "buyer")

	_, err := svc.Purchase(db, "no-such-item", buyer.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestListOrdersScopedToBuyer(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	other := createTestUser(t, db, "other")

	first := createTestItem(t, db, seller, "Pumpkin", 100)
	second := createTestItem(t, db, seller, "Carrot", 200)
	third := createTestItem(t, db, seller, "Leek", 300)

	_, err := svc.Purchase(db, first.ID, buyer.ID)
	require.NoError(t, err)
	_, err = svc.Purchase(db, second.ID, buyer.ID)
	require.NoError(t, err)
	_, err = svc.Purchase(db, third.ID, other.ID)
	require.NoError(t, err)

	orders, err := svc.ListForBuyer(db, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = svc.ListForBuyer(db, other.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
