package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateItem(t *testing.T) {
	db := newTestDB(t)
	svc := newItemService()
	seller := createTestUser(t, db, "seller")

	item, err := svc.Create(db, seller.ID, &dto.CreateItemRequest{
		Title:       "リンゴ",
		Description: "甘いりんごです",
		Price:       300,
		Category:    "fruit",
		ImageURLs:   []string{"https://example.com/apple.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ItemStatusAvailable, item.Status)
	assert.Equal(t, seller.ID, item.Seller.ID)
	assert.Equal(t, []string{"https://example.com/apple.jpg"}, item.ImageURLs)

	var stored models.Item
	require.NoError(t, db.First(&stored, "id = ?", item.ID).Error)
	// Katakana in the title is stored in hiragana form.
	assert.Contains(t, stored.SearchText, "りんご")
}

func TestSearchMatchesAcrossKanaForms(t *testing.T) {
	db := newTestDB(t)
	svc := newItemService()
	seller := createTestUser(t, db, "seller")

	_, err := svc.Create(db, seller.ID, &dto.CreateItemRequest{
		Title:       "リンゴ",
		Description: "青森産",
		Price:       300,
	})
	require.NoError(t, err)
	_, err = svc.Create(db, seller.ID, &dto.CreateItemRequest{
		Title:       "Tomato Box",
		Description: "fresh",
		Price:       500,
	})
	require.NoError(t, err)

	// Hiragana query finds the katakana title.
	results, err := svc.Search(db, "りんご", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "リンゴ", results[0].Title)

	// Katakana query likewise.
	results, err = svc.Search(db, "リンゴ", "")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// Case-insensitive latin.
	results, err = svc.Search(db, "TOMATO", "")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// Blank query returns nothing rather than everything.
	results, err = svc.Search(db, "   ", "")
	require.NoError(t, err)
	assert.Len(t, results, 0)
}

func TestUpdateItemRecomputesSearchKey(t *testing.T) {
	db := newTestDB(t)
	svc := newItemService()
	seller := createTestUser(t, db, "seller")
	item := createTestItem(t, db, seller, "old title", 100)

	updated, err := svc.Update(db, item.ID, seller.ID, &dto.UpdateItemRequest{
		Title: strPtr("ミカン"),
		Price: intPtr(250),
	})
	require.NoError(t, err)
	assert.Equal(t, "ミカン", updated.Title)
	assert.Equal(t, 250, updated.Price)

	results, err := svc.Search(db, "みかん", "")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestUpdateItemSellerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newItemService()
	seller := createTestUser(t, db, "seller")
	other := createTestUser(t, db, "other")
	item := createTestItem(t, db, seller, "herbs", 90)

	_, err := svc.Update(db, item.ID, other.ID, &dto.UpdateItemRequest{Title: strPtr("stolen")})
	requireAppCode(t, err, apperrors.CodeForbidden)
}

func TestUpdateItemLockedWhileReserved(t *testing.T) {
	db := newTestDB(t)
	itemSvc := newItemService()
	reservationSvc := newReservationService()

	seller := createTestUser(t, db, "seller")
	buyer := createTestUser(t, db, "buyer")
	item := createTestItem(t, db, seller, "melon", 1200)

	_, err := reservationSvc.Request(db, item.ID, buyer.ID)
	require.NoError(t, err)

	_, err = itemSvc.Update(db, item.ID, seller.ID, &dto.UpdateItemRequest{Price: intPtr(9999)})
	requireAppCode(t, err, apperrors.CodeInvalidStatus)

	err = itemSvc.Delete(db, item.ID, seller.ID, false)
	requireAppCode(t, err, apperrors.CodeInvalidStatus)
}

func TestListItemsPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newItemService()
	seller := createTestUser(t, db, "seller")

	for i := 0; i < 25; i++ {
		createTestItem(t, db, seller, "item", 100+i)
	}

	page1, err := svc.List(db, 1, 10, "")
	require.NoError(t, err)
	assert.Len(t, page1.Items, 10)
	assert.EqualValues(t, 25, page1.TotalItems)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 1, page1.CurrentPage)

	page3, err := svc.List(db, 3, 10, "")
	require.NoError(t, err)
	assert.Len(t, page3.Items, 5)
}

func TestItemLikeFlags(t *testing.T) {
	db := newTestDB(t)
	itemSvc := newItemService()
	socialSvc := newSocialService()

	seller := createTestUser(t, db, "seller")
	fan := createTestUser(t, db, "fan")
	item := createTestItem(t, db, seller, "berries", 450)

	require.NoError(t, socialSvc.LikeItem(db, fan.ID, item.ID))

	asFan, err := itemSvc.GetByID(db, item.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, asFan.IsLiked)
	assert.Equal(t, 1, asFan.LikeCount)

	asAnon, err := itemSvc.GetByID(db, item.ID, "")
	require.NoError(t, err)
	assert.False(t, asAnon.IsLiked)
	assert.Equal(t, 1, asAnon.LikeCount)
}
