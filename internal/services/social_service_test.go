package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

func TestLikeItem(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()
	items := newItemService()

	seller := createTestUser(t, db, "seller")
	fan := createTestUser(t, db, "fan")
	item := createTestItem(t, db, seller, "Spinach", 300)

	require.NoError(t, social.LikeItem(db, fan.ID, item.ID))

	// Liking twice is rejected, the count stays at one.
	err := social.LikeItem(db, fan.ID, item.ID)
	requireAppCode(t, err, apperrors.CodeConflict)

	got, err := items.GetByID(db, item.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)
	assert.True(t, got.IsLiked)
}

func TestUnlikeItem(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()
	items := newItemService()

	seller := createTestUser(t, db, "seller")
	fan := createTestUser(t, db, "fan")
	item := createTestItem(t, db, seller, "Spinach", 300)

	require.NoError(t, social.LikeItem(db, fan.ID, item.ID))
	require.NoError(t, social.UnlikeItem(db, fan.ID, item.ID))

	err := social.UnlikeItem(db, fan.ID, item.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)

	got, err := items.GetByID(db, item.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikeCount)
	assert.False(t, got.IsLiked)
}

func TestLikeMissingItem(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()

	fan := createTestUser(t, db, "fan")

	err := social.LikeItem(db, fan.ID, "no-such-item")
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestListLikedItems(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()
	items := newItemService()

	seller := createTestUser(t, db, "seller")
	fan := createTestUser(t, db, "fan")
	liked := createTestItem(t, db, seller, "Spinach", 300)
	createTestItem(t, db, seller, "Carrot", 200)

	require.NoError(t, social.LikeItem(db, fan.ID, liked.ID))

	result, err := items.ListLikedBy(db, fan.ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, liked.ID, result[0].ID)
}

func TestCommentOnItem(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()

	seller := createTestUser(t, db, "seller")
	visitor := createTestUser(t, db, "visitor")
	item := createTestItem(t, db, seller, "Spinach", 300)

	comment, err := social.CommentOnItem(db, visitor.ID, item.ID, &dto.CommentRequest{Text: "How fresh is it?"})
	require.NoError(t, err)
	assert.Equal(t, "visitor", comment.User.Username)

	_, err = social.CommentOnItem(db, seller.ID, item.ID, &dto.CommentRequest{Text: "Picked this morning"})
	require.NoError(t, err)

	comments, err := social.ListComments(db, item.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "How fresh is it?", comments[0].Text)
	assert.Equal(t, "Picked this morning", comments[1].Text)

	_, err = social.CommentOnItem(db, visitor.ID, "no-such-item", &dto.CommentRequest{Text: "hello"})
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestFollowAndCounts(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()
	users := newUserService()

	farmer := createTestUser(t, db, "farmer")
	fan := createTestUser(t, db, "fan")
	other := createTestUser(t, db, "other")

	require.NoError(t, social.Follow(db, fan.ID, farmer.ID))
	require.NoError(t, social.Follow(db, other.ID, farmer.ID))

	err := social.Follow(db, fan.ID, farmer.ID)
	requireAppCode(t, err, apperrors.CodeConflict)

	profile, err := users.GetPublicProfile(db, farmer.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.FollowersCount)
	assert.Equal(t, int64(0), profile.FollowingCount)
	assert.True(t, profile.IsFollowing)

	profile, err = users.GetPublicProfile(db, fan.ID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.FollowersCount)
	assert.Equal(t, int64(1), profile.FollowingCount)
	assert.False(t, profile.IsFollowing)
}

func TestFollowSelf(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()

	fan := createTestUser(t, db, "fan")

	err := social.Follow(db, fan.ID, fan.ID)
	requireAppCode(t, err, apperrors.CodeInvalidOperation)
}

func TestFollowMissingUser(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()

	fan := createTestUser(t, db, "fan")

	err := social.Follow(db, fan.ID, "no-such-user")
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestUnfollow(t *testing.T) {
	db := newTestDB(t)
	social := newSocialService()
	users := newUserService()

	farmer := createTestUser(t, db, "farmer")
	fan := createTestUser(t, db, "fan")

	require.NoError(t, social.Follow(db, fan.ID, farmer.ID))
	require.NoError(t, social.Unfollow(db, fan.ID, farmer.ID))

	err := social.Unfollow(db, fan.ID, farmer.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)

	profile, err := users.GetPublicProfile(db, farmer.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.FollowersCount)
	assert.False(t, profile.IsFollowing)
}
