package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

func TestAdminListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService()

	for i := 0; i < 5; i++ {
		createTestUser(t, db, fmt.Sprintf("user%d", i))
	}

	page, err := svc.ListUsers(db, 1, 3)
	require.NoError(t, err)
	assert.Len(t, page.Users, 3)
	assert.Equal(t, int64(5), page.TotalUsers)
	assert.Equal(t, 2, page.TotalPages)

	page, err = svc.ListUsers(db, 2, 3)
	require.NoError(t, err)
	assert.Len(t, page.Users, 2)
}

func TestAdminDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService()
	users := newUserService()

	user := createTestUser(t, db, "hanako")

	require.NoError(t, svc.DeleteUser(db, user.ID))

	_, err := users.GetMe(db, user.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)

	err = svc.DeleteUser(db, user.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)
}

func TestAdminDeleteItem(t *testing.T) {
	db := newTestDB(t)
	svc := newAdminService()
	items := newItemService()

	seller := createTestUser(t, db, "seller")
	item := createTestItem(t, db, seller, "Cabbage", 300)

	require.NoError(t, svc.DeleteItem(db, item.ID))

	_, err := items.GetByID(db, item.ID, "")
	requireAppCode(t, err, apperrors.CodeNotFound)

	err = svc.DeleteItem(db, item.ID)
	requireAppCode(t, err, apperrors.CodeNotFound)
}
