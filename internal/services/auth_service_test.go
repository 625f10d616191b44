package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

func registerRequest(username string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "correct-horse-battery",
	}
}

func TestRegisterVerifyLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, registerRequest("hanako"))
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.Equal(t, models.UserRoleUser, user.Role)

	// Unverified accounts cannot log in.
	_, err = svc.Login(db, &dto.LoginRequest{Email: "hanako@example.com", Password: "correct-horse-battery"})
	requireAppCode(t, err, apperrors.CodeForbidden)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NotEmpty(t, stored.VerificationToken)

	require.NoError(t, svc.VerifyEmail(db, stored.VerificationToken))

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "hanako@example.com", Password: "correct-horse-battery"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.True(t, resp.User.IsVerified)
}

func TestVerifyEmailTokenSingleUse(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, registerRequest("hanako"))
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	token := stored.VerificationToken

	require.NoError(t, svc.VerifyEmail(db, token))

	err = svc.VerifyEmail(db, token)
	requireAppCode(t, err, apperrors.CodeInvalidToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, registerRequest("hanako"))
	require.NoError(t, err)

	_, err = svc.Register(db, registerRequest("hanako"))
	requireAppCode(t, err, apperrors.CodeAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	req := registerRequest("hanako")
	req.Password = "short"

	_, err := svc.Register(db, req)
	requireAppCode(t, err, apperrors.CodeValidationFailed)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, registerRequest("hanako"))
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NoError(t, svc.VerifyEmail(db, stored.VerificationToken))

	_, err = svc.Login(db, &dto.LoginRequest{Email: "hanako@example.com", Password: "wrong-password"})
	requireAppCode(t, err, apperrors.CodeInvalidCredentials)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse-battery"})
	requireAppCode(t, err, apperrors.CodeInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, registerRequest("hanako"))
	require.NoError(t, err)
	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NoError(t, svc.VerifyEmail(db, stored.VerificationToken))

	login, err := svc.Login(db, &dto.LoginRequest{Email: "hanako@example.com", Password: "correct-horse-battery"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(db, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The presented token was consumed by the rotation.
	_, err = svc.Refresh(db, login.RefreshToken)
	requireAppCode(t, err, apperrors.CodeUnauthorized)

	_, err = svc.Refresh(db, refreshed.RefreshToken)
	require.NoError(t, err)
}

func TestLogoutIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService()

	user, err := svc.Register(db, registerRequest("hanako"))
	require.NoError(t, err)
	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	require.NoError(t, svc.VerifyEmail(db, stored.VerificationToken))

	login, err := svc.Login(db, &dto.LoginRequest{Email: "hanako@example.com", Password: "correct-horse-battery"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(db, login.RefreshToken))
	require.NoError(t, svc.Logout(db, login.RefreshToken))

	_, err = svc.Refresh(db, login.RefreshToken)
	requireAppCode(t, err, apperrors.CodeUnauthorized)
}
