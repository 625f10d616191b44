package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/auth"
	"github.com/kiri-yossy/bezihuri/internal/email"
	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates an unverified account and mails the verification token.
// A failed mail send does not roll the account back: the user can request
// verification again later.
func (s *AuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              models.UserRoleUser,
		IsVerified:        false,
		VerificationToken: uuid.NewString(),
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err, "auth", "Failed to create user")
	}

	if err := s.emailProvider.SendVerificationEmail(user.Email, user.Username, user.VerificationToken); err != nil {
		logger.Error("failed to send verification email", "user_id", user.ID, "error", err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return toUserDTO(user), nil
}

// VerifyEmail consumes a verification token. Tokens are single-use: the
// column is cleared on success.
func (s *AuthService) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.New(apperrors.CodeInvalidToken, "auth",
				"Invalid or already used verification token", http.StatusBadRequest)
		}
		return apperrors.InternalError(err)
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.DatabaseError(err, "auth", "Failed to verify user")
	}

	logger.Info("email verified", "user_id", user.ID)
	return nil
}

func (s *AuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrEmailNotVerified
	}

	return s.issueTokens(db, user)
}

// Refresh rotates the refresh token: the presented token is deleted and a
// fresh pair is issued.
func (s *AuthService) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.NewUnauthorizedError("Refresh token expired")
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(db, user)
}

func (s *AuthService) Logout(db *gorm.DB, refreshToken string) error {
	err := s.refreshTokenRepo.DeleteByToken(db, refreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.DatabaseError(err, "auth", "Failed to store refresh token")
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         *toUserDTO(user),
	}, nil
}

func toUserDTO(user *models.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Bio:        user.Bio,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}
