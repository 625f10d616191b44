package services

import "github.com/kiri-yossy/bezihuri/internal/email"

// ServiceContainer holds every application service, wired once at startup.
type ServiceContainer struct {
	AuthService        *AuthService
	UserService        *UserService
	ItemService        *ItemService
	ReservationService *ReservationService
	OrderService       *OrderService
	ReviewService      *ReviewService
	ChatService        *ChatService
	SocialService      *SocialService
	UploadService      *UploadService
	AdminService       *AdminService
	EmailProvider      email.Provider
}
