package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kiri-yossy/bezihuri/internal/config"
	"github.com/kiri-yossy/bezihuri/internal/email"
	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/search"
	"github.com/kiri-yossy/bezihuri/internal/services"
)

var testDBCounter int64

func init() {
	logger.Init("test")
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60
}

// newTestDB opens a fresh in-memory database per test. A unique shared-cache
// name keeps all pooled connections on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Item{},
		&models.Reservation{},
		&models.Order{},
		&models.Conversation{},
		&models.Message{},
		&models.Review{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "x",
		Role:         models.UserRoleUser,
		IsVerified:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestItem(t *testing.T, db *gorm.DB, seller *models.User, title string, price int) *models.Item {
	t.Helper()

	item := &models.Item{
		Title:       title,
		Description: "description of " + title,
		Price:       price,
		Status:      models.ItemStatusAvailable,
		SellerID:    seller.ID,
		SearchText:  search.Key(title, "description of "+title),
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newReservationService() *services.ReservationService {
	return services.NewReservationService(
		repositories.NewReservationRepository(),
		repositories.NewItemRepository(),
		repositories.NewConversationRepository(),
	)
}

func newItemService() *services.ItemService {
	return services.NewItemService(repositories.NewItemRepository(), repositories.NewSocialRepository())
}

func newReviewService() *services.ReviewService {
	return services.NewReviewService(repositories.NewReviewRepository(), repositories.NewReservationRepository())
}

func newChatService() *services.ChatService {
	return services.NewChatService(repositories.NewConversationRepository())
}

func newSocialService() *services.SocialService {
	return services.NewSocialService(
		repositories.NewSocialRepository(),
		repositories.NewItemRepository(),
		repositories.NewUserRepository(),
	)
}

func newAdminService() *services.AdminService {
	return services.NewAdminService(repositories.NewUserRepository(), repositories.NewItemRepository())
}

func newUserService() *services.UserService {
	return services.NewUserService(repositories.NewUserRepository(), repositories.NewSocialRepository())
}

func newAuthService() *services.AuthService {
	return services.NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewRefreshTokenRepository(),
		email.NewNoopProvider(),
	)
}

func newOrderService() *services.OrderService {
	return services.NewOrderService(repositories.NewOrderRepository(), repositories.NewItemRepository())
}
