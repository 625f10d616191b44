package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/auth"
	"github.com/kiri-yossy/bezihuri/internal/config"
	"github.com/kiri-yossy/bezihuri/internal/email"
	"github.com/kiri-yossy/bezihuri/internal/handlers"
	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/middleware"
	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/routes"
	"github.com/kiri-yossy/bezihuri/internal/services"
	"github.com/kiri-yossy/bezihuri/internal/storage"
	"github.com/kiri-yossy/bezihuri/internal/validator"
	"github.com/kiri-yossy/bezihuri/internal/workers"
	"github.com/kiri-yossy/bezihuri/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	go workers.NewCleanupWorker(gormDB, refreshTokenRepo).Run(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)

	hub := ws.NewHub()
	go hub.Run()

	appHandlers := initializeHandlers(serviceContainer, hub)
	wsHandler := ws.NewHandler(hub)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		ginRouter.Static("/uploads", cfg.Storage.BasePath)
	}

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	emailProvider := email.NewProvider(cfg)

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	itemRepo := repositories.NewItemRepository()
	reservationRepo := repositories.NewReservationRepository()
	orderRepo := repositories.NewOrderRepository()
	conversationRepo := repositories.NewConversationRepository()
	reviewRepo := repositories.NewReviewRepository()
	socialRepo := repositories.NewSocialRepository()

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, refreshTokenRepo, emailProvider),
		UserService:        services.NewUserService(userRepo, socialRepo),
		ItemService:        services.NewItemService(itemRepo, socialRepo),
		ReservationService: services.NewReservationService(reservationRepo, itemRepo, conversationRepo),
		OrderService:       services.NewOrderService(orderRepo, itemRepo),
		ReviewService:      services.NewReviewService(reviewRepo, reservationRepo),
		ChatService:        services.NewChatService(conversationRepo),
		SocialService:      services.NewSocialService(socialRepo, itemRepo, userRepo),
		UploadService:      services.NewUploadService(storageInstance, cfg),
		AdminService:       services.NewAdminService(userRepo, itemRepo),
		EmailProvider:      emailProvider,
	}
}

func initializeHandlers(container *services.ServiceContainer, hub *ws.Hub) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler: handlers.NewUserHandler(
			baseHandler,
			container.UserService,
			container.ItemService,
			container.SocialService,
			container.ReservationService,
			container.OrderService,
		),
		ItemHandler:        handlers.NewItemHandler(baseHandler, container.ItemService, container.SocialService),
		ReservationHandler: handlers.NewReservationHandler(baseHandler, container.ReservationService),
		OrderHandler:       handlers.NewOrderHandler(baseHandler, container.OrderService),
		ReviewHandler:      handlers.NewReviewHandler(baseHandler, container.ReviewService),
		ChatHandler:        handlers.NewChatHandler(baseHandler, container.ChatService, hub),
		UploadHandler:      handlers.NewUploadHandler(baseHandler, container.UploadService),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, container.AdminService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.Email
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("Admin email or password not configured. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	err := db.Where("email = ?", adminEmail).First(&adminUser).Error
	if err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.Warn("First admin user created", "email", adminEmail)
	return nil
}
