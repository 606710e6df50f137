package app

import (
	"context"
	"errors"
	"fmt"

	"supermock_backend/database"
	"supermock_backend/internal/config"
	"supermock_backend/internal/handlers"
	"supermock_backend/internal/logger"
	"supermock_backend/internal/middleware"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/routes"
	"supermock_backend/internal/services"
	"supermock_backend/internal/validator"
	"supermock_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	serviceContainer := initializeServices(gormDB)

	worker := workers.NewSubscriptionWorker(serviceContainer.SubscriptionService, 0)
	worker.Start(context.Background())

	ginRouter := SetupRouter(serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// NewRouter собирает полный стек поверх готового подключения к БД.
// Используется тестовым сервером.
func NewRouter(gormDB *gorm.DB) *gin.Engine {
	return SetupRouter(initializeServices(gormDB))
}

// SetupRouter собирает gin.Engine с полным набором маршрутов
func SetupRouter(serviceContainer *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	cardRepo := repositories.NewCardRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	feedbackRepo := repositories.NewFeedbackRepository(gormDB)
	subscriptionRepo := repositories.NewSubscriptionRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)

	// --- Инициализация сервисов ---
	pointsService := services.NewPointsService(userRepo, appRepo)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, pointsService)
	cardService := services.NewCardService(cardRepo, pointsService)
	applicationService := services.NewApplicationService(appRepo, cardRepo, pointsService)
	feedbackService := services.NewFeedbackService(feedbackRepo, appRepo, pointsService)
	paymentService := services.NewPaymentService(paymentRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		PointsService:       pointsService,
		CardService:         cardService,
		ApplicationService:  applicationService,
		FeedbackService:     feedbackService,
		PaymentService:      paymentService,
		SubscriptionService: subscriptionService,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		CardHandler:         handlers.NewCardHandler(baseHandler, serviceContainer.CardService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, serviceContainer.ApplicationService),
		FeedbackHandler:     handlers.NewFeedbackHandler(baseHandler, serviceContainer.FeedbackService),
		PaymentHandler:      handlers.NewPaymentHandler(baseHandler, serviceContainer.PaymentService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, serviceContainer.SubscriptionService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого администратора из конфигурации, если
// его еще нет. Без заданных учетных данных шаг пропускается.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		Name:         "Admin",
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
