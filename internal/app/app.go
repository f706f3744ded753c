package app

import (
	"context"
	"fmt"

	"avihire_backend/database"
	"avihire_backend/internal/config"
	"avihire_backend/internal/handlers"
	"avihire_backend/internal/logger"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/routes"
	"avihire_backend/internal/services"
	"avihire_backend/internal/services/payment"
	"avihire_backend/internal/validator"
	"avihire_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	cleanupWorker := workers.NewTokenCleanupWorker(refreshTokenRepo)
	cleanupWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, and handlers onto a gin engine.
// Tests call it directly against their own database handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer, userRepo := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer, userRepo)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) (*services.ServiceContainer, repositories.UserRepository) {
	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	adRepo := repositories.NewJobAdRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:   services.NewAuthService(userRepo, refreshTokenRepo),
		UserService:   services.NewUserService(userRepo),
		AdService:     services.NewAdService(adRepo, applicationRepo),
		StripeService: payment.NewStripeService(cfg, adRepo),
	}, userRepo
}

func initializeHandlers(sc *services.ServiceContainer, userRepo repositories.UserRepository) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, sc.AuthService),
		SettingsHandler:  handlers.NewSettingsHandler(base, sc.UserService),
		AdHandler:        handlers.NewAdHandler(base, sc.AdService, userRepo),
		DashboardHandler: handlers.NewDashboardHandler(base, sc.AdService, userRepo),
		CheckoutHandler:  handlers.NewCheckoutHandler(base, sc.StripeService),
	}
}
