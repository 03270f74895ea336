package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salepointhq/salepoint-api/internal/application/service"
	"github.com/salepointhq/salepoint-api/internal/config"
	"github.com/salepointhq/salepoint-api/internal/infrastructure/database"
	"github.com/salepointhq/salepoint-api/internal/infrastructure/repository"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/handler"
	"github.com/salepointhq/salepoint-api/internal/presentation/http/routes"
	"github.com/salepointhq/salepoint-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure logging and Gin mode based on environment
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Logger = logger

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logger.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.SessionExpiryHours)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	stockRepo := repository.NewStockRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	snapshotRepo := repository.NewCartSnapshotRepository(db)

	// Initialize services
	hydrator := service.NewCartHydrator(productRepo, logger)
	cartService := service.NewCartService(snapshotRepo, productRepo, customerRepo, orderRepo, hydrator, logger)
	productService := service.NewProductService(productRepo, categoryRepo, stockRepo)
	orderService := service.NewOrderService(orderRepo)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:  handler.NewSessionHandler(jwtManager, &cfg.Auth),
		Cart:     handler.NewCartHandler(cartService),
		Product:  handler.NewProductHandler(productService),
		Order:    handler.NewOrderHandler(orderService),
		Customer: handler.NewCustomerHandler(customerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
