package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/salepointhq/salepoint-api/internal/config"
	"github.com/salepointhq/salepoint-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		// Catalog entities
		&entity.Category{},
		&entity.Product{},
		&entity.Stock{},
		&entity.StockLevel{},

		// CRM entities
		&entity.Customer{},

		// Transaction entities
		&entity.Order{},
		&entity.OrderDetail{},

		// Session state
		&entity.CartSnapshot{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultData creates the default stock location and walk-in customer if
// the database is empty.
func SeedDefaultData(db *gorm.DB) error {
	var stockCount int64
	if err := db.Model(&entity.Stock{}).Count(&stockCount).Error; err != nil {
		return err
	}
	if stockCount == 0 {
		stock := &entity.Stock{
			Name:      "Main Warehouse",
			Code:      "MAIN",
			IsDefault: true,
		}
		if err := db.Create(stock).Error; err != nil {
			return fmt.Errorf("failed to seed default stock: %w", err)
		}
		log.Info().Str("stock", stock.Code).Msg("seeded default stock location")
	}

	var customerCount int64
	if err := db.Model(&entity.Customer{}).Count(&customerCount).Error; err != nil {
		return err
	}
	if customerCount == 0 {
		customer := &entity.Customer{Name: "Walk-in Customer"}
		if err := db.Create(customer).Error; err != nil {
			return fmt.Errorf("failed to seed walk-in customer: %w", err)
		}
	}

	return nil
}
