package database

import (
	"errors"
	"fmt"
	"log"

	"warehouse-backend/internal/config"
	"warehouse-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the store selected by cfg.DBDriver and checks the connection.
// The caller owns the returned handle and must Close it.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	logLevel := logger.Silent
	if cfg.DBDebug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("database could not be opened: %w", err)
	}
	if err := db.Exec("SELECT 1").Error; err != nil {
		_ = Close(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Printf("Database connection established (driver=%s).", cfg.DBDriver)
	return db, nil
}

// Migrate creates the warehouse tables if they are missing. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.InboundDocument{},
		&models.OrderedItem{},
		&models.Product{},
		&models.GoodsReceipt{},
		&models.GoodsReceiptItem{},
	)
	if err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	for _, table := range []string{"inbound_documents", "ordered_items", "products", "goods_receipts", "goods_receipt_items"} {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}

	log.Println("Migration completed.")
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
