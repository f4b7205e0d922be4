package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/sangkips/billing-api/internal/config"
	"github.com/sangkips/billing-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New opens the configured database. The default is a local SQLite file
// next to the binary; a shared PostgreSQL instance can be selected with
// DB_DRIVER=postgres.
func New(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch cfg.Driver {
	case "sqlite", "":
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Path, err)
		}
		log.Printf("Using SQLite database at %s", cfg.Path)
		return db, nil

	case "postgres":
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)

		log.Println("Successfully connected to PostgreSQL database")
		return db, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q (use sqlite or postgres)", cfg.Driver)
	}
}

// AutoMigrate runs GORM auto-migration for all entities. Safe to run on
// every startup; the schema is created only if absent.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Order{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// defaultMenu is the seed price list, in cents.
var defaultMenu = []entity.MenuItem{
	{Name: "Water Bottle", UnitPrice: 2000},
	{Name: "Tea", UnitPrice: 2000},
	{Name: "Coffee", UnitPrice: 2500},
	{Name: "Idli Sambar", UnitPrice: 2200},
	{Name: "Sandwich", UnitPrice: 4000},
	{Name: "Misal Pav", UnitPrice: 2800},
	{Name: "Noodles", UnitPrice: 4500},
	{Name: "Lunch Plate", UnitPrice: 8000},
}

// SeedMenu inserts the default price list. Items that already exist are
// left untouched, so operator edits survive restarts.
func SeedMenu(db *gorm.DB) error {
	log.Println("Seeding default menu...")

	for i := range defaultMenu {
		var existing entity.MenuItem
		err := db.Where("name = ?", defaultMenu[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check menu item %s: %w", defaultMenu[i].Name, err)
		}
		item := defaultMenu[i]
		if err := db.Create(&item).Error; err != nil {
			log.Printf("Warning: failed to seed menu item %s: %v", item.Name, err)
		}
	}

	return nil
}
