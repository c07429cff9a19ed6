package config

import (
	"errors"
	"fmt"
	"time"

	"nailstudio-backend/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the configured database, migrates the schema and seeds the
// default catalog.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DBURL)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if cfg.IsDevelopment() {
		gormCfg.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("config: open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("config: database handle: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		// sqlite serialises writers; one connection avoids "database is locked".
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(time.Minute)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedCatalog(db); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres", "postgresql", "":
		if dsn == "" {
			return nil, errors.New("config: DB_URL is required for postgres")
		}
		return postgres.Open(dsn), nil
	case "sqlite":
		if dsn == "" {
			dsn = "nailstudio.db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q", driver)
	}
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Appointment{},
		&models.CatalogItem{},
		&models.Expense{},
		&models.Review{},
		&models.ClientQuoteUsage{},
		&models.FavoriteBooking{},
		&models.Settings{},
		&models.ReminderLog{},
	)
	if err != nil {
		return fmt.Errorf("config: migrate: %w", err)
	}
	return nil
}

// SeedCatalog inserts the default services when the catalog is empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.CatalogItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("config: count catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := models.DefaultCatalog()
	for i := range items {
		items[i].SortOrder = i
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("config: seed catalog: %w", err)
	}
	log.Info().Int("items", len(items)).Msg("Seeded default catalog")
	return nil
}
