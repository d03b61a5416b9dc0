package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sumitk238/shopping-cart/internal/app"
	types "github.com/sumitk238/shopping-cart/internal/domain"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured database and runs migrations. The sqlite
// DSN forces immediate write transactions plus a busy timeout so concurrent
// cart mutations queue instead of failing with a locked database.
func Open(cfg app.Config, log *logger.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("Connecting to database", "driver", cfg.DBDriver)
	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	if err := AutoMigrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}

func dialectorFor(cfg app.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, err
		}
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate", cfg.SQLitePath)
		return sqlite.Open(dsn), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		return postgres.Open(cfg.PostgresDSN), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&types.User{},
		&types.Product{},
		&types.CartItem{},
	)
}

// Seed loads demo users and products on first run so the API is usable out
// of the box. It is a no-op once either table has rows.
func Seed(gdb *gorm.DB, log *logger.Logger) error {
	var userCount int64
	if err := gdb.Model(&types.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	var productCount int64
	if err := gdb.Model(&types.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if userCount > 0 || productCount > 0 {
		return nil
	}

	users := []types.User{
		{UserID: 1, Name: "Alice"},
		{UserID: 2, Name: "Bob"},
	}
	products := []types.Product{
		{ProductID: 10, Name: "Notebook", Details: "A5 ruled notebook", Cost: 25.5},
		{ProductID: 20, Name: "Pen", Details: "Ballpoint pen, black", Cost: 25.5},
		{ProductID: 30, Name: "Backpack", Details: "20L daypack", Cost: 120.0},
	}
	if err := gdb.Create(&users).Error; err != nil {
		return err
	}
	if err := gdb.Create(&products).Error; err != nil {
		return err
	}
	log.Info("Seeded demo data", "users", len(users), "products", len(products))
	return nil
}
