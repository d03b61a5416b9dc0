package app

import (
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"github.com/sumitk238/shopping-cart/internal/utils"
)

type Config struct {
	HTTPAddr string

	DBDriver    string
	SQLitePath  string
	PostgresDSN string

	BasicAuthUser     string
	BasicAuthPassword string

	// Upper bound for the quantity of a single cart line item. Applies to
	// both add and update.
	ItemMaxAllowed int
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		HTTPAddr:          utils.GetEnv("HTTP_ADDR", ":8080", log),
		DBDriver:          utils.GetEnv("DB_DRIVER", "sqlite", log),
		SQLitePath:        utils.GetEnv("SQLITE_PATH", "./data/cart.db", log),
		PostgresDSN:       utils.GetEnv("POSTGRES_DSN", "", log),
		BasicAuthUser:     utils.GetEnv("BASIC_AUTH_USER", "admin", log),
		BasicAuthPassword: utils.GetEnv("BASIC_AUTH_PASSWORD", "password", log),
		ItemMaxAllowed:    utils.GetEnvAsInt("CART_ITEM_MAX_ALLOWED", 5, log),
	}
}
