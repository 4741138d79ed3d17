package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bookstore-inventory/cmd/api/book"
	"github.com/joho/godotenv"
)

const (
	storeDriverPostgres = "postgres"
	storeDriverMemory   = "memory"
)

type config struct {
	httpPort             int
	requestTimeout       time.Duration
	storeDriver          string
	databaseURL          string
	migrationsPath       string
	createMode           book.CreateMode
	notificationsEnabled bool
	notificationsURL     string
	notificationsTimeout time.Duration
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
}

/* Reads the configuration from the environment, failing on malformed values. */
func loadConfig() (config, error) {
	var cfg config
	var err error

	cfg.httpPort, err = strconv.Atoi(getenv("HTTP_PORT", "8080"))
	if err != nil {
		return config{}, fmt.Errorf("getting http port from env: %w", err)
	}

	//These ENVs must be written with a unit suffix, like seconds
	cfg.requestTimeout, err = time.ParseDuration(getenv("HTTP_REQUEST_TIMEOUT", "3s"))
	if err != nil {
		return config{}, fmt.Errorf("getting request timeout from env: %w", err)
	}
	cfg.notificationsTimeout, err = time.ParseDuration(getenv("NOTIFICATIONS_TIMEOUT", "2s"))
	if err != nil {
		return config{}, fmt.Errorf("getting notifications timeout from env: %w", err)
	}

	cfg.storeDriver = getenv("STORE_DRIVER", storeDriverPostgres)
	switch cfg.storeDriver {
	case storeDriverPostgres:
		cfg.databaseURL = os.Getenv("DATABASE_URL")
		if cfg.databaseURL == "" {
			return config{}, fmt.Errorf("DATABASE_URL is required with store driver %q", cfg.storeDriver)
		}
	case storeDriverMemory:
	default:
		return config{}, fmt.Errorf("unknown store driver %q", cfg.storeDriver)
	}
	cfg.migrationsPath = getenv("DATABASE_MIGRATIONS_PATH", "migrations")

	cfg.createMode, err = book.ParseCreateMode(os.Getenv("BOOKS_CREATE_MODE"))
	if err != nil {
		return config{}, fmt.Errorf("getting create mode from env: %w", err)
	}

	cfg.notificationsEnabled, err = strconv.ParseBool(getenv("NOTIFICATIONS_ENABLED", "false"))
	if err != nil {
		return config{}, fmt.Errorf("getting notifications switch from env: %w", err)
	}
	cfg.notificationsURL = getenv("NOTIFICATIONS_URL", "https://ntfy.sh/bookstore-inventory")

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
