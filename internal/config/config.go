// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME"`

	// Empty means the in-process queue is used.
	AMQPURL    string `env:"AMQP_URL"`
	AMQPQueue  string `env:"AMQP_QUEUE" envDefault:"plan_exports"`
	WorkerSize int    `env:"WORKER_SIZE" envDefault:"1"`

	CatalogPath   string    `env:"CATALOG_PATH"`
	WinNumber     int       `env:"WIN_NUMBER" envDefault:"1250"`
	ScheduleWeeks int       `env:"SCHEDULE_WEEKS" envDefault:"11"`
	// Zero means each plan's calendar starts on its creation date.
	ScheduleStart time.Time `env:"SCHEDULE_START"`
}

// DSN builds the postgres connection string from the DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
