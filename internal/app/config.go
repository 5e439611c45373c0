package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/events"
	"go-leave/internal/notification"
	"go-leave/internal/shared/connection"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	NotifierLog   = "log"
	NotifierSMTP  = "smtp"
	NotifierKafka = "kafka"
)

type Config struct {
	Port string

	StorageDriver    string
	Postgres         connection.PostgresConfig
	RedisAddr        string
	EmployeeCacheTTL time.Duration

	Notifier          string
	SMTP              notification.SMTPConfig
	KafkaBroker       string
	NotificationTopic string

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig reads the process environment. Call godotenv.Load first to pick up a .env file.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "3000"),
		StorageDriver: getenv("STORAGE_DRIVER", StorageMemory),
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
		Notifier:  getenv("NOTIFIER", NotifierLog),
		SMTP: notification.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenv("SMTP_PORT", "25"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
		NotificationTopic: getenv("NOTIFICATION_TOPIC", events.NotificationRequestedTopic),
	}

	var err error
	if cfg.EmployeeCacheTTL, err = time.ParseDuration(getenv("EMPLOYEE_CACHE_TTL", employee.DefaultCacheTTL.String())); err != nil {
		return Config{}, fmt.Errorf("EMPLOYEE_CACHE_TTL: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getenv("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getenv("RATE_LIMIT_BURST", "20")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.Host == "" || c.Postgres.User == "" || c.Postgres.Name == "" {
			return fmt.Errorf("DB_HOST, DB_USER and DB_NAME are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.Notifier {
	case NotifierLog:
	case NotifierSMTP:
		if c.SMTP.Host == "" || c.SMTP.From == "" {
			return fmt.Errorf("SMTP_HOST and SMTP_FROM are required for the smtp notifier")
		}
	case NotifierKafka:
		if c.KafkaBroker == "" {
			return fmt.Errorf("KAFKA_BROKER is required for the kafka notifier")
		}
	default:
		return fmt.Errorf("unknown NOTIFIER %q", c.Notifier)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
