package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Store names accepted for ASSIGNMENT_STORE.
const (
	StoreORM       = "orm"
	StoreProcedure = "procedure"
)

// Config holds all process-wide settings. It is built once at startup and
// passed by value; nothing mutates it afterwards.
type Config struct {
	AppPort         string
	DatabaseDSN     string
	AssignmentStore string
	RabbitMQURL     string

	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	TokenLifetime time.Duration
}

// Load reads configuration from environment variables via Viper, applying
// defaults for local development. It fails when JWT_DURATION_MINUTES is not
// numeric or the store selector is unknown.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=assignments port=5432 sslmode=disable")
	v.SetDefault("ASSIGNMENT_STORE", StoreORM)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", "dev_jwt_secret")
	v.SetDefault("JWT_ISSUER", "assignments-api")
	v.SetDefault("JWT_AUDIENCE", "assignments-clients")
	v.SetDefault("JWT_DURATION_MINUTES", "60")
	v.AutomaticEnv()

	minutes, err := strconv.Atoi(v.GetString("JWT_DURATION_MINUTES"))
	if err != nil {
		return Config{}, fmt.Errorf("JWT_DURATION_MINUTES must be numeric: %w", err)
	}
	if minutes <= 0 {
		return Config{}, fmt.Errorf("JWT_DURATION_MINUTES must be positive, got %d", minutes)
	}

	store := v.GetString("ASSIGNMENT_STORE")
	if store != StoreORM && store != StoreProcedure {
		return Config{}, fmt.Errorf("ASSIGNMENT_STORE must be %q or %q, got %q", StoreORM, StoreProcedure, store)
	}

	return Config{
		AppPort:         v.GetString("APP_PORT"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		AssignmentStore: store,
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		JWTAudience:     v.GetString("JWT_AUDIENCE"),
		TokenLifetime:   time.Duration(minutes) * time.Minute,
	}, nil
}
