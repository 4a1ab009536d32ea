package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"

	"notekeep/utils"
)

// Config holds everything main needs to wire the service. It is loaded once
// and passed down; packages never read the environment themselves.
type Config struct {
	Port string

	Mongo DatabaseConfig

	JWTSecret       string
	JWTIssuer       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	RedisURL string

	SessionTTL        time.Duration
	MaxActiveSessions int
}

type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

// Load reads the environment, consulting a .env file when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		Port: utils.GetEnvAsString("PORT", "8080"),
		Mongo: DatabaseConfig{
			URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
			DatabaseName:    utils.GetEnvAsString("MONGO_DB", "notekeep"),
			MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
			MaxConnIdleTime: utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second),
		},
		JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
		JWTIssuer:         utils.GetEnvAsString("JWT_ISSUER", "notekeep"),
		AccessTokenTTL:    utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", time.Hour),
		RefreshTokenTTL:   utils.GetEnvAsDuration("REFRESH_TOKEN_EXPIRATION_TIME", 7*24*time.Hour),
		RedisURL:          os.Getenv("REDIS_URL"),
		SessionTTL:        utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour),
		MaxActiveSessions: utils.GetEnvAsInt("MAX_ACTIVE_SESSIONS", 5),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY is not set")
	}

	return cfg, nil
}
