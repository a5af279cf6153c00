package config

import (
	"fmt"
	"os"
	"time"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type JWTConfig struct {
	SecretKey string
	// TokenTTL of zero means tokens are issued without an expiry claim.
	TokenTTL time.Duration
	Issuer   string
	Audience string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type Config struct {
	Repositories RepositoriesConfig
	JWT          JWTConfig
	Gemini       GeminiConfig
	ServerPort   string
	Mode         string // "development" or "production"
}

func Load() (*Config, error) {
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
				DB:       getEnvOrDefault("POSTGRES_DB", "bharatexplore"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: 30,
				MinConns: 5,
			},
		},
		JWT: JWTConfig{
			SecretKey: getEnvOrDefault("JWT_SECRET", ""),
			TokenTTL:  parseDurationOrDefault("AUTH_TOKEN_TTL", 0),
			Issuer:    getEnvOrDefault("JWT_ISSUER", "bharat-explore"),
			Audience:  getEnvOrDefault("JWT_AUDIENCE", "bharat-explore-app"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "3000"),
		Mode:       getEnvOrDefault("APP_ENV", "development"),
	}

	if cfg.Repositories.Postgres.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required")
	}
	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
