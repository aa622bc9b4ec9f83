package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Skufu/healthassistant/internal/apperr"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Models   ModelConfig
	Data     DataConfig
	History  HistoryConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	GinMode     string
	CORSOrigins []string
}

// DatabaseConfig holds the optional Postgres connection used for the assessment log
type DatabaseConfig struct {
	Enabled bool
	URL     string
}

// ModelConfig points at classifier artifacts. An empty Dir means the embedded ones.
type ModelConfig struct {
	Dir string
}

// DataConfig holds the distribution dataset override
type DataConfig struct {
	SampleFile string
}

type HistoryConfig struct {
	Capacity int
}

// Load reads .env (if present) and the environment, then validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8080"),
			GinMode:     getEnvOrDefault("GIN_MODE", "release"),
			CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
		},
		Database: DatabaseConfig{
			Enabled: getEnvBoolOrDefault("ENABLE_DB", false),
			URL:     os.Getenv("DATABASE_URL"),
		},
		Models: ModelConfig{
			Dir: os.Getenv("MODELS_DIR"),
		},
		Data: DataConfig{
			SampleFile: os.Getenv("DATASET_FILE"),
		},
		History: HistoryConfig{
			Capacity: getEnvIntOrDefault("HISTORY_CAPACITY", 100),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, apperr.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Database.Enabled && cfg.Database.URL == "" {
		return apperr.ConfigInvalid("DATABASE_URL is required when ENABLE_DB=true")
	}
	if cfg.History.Capacity <= 0 {
		return apperr.ConfigInvalid("HISTORY_CAPACITY must be positive")
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		return apperr.ConfigInvalid("CORS_ORIGINS must list at least one origin")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
