// Package config provides configuration management for the movie
// Akinator decision engine.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds all configuration for the engine and its CLI.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Engine   EngineConfig   `yaml:"engine"`
	Server   ServerConfig   `yaml:"server"`
}

// DatabaseConfig holds catalogue-store configuration.
type DatabaseConfig struct {
	Path     string `yaml:"path"`      // SQLite database file path
	RowLimit int    `yaml:"row_limit"` // 0 means unlimited
}

// EngineConfig holds the decision-engine tunables enumerated in spec §6.
type EngineConfig struct {
	MaxStrikes            int `yaml:"max_strikes"`
	TopStreakQuestions    int `yaml:"top_streak_questions"`
	GuessCooldown         int `yaml:"guess_cooldown"`
	MaxConsecutiveGuesses int `yaml:"max_consecutive_guesses"`
}

// ServerConfig holds ambient, non-domain configuration.
type ServerConfig struct {
	LogLevel   string        `yaml:"log_level"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Load reads configuration from environment variables, optionally
// overlaying a YAML file when yamlPath is non-empty.
func Load(yamlPath string) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Path:     getEnv("AKINATOR_DB_PATH", "movies.db"),
			RowLimit: getEnvAsInt("AKINATOR_CATALOGUE_LIMIT", 0),
		},
		Engine: EngineConfig{
			MaxStrikes:            getEnvAsInt("AKINATOR_MAX_STRIKES", 3),
			TopStreakQuestions:    getEnvAsInt("AKINATOR_TOP_STREAK", 10),
			GuessCooldown:         getEnvAsInt("AKINATOR_GUESS_COOLDOWN", 2),
			MaxConsecutiveGuesses: getEnvAsInt("AKINATOR_MAX_CONSECUTIVE_GUESSES", 4),
		},
		Server: ServerConfig{
			LogLevel:   getEnv("LOG_LEVEL", "info"),
			SessionTTL: getEnvAsDuration("AKINATOR_SESSION_TTL", "1h"),
		},
	}

	if yamlPath != "" {
		if err := cfg.overlayYAML(yamlPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overlayYAML merges a YAML config file on top of the env-derived config.
func (c *Config) overlayYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Engine.MaxStrikes <= 0 {
		return fmt.Errorf("max_strikes must be positive")
	}
	if c.Engine.TopStreakQuestions <= 0 {
		return fmt.Errorf("top_streak_questions must be positive")
	}
	if c.Engine.GuessCooldown < 0 {
		return fmt.Errorf("guess_cooldown cannot be negative")
	}
	if c.Engine.MaxConsecutiveGuesses <= 0 {
		return fmt.Errorf("max_consecutive_guesses must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	duration, err := time.ParseDuration(defaultValue)
	if err != nil {
		return 0
	}
	return duration
}
