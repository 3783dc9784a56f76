// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port            string `mapstructure:"PORT"`
	DBPath          string `mapstructure:"DB_PATH"`
	SchemaVersion   int    `mapstructure:"SCHEMA_VERSION"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	CacheVersion    string `mapstructure:"CACHE_VERSION"`
	AssetManifest   string `mapstructure:"ASSET_MANIFEST"`
	Origin          string `mapstructure:"ORIGIN"`
	APIPrefix       string `mapstructure:"API_PREFIX"`
	APIUpstream     string `mapstructure:"API_UPSTREAM"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	SeedDevData     bool   `mapstructure:"SEED_DEV_DATA"`
	Env             string `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", "8765")
	viper.SetDefault("DB_PATH", "mojicode.db")
	viper.SetDefault("SCHEMA_VERSION", 2)
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("CACHE_VERSION", "moji-code-v1")
	viper.SetDefault("ASSET_MANIFEST", "")
	viper.SetDefault("ORIGIN", "http://localhost:8765")
	viper.SetDefault("API_PREFIX", "/api/")
	viper.SetDefault("API_UPSTREAM", "")
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SEED_DEV_DATA", false)
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and meet security standards.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("DB_PATH is required")
	}
	if c.SchemaVersion < 1 {
		return errors.New("SCHEMA_VERSION must be at least 1")
	}
	if c.CacheVersion == "" {
		return errors.New("CACHE_VERSION is required")
	}
	if !strings.HasPrefix(c.APIPrefix, "/") {
		return errors.New("API_PREFIX must start with '/'")
	}
	if c.SessionTTLHours <= 0 {
		return errors.New("SESSION_TTL_HOURS must be positive")
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.JWTSecret == "your-secret-key-change-in-production" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
	}

	return nil
}

// ManifestURLs splits the configured asset manifest into its URL list.
func (c *Config) ManifestURLs() []string {
	if c.AssetManifest == "" {
		return nil
	}
	parts := strings.Split(c.AssetManifest, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
