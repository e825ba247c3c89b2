package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// DatabaseConfig holds Postgres connection settings
type DatabaseConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// ClassifierConfig holds settings for the external ML classifier service
type ClassifierConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AnalyticsConfig tunes the suggestion engine
type AnalyticsConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	MinimumDataPoints   int     `mapstructure:"minimum_data_points"`
	LookbackDays        int     `mapstructure:"lookback_days"`
}

// Load builds configuration from defaults, an optional config.yaml, and
// LEAPFROG_-prefixed environment variables, then validates it.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("classifier.timeout", 10*time.Second)
	v.SetDefault("analytics.confidence_threshold", 0.6)
	v.SetDefault("analytics.minimum_data_points", 5)
	v.SetDefault("analytics.lookback_days", 30)

	v.SetEnvPrefix("LEAPFROG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Platform-provided variables come without the prefix.
	v.BindEnv("server.port", "PORT")
	v.BindEnv("database.dsn", "DATABASE_URL")
	v.BindEnv("classifier.url", "CLASSIFIER_URL")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// A missing config file is fine, env vars carry everything required.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects configurations the engine or server cannot run with.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Analytics.ConfidenceThreshold < 0 || c.Analytics.ConfidenceThreshold > 1 {
		return fmt.Errorf("analytics confidence threshold must be between 0 and 1")
	}
	if c.Analytics.LookbackDays <= 0 {
		return fmt.Errorf("analytics lookback days must be positive")
	}
	return nil
}
