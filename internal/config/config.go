package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field maps 1:1 to an env var; an optional .env file in the working
// directory is read first.
type Config struct {
	// Runtime
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// HTTP front end (loopback by default)
	Host string `mapstructure:"HTTP_HOST"`
	Port int    `mapstructure:"PORT"`

	// Storage
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	BackupDir     string `mapstructure:"BACKUP_DIR"`
	BackupOnStart bool   `mapstructure:"BACKUP_ON_START"`

	// Autocomplete
	SearchLimit int `mapstructure:"SEARCH_LIMIT"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "127.0.0.1")
	v.SetDefault("PORT", 8000)
	v.SetDefault("DATABASE_PATH", "supermercado.db")
	v.SetDefault("BACKUP_DIR", "backups")
	v.SetDefault("BACKUP_ON_START", true)
	v.SetDefault("SEARCH_LIMIT", 5)

	// Optional .env file for local development; missing is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
