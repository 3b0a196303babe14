// Package config provides configuration loading for the API server.
package config

import (
	"fmt"
	"os"
)

// AppConfig holds the server-level configuration read from environment
// variables. JWT and password settings have their own loaders.
type AppConfig struct {
	Port        string // HTTP listen port
	DatabaseURL string // PostgreSQL connection URL
	UploadDir   string // root directory for uploaded signatures and photos
	LogoPath    string // optional barangay seal image for PDF letterheads
	CoWitness   string // optional default co-witness for oath certificates
}

// NewAppConfig creates the server configuration from environment variables.
// It reads PORT (default: 5000), DATABASE_URL (required), UPLOAD_DIR
// (default: uploads), and the optional LOGO_PATH and OATH_CO_WITNESS.
func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		UploadDir:   os.Getenv("UPLOAD_DIR"),
		LogoPath:    os.Getenv("LOGO_PATH"),
		CoWitness:   os.Getenv("OATH_CO_WITNESS"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.LogoPath != "" {
		if _, err := os.Stat(c.LogoPath); os.IsNotExist(err) {
			return fmt.Errorf("logo file not found: %s", c.LogoPath)
		}
	}
	return nil
}
