package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/barangay_test")
	t.Setenv("PORT", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("LOGO_PATH", "")
	t.Setenv("OATH_CO_WITNESS", "")

	cfg, err := NewAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Empty(t, cfg.LogoPath)
	assert.Empty(t, cfg.CoWitness)
}

func TestNewAppConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewAppConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewAppConfig_CustomValues(t *testing.T) {
	logo := filepath.Join(t.TempDir(), "seal.png")
	require.NoError(t, os.WriteFile(logo, []byte("png"), 0o644))

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/barangay_test")
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_DIR", "/var/lib/barangay/uploads")
	t.Setenv("LOGO_PATH", logo)
	t.Setenv("OATH_CO_WITNESS", "Maria L. Reyes")

	cfg, err := NewAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/var/lib/barangay/uploads", cfg.UploadDir)
	assert.Equal(t, logo, cfg.LogoPath)
	assert.Equal(t, "Maria L. Reyes", cfg.CoWitness)
}

func TestNewAppConfig_MissingLogoFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/barangay_test")
	t.Setenv("LOGO_PATH", filepath.Join(t.TempDir(), "missing.png"))

	_, err := NewAppConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logo file not found")
}
