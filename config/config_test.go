package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/plantas")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSAllowedOrigin)
	assert.Equal(t, "brl", cfg.CheckoutCurrency)
	assert.False(t, cfg.CheckoutStrictProducts)
	assert.Equal(t, 4, cfg.BackupRetentionDays)
	assert.Equal(t, 2, cfg.BackupHour)
	assert.Empty(t, cfg.BackupDir)
	assert.Equal(t, "postgres://localhost/plantas", cfg.DSN())
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CHECKOUT_STRICT_PRODUCTS", "true")
	t.Setenv("CHECKOUT_CURRENCY", " BRL ")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://plantas.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.CheckoutStrictProducts)
	assert.Equal(t, "brl", cfg.CheckoutCurrency)
	assert.Equal(t, "https://plantas.example", cfg.CORSAllowedOrigin)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plantas.yaml")
	require.NoError(t, os.WriteFile(file, []byte("PORT: \"7070\"\nPUBLIC_SITE_URL: https://file.example\n"), 0o600))

	t.Setenv("CONFIG_FILE", file)
	t.Setenv("PUBLIC_SITE_URL", "https://env.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "https://env.example", cfg.PublicSiteURL)
}

func TestDSNFromParts(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "plantas", DBPort: "5432"}
	assert.Equal(t, "host=db user=u password=p dbname=plantas port=5432 sslmode=disable", cfg.DSN())
}

func TestValidateReportsEveryMissingSetting(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
}

func TestValidateBackupHour(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://x", JWTSecret: "s", StripeSecretKey: "sk", CheckoutCurrency: "brl", BackupHour: 24}
	assert.ErrorContains(t, cfg.Validate(), "BACKUP_HOUR")
}
