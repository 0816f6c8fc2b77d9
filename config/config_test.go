package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENVIRONMENT", "SERVER_NAME", "PORT", "METRICS_PORT", "DATABASE_URL",
	"TRACK_REQUESTS", "ENABLE_UPGRADE_IMAGE", "ENABLE_STATS", "STATS_USER",
	"STATS_PASS", "TRUSTED_PROXIES", "APPS_DIR", "UPGRADE_DIR",
	"UPGRADE_IMAGE_MD5", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
}

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "boxee.tv", cfg.Server.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Server.MetricsPort)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "boxee.db", cfg.Database.URL)
	assert.False(t, cfg.Features.Tracking)
	assert.False(t, cfg.Features.UpgradeImage)
	assert.True(t, cfg.Features.StatsRoutes)
	assert.Equal(t, []string{"127.0.0.1"}, cfg.Proxy.Trusted)
	assert.Equal(t, "apps", cfg.Assets.AppsDir)
	assert.Equal(t, defaultUpgradeMD5, cfg.Assets.UpgradeMD5)
	assert.False(t, cfg.StatsCredentialsConfigured())
	assert.False(t, cfg.IsLocal())
}

func TestFromEnvLocalEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("TRACK_REQUESTS", "True")
	t.Setenv("STATS_USER", "admin")
	t.Setenv("STATS_PASS", "secret")
	t.Setenv("TRUSTED_PROXIES", "127.0.0.1, 10.0.0.2")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "boxee.test", cfg.Server.Name)
	assert.True(t, cfg.IsLocal())
	assert.True(t, cfg.Features.Tracking)
	assert.True(t, cfg.StatsCredentialsConfigured())
	assert.Equal(t, []string{"127.0.0.1", "10.0.0.2"}, cfg.Proxy.Trusted)
}

func TestFromEnvServerNameOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("SERVER_NAME", "boxee.example")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "boxee.example", cfg.Server.Name)
}

func TestFromEnvOnlyOneCredential(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATS_USER", "admin")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.StatsCredentialsConfigured())
}

func TestFromEnvInvalidShutdownTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Name: "boxee.tv", Port: "8080"},
			Database: DatabaseConfig{URL: "boxee.db"},
			Features: Features{Tracking: true},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Server.Name = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Port = "http"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.MetricsPort = "nine"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Database.URL = ""
	assert.Error(t, cfg.Validate())

	cfg.Features.Tracking = false
	assert.NoError(t, cfg.Validate())
}
