package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/blogem/boxee-legacy-api/models"
)

const (
	// EnvironmentLocal selects the boxee.test domain and development logging
	EnvironmentLocal = "local"

	localServerName      = "boxee.test"
	productionServerName = "boxee.tv"

	// defaultUpgradeMD5 is the hash advertised for boxee.iso unless UPGRADE_IMAGE_MD5 is set
	defaultUpgradeMD5 = "5bd4e0a6f7f4c1dd4f4e2c5b2b1c5a3e"
)

// Config is built once at startup and passed to everything that needs it
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Features    Features
	Stats       StatsConfig
	Proxy       ProxyConfig
	Assets      AssetsConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Name            string
	Port            string
	MetricsPort     string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL string
}

// Features gates the optional parts of the route table
type Features struct {
	Tracking     bool
	UpgradeImage bool
	StatsRoutes  bool
}

type StatsConfig struct {
	User     string
	Password string
}

type ProxyConfig struct {
	Trusted []string
}

type AssetsConfig struct {
	AppsDir    string
	UpgradeDir string
	UpgradeMD5 string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads .env (when present) and the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	environment := cast.ToString(coalesce("ENVIRONMENT", "production"))

	serverName := productionServerName
	if environment == EnvironmentLocal {
		serverName = localServerName
	}

	shutdownTimeout, err := time.ParseDuration(cast.ToString(coalesce("SHUTDOWN_TIMEOUT", "10s")))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Environment: environment,
		Server: ServerConfig{
			Name:            cast.ToString(coalesce("SERVER_NAME", serverName)),
			Port:            cast.ToString(coalesce("PORT", "8080")),
			MetricsPort:     cast.ToString(coalesce("METRICS_PORT", "")),
			ShutdownTimeout: shutdownTimeout,
		},
		Database: DatabaseConfig{
			URL: cast.ToString(coalesce("DATABASE_URL", "boxee.db")),
		},
		Features: Features{
			Tracking:     cast.ToBool(coalesce("TRACK_REQUESTS", false)),
			UpgradeImage: cast.ToBool(coalesce("ENABLE_UPGRADE_IMAGE", false)),
			StatsRoutes:  cast.ToBool(coalesce("ENABLE_STATS", true)),
		},
		Stats: StatsConfig{
			User:     cast.ToString(coalesce("STATS_USER", "")),
			Password: cast.ToString(coalesce("STATS_PASS", "")),
		},
		Proxy: ProxyConfig{
			Trusted: models.ParseAddressList(cast.ToString(coalesce("TRUSTED_PROXIES", "127.0.0.1"))),
		},
		Assets: AssetsConfig{
			AppsDir:    cast.ToString(coalesce("APPS_DIR", "apps")),
			UpgradeDir: cast.ToString(coalesce("UPGRADE_DIR", "upgrade")),
			UpgradeMD5: cast.ToString(coalesce("UPGRADE_IMAGE_MD5", defaultUpgradeMD5)),
		},
		Logging: LoggingConfig{
			Level:  cast.ToString(coalesce("LOG_LEVEL", "info")),
			Format: cast.ToString(coalesce("LOG_FORMAT", "json")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail at first request
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return errors.New("server name must not be empty")
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Server.Port, err)
	}

	if c.Server.MetricsPort != "" {
		if _, err := strconv.Atoi(c.Server.MetricsPort); err != nil {
			return fmt.Errorf("invalid METRICS_PORT %q: %w", c.Server.MetricsPort, err)
		}
	}

	if c.Features.Tracking && c.Database.URL == "" {
		return errors.New("TRACK_REQUESTS requires DATABASE_URL")
	}

	return nil
}

// IsLocal reports whether the process runs in the local development environment
func (c *Config) IsLocal() bool {
	return c.Environment == EnvironmentLocal
}

// StatsCredentialsConfigured reports whether both stats credentials are set
func (c *Config) StatsCredentialsConfigured() bool {
	return c.Stats.User != "" && c.Stats.Password != ""
}

func coalesce(key string, value interface{}) interface{} {
	val, exist := os.LookupEnv(key)
	if exist {
		return val
	}
	return value
}
