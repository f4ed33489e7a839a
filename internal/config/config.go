package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Limits   LimitsConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Host string
	Port string
	Env  string
}

// LimitsConfig caps inbound request sizes.
type LimitsConfig struct {
	MaxBodyBytes int64
}

// SnapshotConfig holds the inventory snapshot job settings.
type SnapshotConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	maxBody, err := parseMaxBodyBytes(getenvWithDefault("MAX_BODY_BYTES", "1048576"))
	if err != nil {
		return nil, err
	}

	env := getenvWithDefault("APP_ENV", "development")
	allowExternal := os.Getenv("ALLOW_EXTERNAL_ACCESS") == "true"

	cfg := &Config{
		Server: ServerConfig{
			Host: secureHost(env, allowExternal, inContainer()),
			Port: getenvWithDefault("APP_PORT", "8080"),
			Env:  env,
		},
		Limits: LimitsConfig{
			MaxBodyBytes: maxBody,
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 * * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Limits.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}

	if c.Snapshot.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}

	return nil
}

// secureHost decides the bind address. The service listens on all interfaces
// only inside a container or when production explicitly opts in; everything
// else binds loopback.
func secureHost(env string, allowExternal, container bool) string {
	if container {
		return "0.0.0.0"
	}
	if env == "production" && allowExternal {
		return "0.0.0.0"
	}
	return "127.0.0.1"
}

func inContainer() bool {
	_, err := os.Stat("/.dockerenv")
	return err == nil
}

func parseMaxBodyBytes(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid MAX_BODY_BYTES value %q: %w", raw, err)
	}
	return n, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
