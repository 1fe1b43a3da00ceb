package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Listing  ListingConfig
	Facets   FacetsConfig
	Session  SessionConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// UpstreamConfig points at the labor-market API everything is pulled from.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ListingConfig struct {
	// Mode is "client" (pull full snapshots, derive views locally) or
	// "delegated" (forward query params, trust upstream pagination).
	Mode        string
	SnapshotTTL time.Duration
	RefreshSpec string
}

type FacetsConfig struct {
	DemandHighMin   int
	DemandMediumMin int
}

// SessionConfig selects where session state lives. Backend "memory"
// needs nothing; "redis" reads the REDIS_* variables.
type SessionConfig struct {
	Backend string
}

type AuthConfig struct {
	// Directory is "mock" (accept any well-formed credentials),
	// "memory", or "postgres".
	Directory      string
	TokenSecret    string
	TokenExpiresIn time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Upstream = UpstreamConfig{
		BaseURL: req("UPSTREAM_BASE_URL"),
		Timeout: optDuration("UPSTREAM_TIMEOUT", 15*time.Second),
	}

	cfg.Listing = ListingConfig{
		Mode:        opt("LISTING_MODE"),
		SnapshotTTL: optDuration("SNAPSHOT_TTL", 5*time.Minute),
		RefreshSpec: opt("REFRESH_CRON"),
	}

	cfg.Facets = FacetsConfig{
		DemandHighMin:   optInt("DEMAND_HIGH_MIN", 1400),
		DemandMediumMin: optInt("DEMAND_MEDIUM_MIN", 1350),
	}

	cfg.Session = SessionConfig{
		Backend: opt("SESSION_BACKEND"),
	}

	cfg.Auth = AuthConfig{
		Directory:      opt("AUTH_DIRECTORY"),
		TokenSecret:    opt("AUTH_TOKEN_SECRET"),
		TokenExpiresIn: optDuration("AUTH_TOKEN_EXPIRES_IN", 24*time.Hour),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}

	if cfg.Auth.Directory == "postgres" && cfg.Database.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func optInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
