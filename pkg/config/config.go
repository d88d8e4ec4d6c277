package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Store backends supported by the credential store.
const (
	StoreBackendRedis  = "redis"
	StoreBackendSQLite = "sqlite"
	StoreBackendMemory = "memory"
)

type Config struct {
	App      AppConfig
	Identity IdentityConfig
	Store    StoreConfig
	Session  SessionConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CONSOLE_APP_ENV" default:"dev"`
	Port         string `envconfig:"CONSOLE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"CONSOLE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CONSOLE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// IdentityConfig points the console at the remote identity service.
type IdentityConfig struct {
	BaseURL string        `envconfig:"CONSOLE_IDENTITY_URL" default:"http://localhost:3000"`
	Timeout time.Duration `envconfig:"CONSOLE_IDENTITY_TIMEOUT" default:"10s"`
}

// StoreConfig selects and tunes the credential store backend.
type StoreConfig struct {
	Backend   string `envconfig:"CONSOLE_STORE_BACKEND" default:"sqlite"`
	Namespace string `envconfig:"CONSOLE_STORE_NAMESPACE" default:"console"`

	SQLitePath string `envconfig:"CONSOLE_STORE_SQLITE_PATH" default:"console.db"`

	RedisURL          string        `envconfig:"CONSOLE_REDIS_URL"`
	RedisAddress      string        `envconfig:"CONSOLE_REDIS_ADDR"`
	RedisPassword     string        `envconfig:"CONSOLE_REDIS_PASSWORD"`
	RedisDB           int           `envconfig:"CONSOLE_REDIS_DB" default:"0"`
	RedisPoolSize     int           `envconfig:"CONSOLE_REDIS_POOL_SIZE" default:"10"`
	RedisDialTimeout  time.Duration `envconfig:"CONSOLE_REDIS_DIAL_TIMEOUT" default:"5s"`
	RedisReadTimeout  time.Duration `envconfig:"CONSOLE_REDIS_READ_TIMEOUT" default:"5s"`
	RedisWriteTimeout time.Duration `envconfig:"CONSOLE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (s StoreConfig) validate() error {
	switch strings.ToLower(s.Backend) {
	case StoreBackendRedis:
		if s.RedisURL == "" && s.RedisAddress == "" {
			return fmt.Errorf("CONSOLE_REDIS_URL or CONSOLE_REDIS_ADDR is required for the redis store backend")
		}
	case StoreBackendSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("CONSOLE_STORE_SQLITE_PATH is required for the sqlite store backend")
		}
	case StoreBackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", s.Backend)
	}
	return nil
}

// SessionConfig tunes the session manager.
type SessionConfig struct {
	// OfflineFallback keeps the console demonstrable without a live
	// identity service. Turn off outside demo deployments.
	OfflineFallback bool `envconfig:"CONSOLE_SESSION_OFFLINE_FALLBACK" default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CONSOLE_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
