package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Catalog     CatalogConfig     `yaml:"catalog"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
	Shopping    ShoppingConfig    `yaml:"shopping"`
	Share       ShareConfig       `yaml:"share"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the identity provider; this service only verifies them.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"tastebite"`
}

// CatalogConfig holds settings for the external recipe catalog client.
type CatalogConfig struct {
	BaseURL          string        `yaml:"base_url"          env:"CATALOG_BASE_URL"          env-default:"https://www.themealdb.com/api/json/v1/1"`
	Timeout          time.Duration `yaml:"timeout"           env:"CATALOG_TIMEOUT"           env-default:"10s"`
	RequestsPerSec   float64       `yaml:"requests_per_sec"  env:"CATALOG_REQUESTS_PER_SEC"  env-default:"5"`
	Burst            int           `yaml:"burst"             env:"CATALOG_BURST"             env-default:"10"`
	FailureThreshold uint32        `yaml:"failure_threshold" env:"CATALOG_FAILURE_THRESHOLD" env-default:"5"`
	OpenTimeout      time.Duration `yaml:"open_timeout"      env:"CATALOG_OPEN_TIMEOUT"      env-default:"30s"`
}

// MaintenanceConfig identifies the system account that owns canonical recipes.
type MaintenanceConfig struct {
	SystemUserEmail string `yaml:"system_user_email" env:"MAINTENANCE_SYSTEM_USER_EMAIL" env-default:"system@tastebite.com"`
	SystemUserName  string `yaml:"system_user_name"  env:"MAINTENANCE_SYSTEM_USER_NAME"  env-default:"Tastebite System"`
}

// ShoppingConfig holds shopping list settings.
type ShoppingConfig struct {
	MaxTxRetries  uint64        `yaml:"max_tx_retries"  env:"SHOPPING_MAX_TX_RETRIES"  env-default:"5"`
	RetryBaseWait time.Duration `yaml:"retry_base_wait" env:"SHOPPING_RETRY_BASE_WAIT" env-default:"10ms"`
}

// ShareConfig holds share link settings.
type ShareConfig struct {
	TokenBytes int `yaml:"token_bytes" env:"SHARE_TOKEN_BYTES" env-default:"32"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the HTTP API.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATE_LIMIT_REQUESTS_PER_MIN" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
