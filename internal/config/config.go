package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Storage   StorageConfig   `yaml:"storage"`
	Audit     AuditConfig     `yaml:"audit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"20971520"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StorageConfig holds S3-compatible object storage settings for audit images.
type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"        env-default:"localhost:9000"`
	AccessKey     string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"`
	Region        string `yaml:"region"          env:"STORAGE_REGION"          env-default:"us-east-1"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"audit-images"`
	UseSSL        bool   `yaml:"use_ssl"         env:"STORAGE_USE_SSL"         env-default:"false"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
	CacheControl  string `yaml:"cache_control"   env:"STORAGE_CACHE_CONTROL"   env-default:"max-age=3600"`
}

// AuditConfig holds submission pipeline settings.
type AuditConfig struct {
	CompanyEmailDomain string        `yaml:"company_email_domain" env:"AUDIT_COMPANY_EMAIL_DOMAIN" env-default:"amentum.com"`
	Consistency        string        `yaml:"consistency"          env:"AUDIT_CONSISTENCY"          env-default:"none"`
	RetryMaxAttempts   int           `yaml:"retry_max_attempts"   env:"AUDIT_RETRY_MAX_ATTEMPTS"   env-default:"3"`
	RetryBaseDelay     time.Duration `yaml:"retry_base_delay"     env:"AUDIT_RETRY_BASE_DELAY"     env-default:"1s"`
	SearchLimit        int           `yaml:"search_limit"         env:"AUDIT_SEARCH_LIMIT"         env-default:"200"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP limits for write endpoints.
type RateLimitConfig struct {
	SubmitPerMinute int           `yaml:"submit_per_minute" env:"RATE_LIMIT_SUBMIT_PER_MINUTE" env-default:"30"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// Consistency modes for the submission pipeline.
const (
	ConsistencyNone        = "none"
	ConsistencyCompensate  = "compensate"
	ConsistencyTransaction = "transaction"
)
