package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10

storage:
  endpoint: "minio:9000"
  access_key: "minio"
  secret_key: "minio123"
  bucket: "inspections"
  public_base_url: "https://cdn.example.com"

audit:
  company_email_domain: "@amentum.com"
  consistency: "compensate"
  retry_max_attempts: 5
  retry_base_delay: "250ms"
  search_limit: 50

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "config.yaml", validYAML))
	t.Setenv("DOTENV_PATH", "")
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Storage.Bucket != "inspections" {
		t.Errorf("storage.bucket = %q", cfg.Storage.Bucket)
	}
	if cfg.Storage.CacheControl != "max-age=3600" {
		t.Errorf("storage.cache_control default = %q", cfg.Storage.CacheControl)
	}
	if cfg.Audit.CompanyEmailDomain != "amentum.com" {
		t.Errorf("audit.company_email_domain = %q, want leading @ stripped", cfg.Audit.CompanyEmailDomain)
	}
	if cfg.Audit.Consistency != ConsistencyCompensate {
		t.Errorf("audit.consistency = %q", cfg.Audit.Consistency)
	}
	if cfg.Audit.RetryMaxAttempts != 5 || cfg.Audit.RetryBaseDelay != 250*time.Millisecond {
		t.Errorf("audit retry = %d/%v", cfg.Audit.RetryMaxAttempts, cfg.Audit.RetryBaseDelay)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q", cfg.Log.Format)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "config.yaml", validYAML))
	t.Setenv("DOTENV_PATH", "")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("AUDIT_CONSISTENCY", "transaction")
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Audit.Consistency != ConsistencyTransaction {
		t.Errorf("audit.consistency = %q, want transaction (ENV override)", cfg.Audit.Consistency)
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "DATABASE_DSN=postgres://dotenv@localhost/db\nAUDIT_SEARCH_LIMIT=25\n")
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DOTENV_PATH", "")
	chdir(t, dir)
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_DSN")
		os.Unsetenv("AUDIT_SEARCH_LIMIT")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.DSN != "postgres://dotenv@localhost/db" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Audit.SearchLimit != 25 {
		t.Errorf("audit.search_limit = %d, want 25", cfg.Audit.SearchLimit)
	}
	if cfg.Audit.Consistency != ConsistencyNone {
		t.Errorf("audit.consistency default = %q, want none", cfg.Audit.Consistency)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("DOTENV_PATH", "")
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	chdir(t, t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_ExplicitDotenvNotFound(t *testing.T) {
	t.Setenv("DOTENV_PATH", "/nonexistent/.env")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit dotenv path")
	}
}

func TestLoad_ZeroCleanupIntervalRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "config.yaml", validYAML))
	t.Setenv("DOTENV_PATH", "")
	t.Setenv("RATE_LIMIT_CLEANUP_INTERVAL", "0s")
	chdir(t, dir)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero rate_limit.cleanup_interval")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DOTENV_PATH", "")
	t.Setenv("CONFIG_PATH", writeFile(t, dir, "config.yaml", `{{{invalid yaml`))
	chdir(t, dir)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty domain", mutate: func(c *Config) { c.Audit.CompanyEmailDomain = " @ " }, wantErr: true},
		{name: "unknown consistency", mutate: func(c *Config) { c.Audit.Consistency = "saga" }, wantErr: true},
		{name: "zero attempts", mutate: func(c *Config) { c.Audit.RetryMaxAttempts = 0 }, wantErr: true},
		{name: "single attempt", mutate: func(c *Config) { c.Audit.RetryMaxAttempts = 1 }, wantErr: false},
		{name: "negative delay", mutate: func(c *Config) { c.Audit.RetryBaseDelay = -time.Second }, wantErr: true},
		{name: "search limit too large", mutate: func(c *Config) { c.Audit.SearchLimit = 5000 }, wantErr: true},
		{name: "empty bucket", mutate: func(c *Config) { c.Storage.Bucket = "" }, wantErr: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.SubmitPerMinute = 0 }, wantErr: true},
		{name: "zero cleanup interval", mutate: func(c *Config) { c.RateLimit.CleanupInterval = 0 }, wantErr: true},
		{name: "negative cleanup interval", mutate: func(c *Config) { c.RateLimit.CleanupInterval = -time.Minute }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(orig) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Storage: StorageConfig{Bucket: "audit-images"},
		Audit: AuditConfig{
			CompanyEmailDomain: "amentum.com",
			Consistency:        ConsistencyNone,
			RetryMaxAttempts:   3,
			RetryBaseDelay:     time.Second,
			SearchLimit:        200,
		},
		RateLimit: RateLimitConfig{SubmitPerMinute: 30, CleanupInterval: time.Minute},
	}
}
