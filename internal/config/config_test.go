package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := Defaults()
	cfg.DataDir = "./data"
	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "french with notes key",
			mutate:  func(c *Config) { c.Language = "fr"; c.DedupeKey = "notes"; c.LogFormat = "json" },
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			mutate:      func(c *Config) { c.Port = "0" },
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "negative rate limit",
			mutate:      func(c *Config) { c.RateLimit = -1 },
			wantErr:     true,
			errorString: "invalid rate limit -1: must be between 0 and 10000",
		},
		{
			name:    "rate limit disabled",
			mutate:  func(c *Config) { c.RateLimit = 0 },
			wantErr: false,
		},
		{
			name:    "trusted proxies",
			mutate:  func(c *Config) { c.TrustedProxies = "203.0.113.0/24, 2001:db8::/32" },
			wantErr: false,
		},
		{
			name:        "invalid trusted proxy",
			mutate:      func(c *Config) { c.TrustedProxies = "10.0.0.0/8,proxy.local" },
			wantErr:     true,
			errorString: "invalid trusted proxy 'proxy.local': must be a CIDR",
		},
		{
			name:        "empty data directory",
			mutate:      func(c *Config) { c.DataDir = " " },
			wantErr:     true,
			errorString: "data directory cannot be empty",
		},
		{
			name:        "unsupported language",
			mutate:      func(c *Config) { c.Language = "de" },
			wantErr:     true,
			errorString: "invalid language 'de': must be one of [en fr]",
		},
		{
			name:        "invalid dedupe key",
			mutate:      func(c *Config) { c.DedupeKey = "amount" },
			wantErr:     true,
			errorString: "invalid dedupe key 'amount': must be one of [payer notes]",
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml': must be one of [text json]",
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.CacheSize = 0 },
			wantErr:     true,
			errorString: "invalid cache size 0: must be at least 1",
		},
		{
			name:        "cache TTL too large",
			mutate:      func(c *Config) { c.CacheTTL = 48 * time.Hour },
			wantErr:     true,
			errorString: "invalid cache TTL 48h0m0s: must be at most 24 hours",
		},
		{
			name:        "missing credentials file",
			mutate:      func(c *Config) { c.GoogleServiceAccountFile = "/nonexistent/sa.json" },
			wantErr:     true,
			errorString: "Google service account file does not exist: /nonexistent/sa.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error but got none")
					return
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Validate() error = %v, want error containing %v", err, tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestConfig_ValidateMultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "invalid"
	cfg.Language = "xx"
	cfg.CacheSize = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error but got none")
	}

	errStr := err.Error()
	for _, want := range []string{"invalid port", "invalid language", "invalid cache size"} {
		if !strings.Contains(errStr, want) {
			t.Errorf("Validate() error should contain %q, got: %v", want, errStr)
		}
	}
	if !strings.HasPrefix(errStr, "configuration validation failed:") {
		t.Errorf("Validate() error should have the aggregate prefix, got: %v", errStr)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_LANGUAGE", "LOG_LEVEL", "LOG_FORMAT", "CACHE_TTL", "CACHE_SIZE", "DEDUPE_KEY", "GOOGLE_SHEET_NAME", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}
	t.Setenv("DATA_DIR", "/srv/exports")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8081" || cfg.Language != "en" || cfg.DedupeKey != "payer" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.RateLimit != 120 {
		t.Errorf("unexpected rate limit default: %d", cfg.RateLimit)
	}
	if cfg.CacheTTL != 5*time.Minute || cfg.CacheSize != 32 {
		t.Errorf("unexpected cache defaults: %v %d", cfg.CacheTTL, cfg.CacheSize)
	}
	if cfg.DataDir != "/srv/exports" {
		t.Errorf("DATA_DIR not honoured: %q", cfg.DataDir)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("APP_LANGUAGE", " FR ")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_SIZE", "64")
	t.Setenv("DEDUPE_KEY", "Notes")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.DataDir != dir {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Language != "fr" || cfg.DedupeKey != "notes" || cfg.LogFormat != "json" {
		t.Errorf("values should be normalized: %+v", cfg)
	}
	if cfg.CacheTTL != 90*time.Second || cfg.CacheSize != 64 {
		t.Errorf("unexpected cache settings: %v %d", cfg.CacheTTL, cfg.CacheSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestConfig_TrustedProxyList(t *testing.T) {
	cfg := Config{TrustedProxies: " 203.0.113.0/24,,10.1.0.0/16 "}
	got := cfg.TrustedProxyList()
	if len(got) != 2 || got[0] != "203.0.113.0/24" || got[1] != "10.1.0.0/16" {
		t.Fatalf("TrustedProxyList() = %v", got)
	}
	if (&Config{}).TrustedProxyList() != nil {
		t.Fatal("unset TRUSTED_PROXIES should yield no CIDRs")
	}
}

func TestLoad_InvalidNumber(t *testing.T) {
	t.Setenv("CACHE_SIZE", "lots")
	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on a non-numeric cache size")
	}
}

func TestConfig_ValidateSheets(t *testing.T) {
	cfg := validConfig()
	if err := cfg.ValidateSheets(); err == nil {
		t.Fatal("missing spreadsheet settings should fail")
	}

	cfg.GoogleSpreadsheetID = "sheet-id"
	cfg.GoogleServiceAccountFile = filepath.Join(t.TempDir(), "sa.json")
	if err := cfg.ValidateSheets(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
