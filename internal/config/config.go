package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"depenses/internal/i18n"
)

// DefaultContainerDataDir is used when DATA_DIR is unset and it exists.
const DefaultContainerDataDir = "/app/data"

type Config struct {
	// HTTP Server
	Port           string `koanf:"PORT"`
	RateLimit      int    `koanf:"RATE_LIMIT"`      // chart and API requests per client per minute, 0 disables
	TrustedProxies string `koanf:"TRUSTED_PROXIES"` // extra comma-separated CIDRs allowed to forward client IPs

	// Input
	DataDir   string `koanf:"DATA_DIR"`
	DedupeKey string `koanf:"DEDUPE_KEY"`

	// Presentation
	Language string `koanf:"APP_LANGUAGE"`

	// Logging
	LogLevel  string `koanf:"LOG_LEVEL"`
	LogFormat string `koanf:"LOG_FORMAT"`

	// Result cache
	CacheTTL  time.Duration `koanf:"CACHE_TTL"`
	CacheSize int           `koanf:"CACHE_SIZE"`

	// Google Sheets export
	GoogleSpreadsheetID       string `koanf:"GOOGLE_SPREADSHEET_ID"`
	GoogleSheetName           string `koanf:"GOOGLE_SHEET_NAME"`
	GoogleServiceAccountFile  string `koanf:"GOOGLE_SERVICE_ACCOUNT_FILE"`
	GoogleServiceAccountJSON  string `koanf:"GOOGLE_SERVICE_ACCOUNT_JSON"`
	GoogleApplicationCredFile string `koanf:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// Defaults returns the configuration used for unset variables.
func Defaults() Config {
	return Config{
		Port:            "8081",
		RateLimit:       120,
		DataDir:         defaultDataDir(),
		DedupeKey:       "payer",
		Language:        "en",
		LogLevel:        "info",
		LogFormat:       "text",
		CacheTTL:        5 * time.Minute,
		CacheSize:       32,
		GoogleSheetName: "Summary",
	}
}

func defaultDataDir() string {
	if fi, err := os.Stat(DefaultContainerDataDir); err == nil && fi.IsDir() {
		return DefaultContainerDataDir
	}
	return "./data"
}

// Load reads the configuration from the environment. Empty variables
// count as unset.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	for key, v := range k.All() {
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			k.Delete(key)
		}
	}

	cfg := Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	cfg.Language = strings.ToLower(strings.TrimSpace(cfg.Language))
	cfg.DedupeKey = strings.ToLower(strings.TrimSpace(cfg.DedupeKey))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.RateLimit < 0 || c.RateLimit > 10000 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be between 0 and 10000", c.RateLimit))
	}

	for _, cidr := range c.TrustedProxyList() {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			errors = append(errors, fmt.Sprintf("invalid trusted proxy '%s': must be a CIDR", cidr))
		}
	}

	if strings.TrimSpace(c.DataDir) == "" {
		errors = append(errors, "data directory cannot be empty")
	}

	if !i18n.Supported(c.Language) {
		errors = append(errors, fmt.Sprintf("invalid language '%s': must be one of [en fr]", c.Language))
	}

	if !oneOf(c.DedupeKey, "payer", "notes") {
		errors = append(errors, fmt.Sprintf("invalid dedupe key '%s': must be one of [payer notes]", c.DedupeKey))
	}

	if !oneOf(c.LogFormat, "text", "json") {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of [text json]", c.LogFormat))
	}

	if !oneOf(strings.ToLower(c.LogLevel), "debug", "info", "warn", "warning", "error") {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must not be negative", c.CacheTTL))
	} else if c.CacheTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be at most 24 hours", c.CacheTTL))
	}

	if c.CacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	} else if c.CacheSize > 1000 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must be at most 1000", c.CacheSize))
	}

	// Check if credentials file exists (if specified)
	if c.GoogleServiceAccountFile != "" {
		if _, err := os.Stat(c.GoogleServiceAccountFile); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleServiceAccountFile))
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// ValidateSheets checks the settings needed by the spreadsheet export.
func (c *Config) ValidateSheets() error {
	var errors []string
	if c.GoogleSpreadsheetID == "" {
		errors = append(errors, "Google Spreadsheet ID is required for the sheets export")
	}
	if c.GoogleSheetName == "" {
		errors = append(errors, "Google Sheet name is required for the sheets export")
	}
	if c.GoogleServiceAccountJSON == "" && c.GoogleServiceAccountFile == "" && c.GoogleApplicationCredFile == "" {
		errors = append(errors, "one of GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or GOOGLE_APPLICATION_CREDENTIALS must be provided for the sheets export")
	}
	if len(errors) > 0 {
		return fmt.Errorf("sheets configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// TrustedProxyList splits TRUSTED_PROXIES into its CIDRs.
func (c *Config) TrustedProxyList() []string {
	var out []string
	for _, p := range strings.Split(c.TrustedProxies, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
