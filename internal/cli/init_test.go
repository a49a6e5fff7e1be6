package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"depenses/internal/config"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.Config
		check  func(t *testing.T, out string)
		silent bool
	}{
		{
			name: "json",
			cfg:  config.Config{LogLevel: "info", LogFormat: "json"},
			check: func(t *testing.T, out string) {
				var entry map[string]any
				if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
					t.Fatalf("expected a JSON line, got %q: %v", out, err)
				}
				if entry["msg"] != "hello" {
					t.Fatalf("unexpected entry %v", entry)
				}
			},
		},
		{
			name: "text",
			cfg:  config.Config{LogLevel: "debug", LogFormat: "text"},
			check: func(t *testing.T, out string) {
				if !strings.Contains(out, "msg=hello") {
					t.Fatalf("expected a text line, got %q", out)
				}
			},
		},
		{
			name:   "level filters info",
			cfg:    config.Config{LogLevel: "error", LogFormat: "text"},
			silent: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := SetupLogger(&tt.cfg, &buf)
			logger.Info("hello")
			if tt.silent {
				if buf.Len() != 0 {
					t.Fatalf("expected no output, got %q", buf.String())
				}
				return
			}
			tt.check(t, buf.String())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("PORT", "9090")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}

	t.Setenv("PORT", "not-a-port")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestNewPipeline(t *testing.T) {
	cfg := config.Defaults()
	cfg.DedupeKey = "notes"
	if NewPipeline(&cfg, nil) == nil {
		t.Fatal("expected a pipeline")
	}
}
