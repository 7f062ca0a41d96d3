package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig_Full(t *testing.T) {
	yaml := `
module: BILLING
log_level: debug
color: never
builtins:
  disabled:
    - "<>"
    - ">="
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Module != "BILLING" {
		t.Errorf("module = %q, want BILLING", cfg.Module)
	}
	if cfg.Color != "never" {
		t.Errorf("color = %q, want never", cfg.Color)
	}
	if len(cfg.Builtins.Disabled) != 2 || cfg.Builtins.Disabled[0] != "<>" {
		t.Errorf("disabled = %v", cfg.Builtins.Disabled)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v; want debug", level, err)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Module != DefaultModuleName {
		t.Errorf("module = %q, want %s", cfg.Module, DefaultModuleName)
	}
	if cfg.LogLevel != "warn" || cfg.Color != "auto" {
		t.Errorf("defaults = %q/%q, want warn/auto", cfg.LogLevel, cfg.Color)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "module: [", "parsing test.yaml"},
		{"reserved module", "module: \"?SYSTEM?\"", "reserved"},
		{"module with colon", "module: \"A::B\"", "not a valid module name"},
		{"bad level", "log_level: loud", "unknown log_level"},
		{"bad color", "color: rainbow", "color must be"},
		{"empty disabled", "builtins:\n  disabled: [\"\"]", "builtins.disabled[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAndFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("module: RULES\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig: %v", err)
	}
	if found != path {
		t.Errorf("FindConfig = %q, want %q", found, path)
	}

	cfg, err := LoadConfig(found)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Module != "RULES" {
		t.Errorf("module = %q, want RULES", cfg.Module)
	}

	if _, err := LoadConfig(filepath.Join(root, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
