package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.GRPCAddr != ":50051" || cfg.WebAddr != ":8081" {
		t.Errorf("unexpected addresses: %q %q", cfg.GRPCAddr, cfg.WebAddr)
	}
	if cfg.PageSize != "A4" || cfg.FontFamily != "Helvetica" || cfg.Author != "Shuvam" {
		t.Errorf("unexpected pdf defaults: %+v", cfg)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected zero seed, got %d", cfg.Seed)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("WORKSHEET_WEB_ADDR", ":9000")
	t.Setenv("WORKSHEET_SEED", "42")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.WebAddr != ":9000" || cfg.Seed != 42 {
		t.Errorf("expected env overrides, got %+v", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WORKSHEET_AUTHOR=Ada\nWORKSHEET_OUT_DIR=/tmp/sheets\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// register cleanup so the variables godotenv sets do not leak
	t.Setenv("WORKSHEET_AUTHOR", "")
	t.Setenv("WORKSHEET_OUT_DIR", "")
	os.Unsetenv("WORKSHEET_AUTHOR")
	os.Unsetenv("WORKSHEET_OUT_DIR")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cfg.Author != "Ada" || cfg.OutDir != "/tmp/sheets" {
		t.Errorf("expected .env values, got %+v", cfg)
	}
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("WORKSHEET_SEED", "not-a-number")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Errorf("expected a parse error")
	}
}
