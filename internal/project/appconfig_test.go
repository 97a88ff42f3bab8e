package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/sheathcalc/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSheetWidthInches = 48
	cfg.DefaultPitch = 6
	cfg.Theme = "dark"
	cfg.RecentExports = []string{"/tmp/barn.pdf", "/tmp/barn.xlsx"}
	cfg.CompareWidths = []float64{36, 48}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultSheetWidthInches != 48 {
		t.Errorf("expected DefaultSheetWidthInches=48, got %f", loaded.DefaultSheetWidthInches)
	}
	if loaded.DefaultPitch != 6 {
		t.Errorf("expected DefaultPitch=6, got %f", loaded.DefaultPitch)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if len(loaded.RecentExports) != 2 {
		t.Errorf("expected 2 recent exports, got %d", len(loaded.RecentExports))
	}
	if len(loaded.CompareWidths) != 2 {
		t.Errorf("expected 2 compare widths, got %v", loaded.CompareWidths)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultLength != defaults.DefaultLength {
		t.Errorf("expected default length %f, got %f", defaults.DefaultLength, cfg.DefaultLength)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme": "light", "default_width": 24}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Theme != "light" || cfg.DefaultWidth != 24 {
		t.Errorf("file values not loaded: %+v", cfg)
	}
	if cfg.DefaultLength != 40 || cfg.DefaultSheetWidthInches != 36 {
		t.Errorf("missing fields should keep defaults: %+v", cfg)
	}
	if cfg.RecentExports == nil {
		t.Error("RecentExports should never be nil")
	}
	if len(cfg.CompareWidths) == 0 {
		t.Error("CompareWidths should fall back to defaults")
	}
}

func TestLoadAppConfigNullRecentExports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"recent_exports": null, "compare_widths": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentExports == nil {
		t.Error("RecentExports should never be nil")
	}
	if len(cfg.CompareWidths) != 6 {
		t.Errorf("expected default compare widths, got %v", cfg.CompareWidths)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestSaveAppConfigCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "config.json")
	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if filepath.Base(p) != "config.json" || filepath.Base(filepath.Dir(p)) != ".sheathcalc" {
		t.Errorf("unexpected config path %s", p)
	}
}
