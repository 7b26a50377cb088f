package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gpxprof.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Units != "metric" || cfg.XAxis != "distance" || cfg.YAxis != "elevation" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults must validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "units: imperial\ny: velocity\npoints: 500\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Units != "imperial" {
		t.Errorf("Units = %q, want imperial", cfg.Units)
	}
	if cfg.YAxis != "velocity" || cfg.Points != 500 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.XAxis != "distance" {
		t.Errorf("XAxis = %q, want default distance", cfg.XAxis)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	if _, err := Load(writeConfig(t, "units: nautical\n")); err == nil {
		t.Error("Unknown unit system must be rejected")
	}
	if _, err := Load(writeConfig(t, "points: -5\n")); err == nil {
		t.Error("Negative point count must be rejected")
	}
	if _, err := Load(writeConfig(t, "units: [broken\n")); err == nil {
		t.Error("Malformed YAML must be rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Missing file must be reported")
	}
}
