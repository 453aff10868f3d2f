package config

import (
	"os"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.WriteString(contents); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpFile.Close()

	return tmpFile.Name()
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 720 {
		t.Errorf("Expected 1024x720 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Fan.StepDegrees != 1 {
		t.Errorf("Expected 1 degree fan step, got %v", cfg.Fan.StepDegrees)
	}
	if cfg.Walls.Count != 5 {
		t.Errorf("Expected 5 walls, got %d", cfg.Walls.Count)
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("no_such_config.json")
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got error: %v", err)
	}
	if cfg.Window.Title != "Sightline" {
		t.Errorf("Expected default title 'Sightline', got '%s'", cfg.Window.Title)
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"fan": {"step_degrees": 7.5}, "walls": {"count": 12}}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Fan.StepDegrees != 7.5 {
		t.Errorf("Expected fan step 7.5, got %v", cfg.Fan.StepDegrees)
	}
	if cfg.Walls.Count != 12 {
		t.Errorf("Expected 12 walls, got %d", cfg.Walls.Count)
	}
	// Untouched settings keep their defaults.
	if cfg.Window.Width != 1024 {
		t.Errorf("Expected default width 1024, got %d", cfg.Window.Width)
	}
}

func TestLoadConfigRejectsBadFanStep(t *testing.T) {
	for _, body := range []string{
		`{"fan": {"step_degrees": 0}}`,
		`{"fan": {"step_degrees": -2}}`,
		`{"fan": {"step_degrees": 361}}`,
	} {
		path := writeTempConfig(t, body)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("Expected an error for %s, got none", body)
		}
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{broken`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected an error for malformed JSON, got none")
	}
}
