package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Display.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Display.FPS)
	}
	if cfg.Display.Workers != 0 {
		t.Errorf("expected workers 0, got %d", cfg.Display.Workers)
	}

	if cfg.Render.Ramp != " .:-=+*#%@" {
		t.Errorf("unexpected default ramp %q", cfg.Render.Ramp)
	}
	if cfg.Render.Ambient != 0.1 {
		t.Errorf("expected ambient 0.1, got %f", cfg.Render.Ambient)
	}
	if cfg.Render.SpinRate != 0.9 {
		t.Errorf("expected spin rate 0.9, got %f", cfg.Render.SpinRate)
	}

	if cfg.Camera.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.Distance != 5 {
		t.Errorf("expected distance 5, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("expected clip planes 0.1/100, got %f/%f", cfg.Camera.Near, cfg.Camera.Far)
	}

	if cfg.Light.X != 0 || cfg.Light.Y != 0 || cfg.Light.Z != -1 {
		t.Errorf("expected light (0,0,-1), got (%f,%f,%f)", cfg.Light.X, cfg.Light.Y, cfg.Light.Z)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
display:
  fps: 60
  workers: 4

render:
  ramp: " .oO@"
  spin_rate: 1.5

camera:
  fov_degrees: 45
  distance: 8

light:
  x: 0.5
  y: -0.5
  z: -1

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Display.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Display.FPS)
	}
	if cfg.Display.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Display.Workers)
	}
	if cfg.Render.Ramp != " .oO@" {
		t.Errorf("expected ramp ' .oO@', got %q", cfg.Render.Ramp)
	}
	if cfg.Render.SpinRate != 1.5 {
		t.Errorf("expected spin rate 1.5, got %f", cfg.Render.SpinRate)
	}
	// Unset render fields keep defaults.
	if cfg.Render.Ambient != 0.1 {
		t.Errorf("expected default ambient 0.1, got %f", cfg.Render.Ambient)
	}
	if cfg.Camera.FOVDegrees != 45 {
		t.Errorf("expected fov 45, got %f", cfg.Camera.FOVDegrees)
	}
	if cfg.Camera.Distance != 8 {
		t.Errorf("expected distance 8, got %f", cfg.Camera.Distance)
	}

	// Unset fields keep defaults.
	if cfg.Camera.Near != 0.1 {
		t.Errorf("expected default near 0.1, got %f", cfg.Camera.Near)
	}

	if cfg.Light.X != 0.5 || cfg.Light.Y != -0.5 {
		t.Errorf("unexpected light (%f,%f,%f)", cfg.Light.X, cfg.Light.Y, cfg.Light.Z)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
display:
  fps: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadNoFileUsesDefaults(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no config file failed: %v", err)
	}
	if cfg.Display.FPS != Default().Display.FPS {
		t.Errorf("expected default fps, got %d", cfg.Display.FPS)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "asciiview.yaml")
	if err := os.WriteFile(configPath, []byte("display:\n  fps: 24\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find asciiview.yaml in current directory")
	}
}
