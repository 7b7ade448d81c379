package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	// Test camera defaults
	if cfg.Camera.StartPosition != (Vec3{0, 3, 6}) {
		t.Errorf("expected start position (0,3,6), got %v", cfg.Camera.StartPosition)
	}
	if cfg.Camera.DefaultTarget != (Vec3{0, 0.5, 0}) {
		t.Errorf("expected default target (0,0.5,0), got %v", cfg.Camera.DefaultTarget)
	}
	if cfg.Camera.OrbitRadius != 6 || cfg.Camera.OrbitHeight != 3 {
		t.Errorf("expected orbit circle r=6 h=3, got r=%v h=%v", cfg.Camera.OrbitRadius, cfg.Camera.OrbitHeight)
	}

	// Test interaction defaults
	if cfg.Interaction.DragThreshold != 0.01 {
		t.Errorf("expected drag threshold 0.01, got %v", cfg.Interaction.DragThreshold)
	}
	if cfg.Interaction.FocusDuration != time.Second {
		t.Errorf("expected focus duration 1s, got %v", cfg.Interaction.FocusDuration)
	}
	if cfg.Interaction.ReturnDuration != 1200*time.Millisecond {
		t.Errorf("expected return duration 1.2s, got %v", cfg.Interaction.ReturnDuration)
	}
	if cfg.Interaction.ClearRestOnCollapse {
		t.Error("expected rest positions to be kept on collapse by default")
	}

	// Test theme and logging defaults
	if cfg.Theme.Default != "ocean" {
		t.Errorf("expected theme 'ocean', got %s", cfg.Theme.Default)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Remote.Enabled {
		t.Error("expected remote bridge to be disabled by default")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  start_position: [1, 2, 3]
  auto_rotate_speed: 1.5

interaction:
  drag_threshold: 0.05
  idle_return_delay: 10s
  clear_rest_on_collapse: true

theme:
  default: "carbon"
  themes_file: "my-themes.yaml"

remote:
  enabled: true
  listen: ":9000"

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Camera.StartPosition != (Vec3{1, 2, 3}) {
		t.Errorf("expected start position (1,2,3), got %v", cfg.Camera.StartPosition)
	}
	if cfg.Camera.AutoRotateSpeed != 1.5 {
		t.Errorf("expected auto rotate speed 1.5, got %v", cfg.Camera.AutoRotateSpeed)
	}
	if cfg.Camera.OrbitRadius != 6 {
		t.Errorf("unset orbit radius should keep default 6, got %v", cfg.Camera.OrbitRadius)
	}
	if cfg.Interaction.DragThreshold != 0.05 {
		t.Errorf("expected drag threshold 0.05, got %v", cfg.Interaction.DragThreshold)
	}
	if cfg.Interaction.IdleReturnDelay != 10*time.Second {
		t.Errorf("expected idle return delay 10s, got %v", cfg.Interaction.IdleReturnDelay)
	}
	if !cfg.Interaction.ClearRestOnCollapse {
		t.Error("expected clear_rest_on_collapse to be true")
	}
	if cfg.Theme.Default != "carbon" || cfg.Theme.ThemesFile != "my-themes.yaml" {
		t.Errorf("unexpected theme config %+v", cfg.Theme)
	}
	if !cfg.Remote.Enabled || cfg.Remote.Listen != ":9000" {
		t.Errorf("unexpected remote config %+v", cfg.Remote)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Isolate from any real user config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "theme flag",
			setup: func() { *flagTheme = "ember" },
			verify: func(cfg *Config) {
				if cfg.Theme.Default != "ember" {
					t.Errorf("expected theme 'ember', got %s", cfg.Theme.Default)
				}
			},
			teardown: func() { *flagTheme = "" },
		},
		{
			name:  "listen flag enables remote",
			setup: func() { *flagListen = ":7000" },
			verify: func(cfg *Config) {
				if !cfg.Remote.Enabled || cfg.Remote.Listen != ":7000" {
					t.Errorf("unexpected remote config %+v", cfg.Remote)
				}
			},
			teardown: func() { *flagListen = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  near: 5\n  far: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for inverted clip range")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative near", func(c *Config) { c.Camera.Near = -1 }},
		{"damping above one", func(c *Config) { c.Camera.DampingFactor = 1.5 }},
		{"negative drag threshold", func(c *Config) { c.Interaction.DragThreshold = -0.1 }},
		{"zero idle delay", func(c *Config) { c.Interaction.IdleReturnDelay = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Theme.Default = "frost"
	cfg.Interaction.IdleReturnDelay = 7 * time.Second
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Theme.Default != "frost" {
		t.Errorf("expected theme 'frost', got %s", loaded.Theme.Default)
	}
	if loaded.Interaction.IdleReturnDelay != 7*time.Second {
		t.Errorf("expected idle delay 7s, got %v", loaded.Interaction.IdleReturnDelay)
	}
}
