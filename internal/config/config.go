// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Interaction InteractionConfig `yaml:"interaction"`
	Theme       ThemeConfig       `yaml:"theme"`
	Remote      RemoteConfig      `yaml:"remote"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Background string `yaml:"background"` // Clear colour, "#rrggbb"
}

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float32

// CameraConfig holds the camera rig and its idle orbit.
type CameraConfig struct {
	FOV             float32 `yaml:"fov"` // Vertical, degrees
	Near            float32 `yaml:"near"`
	Far             float32 `yaml:"far"`
	StartPosition   Vec3    `yaml:"start_position"`
	DefaultTarget   Vec3    `yaml:"default_target"`
	DampingFactor   float32 `yaml:"damping_factor"`
	AutoRotateSpeed float32 `yaml:"auto_rotate_speed"`
	OrbitRadius     float32 `yaml:"orbit_radius"`
	OrbitHeight     float32 `yaml:"orbit_height"`
	RotateSpeed     float32 `yaml:"rotate_speed"` // Radians per dragged pixel
	ZoomSpeed       float32 `yaml:"zoom_speed"`
	MinDistance     float32 `yaml:"min_distance"`
	MaxDistance     float32 `yaml:"max_distance"`
}

// InteractionConfig holds timings and thresholds for the interaction core.
type InteractionConfig struct {
	DragThreshold             float32       `yaml:"drag_threshold"`
	FocusDuration             time.Duration `yaml:"focus_duration"`
	ReturnDuration            time.Duration `yaml:"return_duration"`
	ExplodeDuration           time.Duration `yaml:"explode_duration"`
	IdleReturnDelay           time.Duration `yaml:"idle_return_delay"`
	AutoRotateSuspendDistance float32       `yaml:"autorotate_suspend_distance"`
	ClickFlash                time.Duration `yaml:"click_flash"`
	ClearRestOnCollapse       bool          `yaml:"clear_rest_on_collapse"`
	FloatAmplitude            float32       `yaml:"float_amplitude"`
	FloatSpeed                float32       `yaml:"float_speed"` // Radians per second
}

// ThemeConfig selects the colour theme.
type ThemeConfig struct {
	Default    string `yaml:"default"`
	ThemesFile string `yaml:"themes_file"` // Optional YAML merged over the built-in themes
}

// RemoteConfig holds the websocket bridge settings.
type RemoteConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Headset Viewer",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Background: "#f0f0f0",
		},
		Camera: CameraConfig{
			FOV:             45,
			Near:            0.1,
			Far:             1000,
			StartPosition:   Vec3{0, 3, 6},
			DefaultTarget:   Vec3{0, 0.5, 0},
			DampingFactor:   0.05,
			AutoRotateSpeed: 3.25,
			OrbitRadius:     6,
			OrbitHeight:     3,
			RotateSpeed:     0.005,
			ZoomSpeed:       0.1,
			MinDistance:     0.1,
			MaxDistance:     50,
		},
		Interaction: InteractionConfig{
			DragThreshold:             0.01,
			FocusDuration:             time.Second,
			ReturnDuration:            1200 * time.Millisecond,
			ExplodeDuration:           1200 * time.Millisecond,
			IdleReturnDelay:           4 * time.Second,
			AutoRotateSuspendDistance: 1.5,
			ClickFlash:                800 * time.Millisecond,
			ClearRestOnCollapse:       false,
			FloatAmplitude:            0.05,
			FloatSpeed:                1.5,
		},
		Theme: ThemeConfig{
			Default: "ocean",
		},
		Remote: RemoteConfig{
			Enabled: false,
			Listen:  "127.0.0.1:8765",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
