package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Frame buffer renders at half the window size
	if cfg.Render.Width != 400 || cfg.Render.Height != 300 {
		t.Errorf("expected render size 400x300, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Workers != 1 {
		t.Errorf("expected 1 worker, got %d", cfg.Render.Workers)
	}

	if cfg.Camera.Heading != 0 {
		t.Errorf("expected heading 0, got %f", cfg.Camera.Heading)
	}
	if cfg.Camera.MaxDistance != 1000 {
		t.Errorf("expected max distance 1000, got %d", cfg.Camera.MaxDistance)
	}
	if cfg.Camera.EyeHeight != 50 {
		t.Errorf("expected eye height 50, got %f", cfg.Camera.EyeHeight)
	}
	if cfg.Camera.ScaleHeight != 200 {
		t.Errorf("expected scale height 200, got %f", cfg.Camera.ScaleHeight)
	}
	if cfg.Camera.Horizon >= 0 {
		t.Errorf("expected negative horizon (half frame), got %f", cfg.Camera.Horizon)
	}

	if cfg.Maps.Name != "valley" {
		t.Errorf("expected map 'valley', got %s", cfg.Maps.Name)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

render:
  width: 640
  height: 360
  workers: 4
  sky_color: "#87ceeb"

camera:
  x: 512
  y: 256
  eye_height: 80
  max_distance: 600

movement:
  move_speed: 200
  clearance: 15

maps:
  name: canyon
  dir: /srv/maps

logging:
  level: "debug"
  log_file: "voxel.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Render.Width != 640 || cfg.Render.Height != 360 {
		t.Errorf("expected render 640x360, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Render.Workers)
	}

	if cfg.Camera.X != 512 || cfg.Camera.Y != 256 {
		t.Errorf("expected camera at (512,256), got (%f,%f)", cfg.Camera.X, cfg.Camera.Y)
	}
	if cfg.Camera.EyeHeight != 80 {
		t.Errorf("expected eye height 80, got %f", cfg.Camera.EyeHeight)
	}
	// Fields absent from the file keep their defaults
	if cfg.Camera.ScaleHeight != 200 {
		t.Errorf("expected default scale height 200, got %f", cfg.Camera.ScaleHeight)
	}
	if cfg.Movement.TurnSpeed != 1.5 {
		t.Errorf("expected default turn speed 1.5, got %f", cfg.Movement.TurnSpeed)
	}
	if cfg.Movement.Clearance != 15 {
		t.Errorf("expected clearance 15, got %f", cfg.Movement.Clearance)
	}

	if cfg.Maps.Name != "canyon" || cfg.Maps.Dir != "/srv/maps" {
		t.Errorf("expected map canyon in /srv/maps, got %s in %s", cfg.Maps.Name, cfg.Maps.Dir)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "voxel.log" {
		t.Errorf("expected log file 'voxel.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero render width", func(c *Config) { c.Render.Width = 0 }, true},
		{"negative window height", func(c *Config) { c.Graphics.Height = -1 }, true},
		{"no workers", func(c *Config) { c.Render.Workers = 0 }, true},
		{"max distance one", func(c *Config) { c.Camera.MaxDistance = 1 }, false},
		{"max distance zero", func(c *Config) { c.Camera.MaxDistance = 0 }, true},
		{"bad sky color", func(c *Config) { c.Render.SkyColor = "blue" }, true},
		{"empty map name", func(c *Config) { c.Maps.Name = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#000000", 0, false},
		{"#ff8000", 0xff8000, false},
		{"#87CEEB", 0x87ceeb, false},
		{"ff8000", 0, true},
		{"#fff", 0, true},
		{"#gggggg", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 1024\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
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
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "map flag",
			setup: func() { *flagMap = "canyon" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Maps.Name != "canyon" {
					t.Errorf("expected map canyon, got %s", cfg.Maps.Name)
				}
			},
			teardown: func() { *flagMap = "" },
		},
		{
			name:  "workers flag",
			setup: func() { *flagWorkers = 8 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.Workers != 8 {
					t.Errorf("expected 8 workers, got %d", cfg.Render.Workers)
				}
			},
			teardown: func() { *flagWorkers = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("render:\n  workers: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for zero workers")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Maps.Name = "canyon"
	cfg.Camera.EyeHeight = 120
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Maps.Name != "canyon" {
		t.Errorf("expected map canyon after reload, got %s", loaded.Maps.Name)
	}
	if loaded.Camera.EyeHeight != 120 {
		t.Errorf("expected eye height 120 after reload, got %f", loaded.Camera.EyeHeight)
	}
}
