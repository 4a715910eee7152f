// Package config handles renderer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Render   RenderConfig   `yaml:"render"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Maps     MapsConfig     `yaml:"maps"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and presentation settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	ShowFPS    bool `yaml:"show_fps"`
}

// RenderConfig holds frame buffer settings.
type RenderConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Workers  int    `yaml:"workers"`   // Column bands rendered concurrently
	SkyColor string `yaml:"sky_color"` // "#RRGGBB"
}

// CameraConfig holds the initial camera state.
type CameraConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Heading     float64 `yaml:"heading"`
	EyeHeight   float64 `yaml:"eye_height"`
	ScaleHeight float64 `yaml:"scale_height"`
	MaxDistance int     `yaml:"max_distance"`
	Horizon     float64 `yaml:"horizon"` // Negative means half the frame height
}

// MovementConfig holds control rates.
type MovementConfig struct {
	TurnSpeed  float64 `yaml:"turn_speed"`  // radians per second
	LookSpeed  float64 `yaml:"look_speed"`  // rows per second
	MoveSpeed  float64 `yaml:"move_speed"`  // map units per second
	ClimbSpeed float64 `yaml:"climb_speed"` // height units per second
	Clearance  float64 `yaml:"clearance"`
}

// MapsConfig selects the terrain.
type MapsConfig struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"` // Optional override directory
}

// DebugConfig holds debugging aids.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			ShowFPS:    true,
		},
		Render: RenderConfig{
			Width:    400,
			Height:   300,
			Workers:  1,
			SkyColor: "#000000",
		},
		Camera: CameraConfig{
			Heading:     0,
			EyeHeight:   50,
			ScaleHeight: 200,
			MaxDistance: 1000,
			Horizon:     -1,
		},
		Movement: MovementConfig{
			TurnSpeed:  1.5,
			LookSpeed:  300,
			MoveSpeed:  120,
			ClimbSpeed: 60,
			Clearance:  10,
		},
		Maps: MapsConfig{
			Name: "valley",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the renderer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		errs = append(errs, fmt.Errorf("render size %dx%d must be positive", c.Render.Width, c.Render.Height))
	}
	if c.Render.Workers < 1 {
		errs = append(errs, fmt.Errorf("render workers %d must be at least 1", c.Render.Workers))
	}
	if c.Camera.MaxDistance < 1 {
		errs = append(errs, fmt.Errorf("camera max_distance %d must be at least 1", c.Camera.MaxDistance))
	}
	if _, err := ParseColor(c.Render.SkyColor); err != nil {
		errs = append(errs, fmt.Errorf("render sky_color: %w", err))
	}
	if c.Maps.Name == "" {
		errs = append(errs, errors.New("maps name is empty"))
	}
	return errors.Join(errs...)
}

// ParseColor parses a "#RRGGBB" string into a packed 0xRRGGBB value.
func ParseColor(s string) (uint32, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return 0, fmt.Errorf("color %q is not #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint32(v), nil
}
