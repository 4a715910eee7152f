// Package camera provides the first-person voxel camera state.
package camera

import (
	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/pkg/math"
)

// Initial values for a fresh camera.
const (
	DefaultHeading     = 0.0
	DefaultMaxDistance = 1000
	DefaultEyeHeight   = 50.0
	DefaultScaleHeight = 200.0
)

// State is the camera the rasterizer renders from.
type State struct {
	Position    math.Vec2 // Map space
	Heading     float64   // Radians; 0 looks toward -Y
	EyeHeight   float64
	Horizon     float64 // Screen row of the horizon line
	ScaleHeight float64 // Vertical exaggeration
	MaxDistance int     // Ray march limit in map units
}

// Default returns the start-up camera for a frame of the given height.
func Default(frameHeight int) State {
	return State{
		Heading:     DefaultHeading,
		EyeHeight:   DefaultEyeHeight,
		Horizon:     float64(frameHeight) / 2,
		ScaleHeight: DefaultScaleHeight,
		MaxDistance: DefaultMaxDistance,
	}
}

// FromConfig returns the start-up camera described by cfg.
// A negative horizon selects the middle of the frame.
func FromConfig(cfg config.CameraConfig, frameHeight int) State {
	s := State{
		Position:    math.Vec2{X: cfg.X, Y: cfg.Y},
		Heading:     cfg.Heading,
		EyeHeight:   cfg.EyeHeight,
		Horizon:     cfg.Horizon,
		ScaleHeight: cfg.ScaleHeight,
		MaxDistance: cfg.MaxDistance,
	}
	if s.Horizon < 0 {
		s.Horizon = float64(frameHeight) / 2
	}
	s.ClampHorizon(frameHeight)
	return s
}

// Forward returns the unit vector the camera faces.
func (s *State) Forward() math.Vec2 {
	return math.Heading(s.Heading)
}

// ClampHorizon keeps the horizon inside [0, frameHeight).
func (s *State) ClampHorizon(frameHeight int) {
	s.Horizon = math.Clamp(s.Horizon, 0, float64(frameHeight-1))
}
