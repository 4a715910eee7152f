// Package world owns the per-run renderer state: maps, camera, frame buffer
// and rasterizer. Everything here runs on the frame loop's goroutine.
package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/voxel"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// Settings fixes everything a fresh world is built from.
type Settings struct {
	FrameWidth  int
	FrameHeight int
	MapName     string
	Workers     int
	Sky         uint32 // 0xRRGGBB
	Camera      config.CameraConfig
	Movement    config.MovementConfig
}

// SettingsFromConfig extracts world settings from the loaded config.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	sky, err := config.ParseColor(cfg.Render.SkyColor)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		FrameWidth:  cfg.Render.Width,
		FrameHeight: cfg.Render.Height,
		MapName:     cfg.Maps.Name,
		Workers:     cfg.Render.Workers,
		Sky:         sky,
		Camera:      cfg.Camera,
		Movement:    cfg.Movement,
	}, nil
}

// MapLoader loads the named maps.
type MapLoader func(name string) (*terrain.Maps, error)

// World is the owned context passed to movement and rendering.
type World struct {
	settings Settings
	load     MapLoader
	st       *state
}

// state is replaced as a whole on reset, never patched.
type state struct {
	maps   *terrain.Maps
	camera camera.State
	target camera.State // where smoothing is heading
	fb     *framebuffer.FrameBuffer
	raster *voxel.Rasterizer
}

// New loads the maps and builds the start-up state. A load failure is fatal.
func New(settings Settings, load MapLoader) (*World, error) {
	w := &World{settings: settings, load: load}
	st, err := w.build()
	if err != nil {
		return nil, err
	}
	w.st = st
	return w, nil
}

func (w *World) build() (*state, error) {
	maps, err := w.load(w.settings.MapName)
	if err != nil {
		return nil, fmt.Errorf("loading map %q: %w", w.settings.MapName, err)
	}

	cam := camera.FromConfig(w.settings.Camera, w.settings.FrameHeight)
	st := &state{
		maps:   maps,
		camera: cam,
		target: cam,
		fb:     framebuffer.New(w.settings.FrameWidth, w.settings.FrameHeight),
		raster: voxel.New(voxel.Options{
			Workers: w.settings.Workers,
			Sky:     framebuffer.RGB565(w.settings.Sky),
		}),
	}
	preventUnderground(st, w.settings.Movement.Clearance)
	return st, nil
}

// Reset rebuilds maps, camera and buffers as on start-up. On failure the
// current state is kept untouched.
func (w *World) Reset() error {
	st, err := w.build()
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	w.st = st
	logger.Info("world reset", zap.String("map", w.settings.MapName))
	return nil
}

// Render paints the current view into the frame buffer.
func (w *World) Render() error {
	return w.st.raster.Render(&w.st.camera, w.st.maps, w.st.fb)
}

// Camera returns a copy of the current camera.
func (w *World) Camera() camera.State {
	return w.st.camera
}

// Place moves the camera, and its smoothing target, to s. The terrain floor is
// enforced afterwards.
func (w *World) Place(s camera.State) {
	s.ClampHorizon(w.settings.FrameHeight)
	w.st.camera = s
	w.st.target = s
	w.PreventUnderground()
}

// Maps returns the loaded maps.
func (w *World) Maps() *terrain.Maps {
	return w.st.maps
}

// FrameBuffer returns the frame the last Render painted.
func (w *World) FrameBuffer() *framebuffer.FrameBuffer {
	return w.st.fb
}

// Rasterizer returns the rasterizer, for installing probes.
func (w *World) Rasterizer() *voxel.Rasterizer {
	return w.st.raster
}

// Settings returns the settings the world was built from.
func (w *World) Settings() Settings {
	return w.settings
}
