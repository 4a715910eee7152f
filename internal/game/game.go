// Package game implements the main loop: input, movement, rendering and
// presentation.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/assets"
	"github.com/Faultbox/voxelspace/internal/config"
	"github.com/Faultbox/voxelspace/internal/engine/debug"
	"github.com/Faultbox/voxelspace/internal/engine/input"
	"github.com/Faultbox/voxelspace/internal/engine/renderer"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/internal/engine/window"
	"github.com/Faultbox/voxelspace/internal/game/timing"
	"github.com/Faultbox/voxelspace/internal/game/world"
	"github.com/Faultbox/voxelspace/internal/logger"
)

const title = "VoxelSpace"

// Game is the main game instance.
type Game struct {
	config      *config.Config
	running     bool
	assets      *assets.Manager
	world       *world.World
	window      *window.Window
	renderer    *renderer.Renderer
	input       *input.Input
	screenshots *debug.ScreenshotCapture
}

// New loads the map and opens the window. Map loading happens first so a bad
// map fails before any window appears.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("map", cfg.Maps.Name),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("frame_width", cfg.Render.Width),
		zap.Int("frame_height", cfg.Render.Height),
		zap.Int("workers", cfg.Render.Workers),
	)

	g := &Game{
		config:      cfg,
		assets:      assets.NewManager(),
		input:       input.New(input.DefaultBindings()),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "voxelspace"),
	}
	if cfg.Maps.Dir != "" {
		if err := g.assets.AddDir(cfg.Maps.Dir); err != nil {
			return nil, fmt.Errorf("failed to add map dir: %w", err)
		}
	}
	logger.Debug("maps available", zap.Strings("names", g.assets.MapNames()))

	settings, err := world.SettingsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	g.world, err = world.New(settings, func(name string) (*terrain.Maps, error) {
		return terrain.Load(g.assets, name)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      g.title(0),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the window is closed or Escape is
// pressed.
func (g *Game) Run() error {
	g.running = true
	clock := timing.NewClock(time.Now(), g.config.Graphics.FPSLimit)

	logger.Info("starting game loop")

	for g.running {
		dt, sampled := clock.Tick(time.Now())

		// 1. Process input
		if g.input.Update() || g.input.Triggered(input.ActionQuit) {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.renderer.Resize(g.window.DrawableSize())
			}
		}

		// 2. Move the camera. A failed reset keeps the previous world.
		if err := g.world.Update(g.input.Controls(), dt); err != nil {
			logger.Error("reset failed, keeping current state", zap.Error(err))
		}

		// 3. Render
		if err := g.world.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if g.input.Triggered(input.ActionScreenshot) {
			g.screenshot()
		}

		// 4. Present
		g.renderer.Upload(g.world.FrameBuffer())
		g.renderer.Draw()
		g.window.SwapBuffers()

		if sampled {
			if g.config.Graphics.ShowFPS {
				g.window.SetTitle(g.title(clock.FPS()))
			}
			cam := g.world.Camera()
			logger.Debug("fps",
				zap.Int("count", clock.FPS()),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Float64("x", cam.Position.X),
				zap.Float64("y", cam.Position.Y),
				zap.Float64("eye", cam.EyeHeight),
			)
		}

		if wait := clock.Wait(time.Now()); wait > 0 {
			sdl.Delay(uint32(wait.Milliseconds()))
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	if g.assets != nil {
		g.assets.Close()
	}
}

func (g *Game) screenshot() {
	name, err := g.screenshots.CaptureFromImage(g.world.FrameBuffer().Image())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (g *Game) title(fps int) string {
	if !g.config.Graphics.ShowFPS {
		return fmt.Sprintf("%s - %s", title, g.config.Maps.Name)
	}
	return fmt.Sprintf("%s - %s - %d FPS", title, g.config.Maps.Name, fps)
}
