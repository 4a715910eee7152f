// Package renderer presents software-rendered frames through OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/shader"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int // viewport, in drawable pixels
	Height int
}

// Renderer uploads a frame buffer into a texture and stretches it over the
// viewport.
type Renderer struct {
	config Config

	program *shader.Program
	vao     uint32 // empty, core profile needs one bound to draw

	texture       uint32
	textureWidth  int
	textureHeight int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.CompileProgram(shader.BlitVertexShader, shader.BlitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program.Use()
	gl.Uniform1i(r.program.Uniform("uFrame"), 0)

	gl.GenVertexArrays(1, &r.vao)
	gl.GenTextures(1, &r.texture)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload copies fb into the frame texture, reallocating it when the frame
// size changes.
func (r *Renderer) Upload(fb *framebuffer.FrameBuffer) {
	w, h := fb.Size()
	if w == 0 || h == 0 {
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	// RGB565 rows are width*2 bytes, not always 4-aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 2)

	if w != r.textureWidth || h != r.textureHeight {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(w), int32(h), 0,
			gl.RGB, gl.UNSIGNED_SHORT_5_6_5, gl.Ptr(&fb.Pix()[0]))
		r.textureWidth, r.textureHeight = w, h
		logger.Debug("frame texture allocated", zap.Int("width", w), zap.Int("height", h))
		return
	}

	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h),
		gl.RGB, gl.UNSIGNED_SHORT_5_6_5, gl.Ptr(&fb.Pix()[0]))
}

// Draw clears the viewport and draws the last uploaded frame over it.
func (r *Renderer) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if r.textureWidth == 0 {
		return
	}

	r.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}
