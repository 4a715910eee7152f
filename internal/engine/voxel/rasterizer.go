package voxel

import (
	"errors"
	gomath "math"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/internal/engine/framebuffer"
	"github.com/Faultbox/voxelspace/internal/engine/terrain"
	"github.com/Faultbox/voxelspace/pkg/math"
)

// March parameters. The step grows every iteration, so sampling thins out
// with distance.
const (
	StartDistance = 1.0
	StepStart     = 0.1
	StepIncrement = 0.1
)

// bandWidth is the number of columns handed to one worker task.
const bandWidth = 32

// Probe observes a render pass. Probes are called from a single goroutine:
// setting one forces single-threaded rendering.
type Probe interface {
	// Paint reports that rows [top, bottom) of column x were painted.
	Paint(x, top, bottom int)
	// Step reports the occlusion watermarks after one distance step.
	Step(z float64, occlusion []int)
}

// Options configures a Rasterizer.
type Options struct {
	Workers int               // Concurrent column bands; values below 1 mean 1
	Sky     framebuffer.Pixel // Color the frame is cleared to
}

// Rasterizer renders the terrain into a frame buffer.
type Rasterizer struct {
	opts      Options
	occlusion []int
	probe     Probe
}

// New creates a rasterizer.
func New(opts Options) *Rasterizer {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Rasterizer{opts: opts}
}

// SetProbe installs p for subsequent renders. Pass nil to remove it.
func (r *Rasterizer) SetProbe(p Probe) {
	r.probe = p
}

// Occlusion returns the per-column watermarks left by the last render.
// The slice is reused by the next render.
func (r *Rasterizer) Occlusion() []int {
	return r.occlusion
}

// Render clears fb and paints the terrain seen from cam.
func (r *Rasterizer) Render(cam *camera.State, maps *terrain.Maps, fb *framebuffer.FrameBuffer) error {
	if maps == nil || maps.Elevation == nil || maps.Color == nil {
		return errors.New("render: no maps loaded")
	}

	width, height := fb.Size()
	if len(r.occlusion) != width {
		r.occlusion = make([]int, width)
	}
	for i := range r.occlusion {
		r.occlusion[i] = height
	}
	fb.Clear(r.opts.Sky)

	if r.opts.Workers == 1 || r.probe != nil {
		r.march(cam, maps, fb, 0, width)
		return nil
	}

	var g errgroup.Group
	g.SetLimit(r.opts.Workers)
	for x0 := 0; x0 < width; x0 += bandWidth {
		x0 := x0
		x1 := min(x0+bandWidth, width)
		g.Go(func() error {
			r.march(cam, maps, fb, x0, x1)
			return nil
		})
	}
	return g.Wait()
}

// march walks the distance loop for columns [x0, x1). Columns are independent:
// a band only touches its own watermarks and frame buffer columns.
func (r *Rasterizer) march(cam *camera.State, maps *terrain.Maps, fb *framebuffer.FrameBuffer, x0, x1 int) {
	width, height := fb.Size()
	sinH, cosH := gomath.Sincos(cam.Heading)
	maxDistance := float64(cam.MaxDistance)

	dz := StepStart
	for z := StartDistance; z < maxDistance; z += dz {
		// Field of view segment for this distance, widening with z.
		left := math.Vec2{X: -cosH*z - sinH*z, Y: sinH*z - cosH*z}.Add(cam.Position)
		right := math.Vec2{X: cosH*z - sinH*z, Y: -sinH*z - cosH*z}.Add(cam.Position)
		step := right.Sub(left).Scale(1 / float64(width))

		for x := x0; x < x1; x++ {
			// Indexed rather than accumulated so every band computes the same points.
			mx, my := terrain.Cell(left.Add(step.Scale(float64(x))))

			sy := Project(cam, maps.SampleElevation(mx, my), z)
			row := height
			if sy < float64(height) {
				row = int(max(sy, 0))
			}

			top := min(r.occlusion[x], height)
			if row < top {
				fb.FillColumn(x, row, top, framebuffer.RGB565(maps.SampleColor(mx, my)))
				r.occlusion[x] = row
				if r.probe != nil {
					r.probe.Paint(x, row, top)
				}
			}
		}

		if r.probe != nil {
			r.probe.Step(z, r.occlusion)
		}
		dz += StepIncrement
	}
}
