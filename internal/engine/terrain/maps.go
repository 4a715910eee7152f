// Package terrain holds the elevation and color maps the voxel renderer samples.
// Both grids tile infinitely: every coordinate is wrapped with floor-mod.
package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/voxelspace/pkg/math"
)

// ErrEmptyGrid is returned when a grid would have no cells.
var ErrEmptyGrid = errors.New("empty grid")

// ElevationGrid is a row-major grid of 8-bit height samples.
type ElevationGrid struct {
	width, height int
	samples       []uint8
}

// NewElevationGrid wraps samples in a grid. The slice is owned by the grid afterwards.
func NewElevationGrid(width, height int, samples []uint8) (*ElevationGrid, error) {
	if err := checkDims(width, height, len(samples)); err != nil {
		return nil, fmt.Errorf("elevation grid: %w", err)
	}
	return &ElevationGrid{width: width, height: height, samples: samples}, nil
}

// Width returns the number of columns.
func (g *ElevationGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *ElevationGrid) Height() int { return g.height }

// At returns the sample at (x, y) after wrapping both coordinates.
func (g *ElevationGrid) At(x, y int) uint8 {
	return g.samples[math.FloorMod(y, g.height)*g.width+math.FloorMod(x, g.width)]
}

// ColorGrid is a row-major grid of packed 0xRRGGBB samples.
type ColorGrid struct {
	width, height int
	samples       []uint32
}

// NewColorGrid wraps samples in a grid. The slice is owned by the grid afterwards.
func NewColorGrid(width, height int, samples []uint32) (*ColorGrid, error) {
	if err := checkDims(width, height, len(samples)); err != nil {
		return nil, fmt.Errorf("color grid: %w", err)
	}
	return &ColorGrid{width: width, height: height, samples: samples}, nil
}

// Width returns the number of columns.
func (g *ColorGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *ColorGrid) Height() int { return g.height }

// At returns the sample at (x, y) after wrapping both coordinates.
func (g *ColorGrid) At(x, y int) uint32 {
	return g.samples[math.FloorMod(y, g.height)*g.width+math.FloorMod(x, g.width)]
}

func checkDims(width, height, n int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrEmptyGrid)
	}
	if n != width*height {
		return fmt.Errorf("%dx%d needs %d samples, got %d", width, height, width*height, n)
	}
	return nil
}

// Maps pairs an elevation grid with its color grid. Read-only once built, so
// concurrent renderers may share it without locking.
type Maps struct {
	Name      string
	Elevation *ElevationGrid
	Color     *ColorGrid
}

// NewMaps pairs two grids. They may differ in size; each wraps on its own dimensions.
func NewMaps(name string, elevation *ElevationGrid, color *ColorGrid) *Maps {
	return &Maps{Name: name, Elevation: elevation, Color: color}
}

// SampleElevation returns the wrapped elevation at a map coordinate.
func (m *Maps) SampleElevation(x, y int) uint8 {
	return m.Elevation.At(x, y)
}

// SampleColor returns the wrapped color at a map coordinate.
func (m *Maps) SampleColor(x, y int) uint32 {
	return m.Color.At(x, y)
}

// ElevationAt samples the elevation under a continuous map position.
func (m *Maps) ElevationAt(p math.Vec2) uint8 {
	x, y := Cell(p)
	return m.Elevation.At(x, y)
}

// Cell returns the integer cell containing p. Flooring keeps negative
// positions in the cell to their left instead of truncating toward zero.
func Cell(p math.Vec2) (int, int) {
	return floor(p.X), floor(p.Y)
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}

// Flat builds maps of a single elevation and color. Used for tests and as a
// placeholder surface.
func Flat(width, height int, elevation uint8, color uint32) *Maps {
	e := make([]uint8, width*height)
	c := make([]uint32, width*height)
	for i := range e {
		e[i] = elevation
		c[i] = color
	}
	eg, err := NewElevationGrid(width, height, e)
	if err != nil {
		panic(err)
	}
	cg, err := NewColorGrid(width, height, c)
	if err != nil {
		panic(err)
	}
	return NewMaps("flat", eg, cg)
}
