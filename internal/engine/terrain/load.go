package terrain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/texture"
	"github.com/Faultbox/voxelspace/internal/logger"
)

// Source supplies encoded image bytes by base name.
type Source interface {
	LoadAny(base string, exts ...string) (string, []byte, error)
}

// Load decodes <name>_height and <name>_color from src. Any failure is fatal for
// the map: no partial terrain is returned.
func Load(src Source, name string) (*Maps, error) {
	file, data, err := src.LoadAny(name+"_height", texture.Extensions...)
	if err != nil {
		return nil, fmt.Errorf("loading height map %q: %w", name, err)
	}
	img, err := texture.Decode(file, data)
	if err != nil {
		return nil, fmt.Errorf("decoding height map %s: %w", file, err)
	}
	elevation, err := NewElevationGrid(texture.Grayscale(img))
	if err != nil {
		return nil, fmt.Errorf("height map %s: %w", file, err)
	}

	file, data, err = src.LoadAny(name+"_color", texture.Extensions...)
	if err != nil {
		return nil, fmt.Errorf("loading color map %q: %w", name, err)
	}
	img, err = texture.Decode(file, data)
	if err != nil {
		return nil, fmt.Errorf("decoding color map %s: %w", file, err)
	}
	color, err := NewColorGrid(texture.PackedRGB(img))
	if err != nil {
		return nil, fmt.Errorf("color map %s: %w", file, err)
	}

	logger.Info("map loaded",
		zap.String("name", name),
		zap.Int("height_w", elevation.Width()),
		zap.Int("height_h", elevation.Height()),
		zap.Int("color_w", color.Width()),
		zap.Int("color_h", color.Height()),
	)
	return NewMaps(name, elevation, color), nil
}
