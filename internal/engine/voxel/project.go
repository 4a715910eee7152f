// Package voxel implements the column ray-marching terrain rasterizer.
//
// For every screen column a ray walks away from the camera over the height
// map. Each sample is projected to a screen row and painted upward from the
// column's occlusion watermark, so nearer terrain hides farther terrain
// without a per-pixel depth buffer.
package voxel

import "github.com/Faultbox/voxelspace/internal/engine/camera"

// Project returns the screen row of a terrain sample of the given elevation
// at distance z. Terrain above the eye maps above the horizon. z must be positive.
func Project(cam *camera.State, elevation uint8, z float64) float64 {
	return (cam.EyeHeight-float64(elevation))/z*cam.ScaleHeight + cam.Horizon
}
