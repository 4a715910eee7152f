package world

import (
	"github.com/Faultbox/voxelspace/internal/engine/camera"
	"github.com/Faultbox/voxelspace/pkg/math"
)

// smoothRetain is the share of the gap to the target left after one second.
const smoothRetain = 0.01

// Update applies one frame of held controls over dt seconds.
//
// Controls move a target camera at a fixed rate per second; the visible
// camera then closes 1-0.01^dt of its gap to the target. Both halves scale
// with dt, so the motion does not depend on the frame rate.
func (w *World) Update(c camera.Controls, dt float64) error {
	if c.Reset {
		return w.Reset()
	}
	if dt <= 0 {
		return nil
	}

	mv := w.settings.Movement
	t := &w.st.target
	t.Heading += c.Turn() * mv.TurnSpeed * dt
	t.Horizon += c.Look() * mv.LookSpeed * dt
	t.ClampHorizon(w.settings.FrameHeight)
	t.Position = t.Position.Add(t.Forward().Scale(c.Move() * mv.MoveSpeed * dt))
	t.EyeHeight += c.Climb() * mv.ClimbSpeed * dt

	f := math.SmoothFactor(smoothRetain, dt)
	cam := &w.st.camera
	cam.Heading = math.Lerp(cam.Heading, t.Heading, f)
	cam.Horizon = math.Lerp(cam.Horizon, t.Horizon, f)
	cam.ClampHorizon(w.settings.FrameHeight)
	cam.Position = cam.Position.Lerp(t.Position, f)
	cam.EyeHeight = math.Lerp(cam.EyeHeight, t.EyeHeight, f)

	w.PreventUnderground()
	return nil
}
