package world

// PreventUnderground raises the eye to the configured clearance above the
// terrain one unit ahead of the camera. The eye is never lowered here.
func (w *World) PreventUnderground() {
	preventUnderground(w.st, w.settings.Movement.Clearance)
}

// Floor returns the lowest eye height allowed at the current camera position.
func (w *World) Floor() float64 {
	return floor(w.st, w.settings.Movement.Clearance)
}

func floor(st *state, clearance float64) float64 {
	ahead := st.camera.Position.Add(st.camera.Forward())
	return float64(st.maps.ElevationAt(ahead)) + clearance
}

func preventUnderground(st *state, clearance float64) {
	f := floor(st, clearance)
	st.camera.EyeHeight = max(st.camera.EyeHeight, f)
	// Keep smoothing from pulling the eye back under.
	st.target.EyeHeight = max(st.target.EyeHeight, f)
}
