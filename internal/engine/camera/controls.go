package camera

// Controls is the set of logical controls held during a frame.
type Controls struct {
	RotateLeft   bool
	RotateRight  bool
	LookUp       bool
	LookDown     bool
	MoveForward  bool
	MoveBackward bool
	Raise        bool
	Lower        bool
	Reset        bool
}

// axis folds a pair of opposing controls into -1, 0 or 1.
func axis(neg, pos bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	}
	return 0
}

// Turn is +1 when rotating left (counter-clockwise heading increase).
func (c Controls) Turn() float64 { return axis(c.RotateRight, c.RotateLeft) }

// Look is +1 when looking up, which moves the horizon down the screen.
func (c Controls) Look() float64 { return axis(c.LookDown, c.LookUp) }

// Move is +1 when moving forward.
func (c Controls) Move() float64 { return axis(c.MoveBackward, c.MoveForward) }

// Climb is +1 when raising the eye.
func (c Controls) Climb() float64 { return axis(c.Lower, c.Raise) }

// Idle reports whether no movement control is held.
func (c Controls) Idle() bool {
	return c.Turn() == 0 && c.Look() == 0 && c.Move() == 0 && c.Climb() == 0
}
