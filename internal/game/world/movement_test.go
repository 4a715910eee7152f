package world

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
)

// simulate holds c for holdSecs, then idles until totalSecs, at a fixed dt.
func simulate(t *testing.T, w *World, c camera.Controls, dt, holdSecs, totalSecs float64) camera.State {
	t.Helper()
	steps := int(gomath.Round(totalSecs / dt))
	holdSteps := int(gomath.Round(holdSecs / dt))
	for i := 0; i < steps; i++ {
		in := camera.Controls{}
		if i < holdSteps {
			in = c
		}
		if err := w.Update(in, dt); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	return w.Camera()
}

func TestFrameRateIndependence(t *testing.T) {
	tests := []struct {
		name string
		c    camera.Controls
	}{
		{"forward", camera.Controls{MoveForward: true}},
		{"backward", camera.Controls{MoveBackward: true}},
		{"turn", camera.Controls{RotateRight: true}},
		{"look up", camera.Controls{LookUp: true}},
		{"raise", camera.Controls{Raise: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slow, err := New(testSettings(t), flatLoader(0))
			if err != nil {
				t.Fatal(err)
			}
			fast, err := New(testSettings(t), flatLoader(0))
			if err != nil {
				t.Fatal(err)
			}

			a := simulate(t, slow, tt.c, 1.0/20, 1, 5)
			b := simulate(t, fast, tt.c, 1.0/240, 1, 5)

			const tol = 1e-3
			check := func(name string, x, y float64) {
				if gomath.Abs(x-y) > tol {
					t.Errorf("%s: %v at 20 fps vs %v at 240 fps", name, x, y)
				}
			}
			check("heading", a.Heading, b.Heading)
			check("horizon", a.Horizon, b.Horizon)
			check("x", a.Position.X, b.Position.X)
			check("y", a.Position.Y, b.Position.Y)
			check("eye", a.EyeHeight, b.EyeHeight)
		})
	}
}

func TestSteadyStateTargets(t *testing.T) {
	w, err := New(testSettings(t), flatLoader(0))
	if err != nil {
		t.Fatal(err)
	}
	mv := w.Settings().Movement

	got := simulate(t, w, camera.Controls{MoveForward: true}, 1.0/60, 1, 6)
	// Heading 0 faces -Y; one second of movement at MoveSpeed.
	if gomath.Abs(got.Position.Y+mv.MoveSpeed) > 1e-3 || gomath.Abs(got.Position.X) > 1e-9 {
		t.Errorf("position %v, want (0, %v)", got.Position, -mv.MoveSpeed)
	}

	got = simulate(t, w, camera.Controls{RotateLeft: true}, 1.0/60, 0.5, 6)
	if gomath.Abs(got.Heading-mv.TurnSpeed*0.5) > 1e-3 {
		t.Errorf("heading %v, want %v", got.Heading, mv.TurnSpeed*0.5)
	}
}

func TestSmoothingLagsTarget(t *testing.T) {
	w, err := New(testSettings(t), flatLoader(0))
	if err != nil {
		t.Fatal(err)
	}
	before := w.Camera().EyeHeight
	if err := w.Update(camera.Controls{Raise: true}, 0.1); err != nil {
		t.Fatal(err)
	}
	after := w.Camera().EyeHeight
	full := w.Settings().Movement.ClimbSpeed * 0.1
	if !(after > before && after-before < full) {
		t.Errorf("eye rose %v in one frame, want between 0 and %v", after-before, full)
	}
}

func TestHorizonStaysOnScreen(t *testing.T) {
	w, err := New(testSettings(t), flatLoader(0))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []camera.Controls{{LookUp: true}, {LookDown: true}} {
		for i := 0; i < 600; i++ {
			if err := w.Update(c, 1.0/60); err != nil {
				t.Fatal(err)
			}
			h := w.Camera().Horizon
			if h < 0 || h >= 60 {
				t.Fatalf("horizon %v left [0, 60)", h)
			}
		}
	}
}

func TestNonPositiveDeltaIsNoop(t *testing.T) {
	w, err := New(testSettings(t), flatLoader(0))
	if err != nil {
		t.Fatal(err)
	}
	before := w.Camera()
	for _, dt := range []float64{0, -1} {
		if err := w.Update(camera.Controls{MoveForward: true, RotateLeft: true}, dt); err != nil {
			t.Fatal(err)
		}
	}
	if w.Camera() != before {
		t.Error("camera changed for non-positive dt")
	}
}
