// Package input handles SDL2 input events and keyboard state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
)

// Event types for the frame loop
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Action is a one-shot command triggered on key press.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionScreenshot
	ActionQuit
)

// Bindings maps each held control to its keys. Any bound key holds the control.
type Bindings struct {
	RotateLeft   []sdl.Scancode
	RotateRight  []sdl.Scancode
	LookUp       []sdl.Scancode
	LookDown     []sdl.Scancode
	MoveForward  []sdl.Scancode
	MoveBackward []sdl.Scancode
	Raise        []sdl.Scancode
	Lower        []sdl.Scancode

	Actions map[sdl.Scancode]Action
}

// DefaultBindings returns the arrow/page keys plus a WASD-style alternative.
func DefaultBindings() Bindings {
	return Bindings{
		RotateLeft:   []sdl.Scancode{sdl.SCANCODE_LEFT, sdl.SCANCODE_A},
		RotateRight:  []sdl.Scancode{sdl.SCANCODE_RIGHT, sdl.SCANCODE_D},
		LookUp:       []sdl.Scancode{sdl.SCANCODE_PAGEUP, sdl.SCANCODE_Q},
		LookDown:     []sdl.Scancode{sdl.SCANCODE_PAGEDOWN, sdl.SCANCODE_E},
		MoveForward:  []sdl.Scancode{sdl.SCANCODE_UP, sdl.SCANCODE_W},
		MoveBackward: []sdl.Scancode{sdl.SCANCODE_DOWN, sdl.SCANCODE_S},
		Raise:        []sdl.Scancode{sdl.SCANCODE_SPACE},
		Lower:        []sdl.Scancode{sdl.SCANCODE_LSHIFT, sdl.SCANCODE_C},
		Actions: map[sdl.Scancode]Action{
			sdl.SCANCODE_R:      ActionReset,
			sdl.SCANCODE_F12:    ActionScreenshot,
			sdl.SCANCODE_ESCAPE: ActionQuit,
		},
	}
}

// Input handles all input processing.
type Input struct {
	bindings Bindings
	events   []Event
	actions  []Action
	held     camera.Controls
}

// New creates a new input handler.
func New(b Bindings) *Input {
	return &Input{
		bindings: b,
		events:   make([]Event, 0, 16),
		actions:  make([]Action, 0, 4),
	}
}

// Update polls SDL events and samples the keyboard.
// Returns true if the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.actions = i.actions[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Key repeat must not re-trigger one-shot actions.
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				if a, ok := i.bindings.Actions[e.Keysym.Scancode]; ok {
					i.actions = append(i.actions, a)
				}
			}
		}
	}

	i.held = i.bindings.Controls(sdl.GetKeyboardState())
	return quit
}

// Controls returns the controls held at the last Update. Reset is set when
// the reset key went down this frame.
func (i *Input) Controls() camera.Controls {
	c := i.held
	c.Reset = i.Triggered(ActionReset)
	return c
}

// Triggered reports whether action a fired during the last Update.
func (i *Input) Triggered(a Action) bool {
	for _, got := range i.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Controls folds a keyboard state array, indexed by scancode, into held
// controls.
func (b Bindings) Controls(state []uint8) camera.Controls {
	down := func(keys []sdl.Scancode) bool {
		for _, k := range keys {
			if int(k) < len(state) && state[k] != 0 {
				return true
			}
		}
		return false
	}
	return camera.Controls{
		RotateLeft:   down(b.RotateLeft),
		RotateRight:  down(b.RotateRight),
		LookUp:       down(b.LookUp),
		LookDown:     down(b.LookDown),
		MoveForward:  down(b.MoveForward),
		MoveBackward: down(b.MoveBackward),
		Raise:        down(b.Raise),
		Lower:        down(b.Lower),
	}
}
