package freecam

import "game-prototype/internal/input"

// Bindings maps the controller's actions to keys and the mouse button that enables
// mouse-look while held.
type Bindings struct {
	Forward     input.Key
	Back        input.Key
	Left        input.Key
	Right       input.Key
	Up          input.Key
	Down        input.Key
	Run         input.Key
	ToggleMouse input.Key

	CaptureMouse input.MouseButton
}

// Keys lists every bound key so the host knows which ones to poll each frame.
func (b Bindings) Keys() []input.Key {
	return []input.Key{b.Forward, b.Back, b.Left, b.Right, b.Up, b.Down, b.Run, b.ToggleMouse}
}

// Config is read-only input to a Controller. Speeds are in units per second, Friction is the
// fraction of velocity removed on each frame without movement input (clamped to [0, 1]), and
// Sensitivity scales mouse deltas to radians.
type Config struct {
	WalkSpeed   float32
	RunSpeed    float32
	Friction    float32
	Sensitivity float32
	Bindings    Bindings
}

// DefaultConfig returns walk 5, run 15, friction 0.5, sensitivity 1 with WASD plus E/Q for
// up/down, left shift to run, M to toggle mouse-look and the left mouse button to look while held.
func DefaultConfig() Config {
	return Config{
		WalkSpeed:   5,
		RunSpeed:    15,
		Friction:    0.5,
		Sensitivity: 1,
		Bindings: Bindings{
			Forward:      input.KeyW,
			Back:         input.KeyS,
			Left:         input.KeyA,
			Right:        input.KeyD,
			Up:           input.KeyE,
			Down:         input.KeyQ,
			Run:          input.KeyLeftShift,
			ToggleMouse:  input.KeyM,
			CaptureMouse: input.MouseLeft,
		},
	}
}
