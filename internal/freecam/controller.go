package freecam

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"game-prototype/internal/input"
)

// lookPitchScale damps vertical mouse motion relative to horizontal.
const lookPitchScale = 0.5

// restSpeedSq is the squared speed below which a decaying velocity snaps to zero.
const restSpeedSq = 1e-6

// Transform is the camera's world placement as owned by the host. The host passes its current
// transform to Update and copies the returned one back.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Input is one frame of host input. Dt must be positive. MouseDelta is the accumulated cursor
// motion of the frame, TogglePressed is true only on the frame the toggle key went down.
type Input struct {
	Dt            float32
	Keys          input.Keys
	MouseDelta    mgl32.Vec2
	CaptureHeld   bool
	TogglePressed bool
}

// State is everything the controller carries between frames.
// Velocity is expressed in the camera's local basis: X right, Y world up, Z forward.
type State struct {
	Position    mgl32.Vec3
	Rotation    mgl32.Quat
	Yaw         float32
	Pitch       float32
	Velocity    mgl32.Vec3
	Initialized bool
	Enabled     bool
	MoveToggled bool
}

// Controller is a free-flying camera: keys set a velocity that decays by friction once released,
// and the mouse turns the camera while the capture button is held or mouse-look is toggled on.
// It is driven from a single frame loop and is not safe for concurrent use.
type Controller struct {
	cfg   Config
	state State
}

// New returns an enabled controller that seeds its yaw and pitch from the transform passed to
// the first Update.
func New(cfg Config) *Controller {
	return &Controller{
		cfg: cfg,
		state: State{
			Rotation: mgl32.QuatIdent(),
			Enabled:  true,
		},
	}
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration. Accumulated state is kept.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

// State returns a copy of the controller state.
func (c *Controller) State() State {
	return c.state
}

// Enabled reports whether Update moves the camera.
func (c *Controller) Enabled() bool {
	return c.state.Enabled
}

// SetEnabled turns the controller on or off. Re-enabling a disabled controller makes the next
// Update re-seed yaw and pitch from the host transform, so external changes made while it was
// off are picked up.
func (c *Controller) SetEnabled(enabled bool) {
	if enabled && !c.state.Enabled {
		c.state.Initialized = false
	}
	c.state.Enabled = enabled
}

// Update advances the camera by one frame and returns the transform the host should apply.
//
// Movement is integrated along the orientation from before this frame's mouse-look, so a turn
// only affects the direction of travel from the next frame on. A disabled controller returns t
// unchanged.
func (c *Controller) Update(in Input, t Transform) Transform {
	s := &c.state

	if !s.Initialized {
		s.Yaw, s.Pitch = yawPitchYXZ(t.Rotation)
		s.Rotation = t.Rotation
		s.Position = t.Position
		s.Initialized = true
	}
	if !s.Enabled {
		return t
	}

	b := c.cfg.Bindings
	axis := mgl32.Vec3{
		in.Keys.Axis(b.Right, b.Left),
		in.Keys.Axis(b.Up, b.Down),
		in.Keys.Axis(b.Forward, b.Back),
	}

	if in.TogglePressed {
		s.MoveToggled = !s.MoveToggled
	}

	s.Velocity = c.nextVelocity(axis, in.Keys.Pressed(b.Run))

	right := Right(s.Rotation)
	forward := Forward(s.Rotation)
	step := right.Mul(s.Velocity.X()).
		Add(worldUp.Mul(s.Velocity.Y())).
		Add(forward.Mul(s.Velocity.Z())).
		Mul(in.Dt)
	s.Position = t.Position.Add(step)

	var look mgl32.Vec2
	if in.CaptureHeld || s.MoveToggled {
		look = in.MouseDelta
	}
	if look != (mgl32.Vec2{}) {
		s.Pitch = mgl32.Clamp(
			s.Pitch-look.Y()*lookPitchScale*c.cfg.Sensitivity*in.Dt,
			-math32.Pi/2, math32.Pi/2,
		)
		s.Yaw -= look.X() * c.cfg.Sensitivity * in.Dt
		// Decoded as YXZ but rebuilt as ZYX; with roll fixed at 0 both are Ry(yaw)*Rx(pitch).
		s.Rotation = quatZYX(0, s.Yaw, s.Pitch)
	}

	return Transform{Position: s.Position, Rotation: s.Rotation}
}

// nextVelocity snaps to full speed along the input direction, or decays the current velocity by
// the friction fraction when there is no input. Decay is applied per frame, not per second.
func (c *Controller) nextVelocity(axis mgl32.Vec3, running bool) mgl32.Vec3 {
	if axis != (mgl32.Vec3{}) {
		speed := c.cfg.WalkSpeed
		if running {
			speed = c.cfg.RunSpeed
		}
		return axis.Normalize().Mul(speed)
	}

	friction := mgl32.Clamp(c.cfg.Friction, 0, 1)
	v := c.state.Velocity.Mul(1 - friction)
	if v.Dot(v) < restSpeedSq {
		return mgl32.Vec3{}
	}
	return v
}
