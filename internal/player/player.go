package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"game-prototype/internal/input"
	"game-prototype/internal/physics"
)

// DefaultSpeed is the player's ground speed in units per second.
const DefaultSpeed = 10

// BodyName is the physics body name the player registers under.
const BodyName = "player"

// Controls are the four movement keys.
type Controls struct {
	Up    input.Key
	Down  input.Key
	Left  input.Key
	Right input.Key
}

// DefaultControls uses W/R/A/S.
func DefaultControls() Controls {
	return Controls{
		Up:    input.KeyW,
		Down:  input.KeyR,
		Left:  input.KeyA,
		Right: input.KeyS,
	}
}

// Keys lists the bound keys for polling.
func (c Controls) Keys() []input.Key {
	return []input.Key{c.Up, c.Down, c.Left, c.Right}
}

// Movement returns the normalized (right-left, up-down) direction, and false when no
// movement key is effectively held.
func (c Controls) Movement(keys input.Keys) (mgl32.Vec2, bool) {
	v := mgl32.Vec2{keys.Axis(c.Right, c.Left), keys.Axis(c.Up, c.Down)}
	if v == (mgl32.Vec2{}) {
		return v, false
	}
	return v.Normalize(), true
}

// Player is a capsule standing on the stage, represented in the physics world by a box body.
type Player struct {
	Body     *physics.Body
	Speed    float32
	Controls Controls
}

// New returns a player whose 2m tall body stands on y=0 at the origin.
func New(controls Controls, speed float32) *Player {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Player{
		Body:     physics.NewBody(BodyName, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0.5, 1, 0.5}, 1, false),
		Speed:    speed,
		Controls: controls,
	}
}

// Position returns the body centre.
func (p *Player) Position() mgl32.Vec3 {
	return p.Body.Position
}

// Grounded reports whether the body rested on something during the last physics step.
func (p *Player) Grounded() bool {
	return p.Body.Grounded
}

// Update sets the body's horizontal velocity from the held keys: the up/down axis maps to +Z/-Z
// and right/left to +X/-X, at Speed. The physics world integrates it, so a frame of dt moves the
// player by (x*Speed*dt, 0, y*Speed*dt) unless something blocks it. With no key held the player
// stops. Returns whether a movement key is held.
func (p *Player) Update(keys input.Keys) bool {
	dir, ok := p.Controls.Movement(keys)
	p.Body.Velocity[0] = dir.X() * p.Speed
	p.Body.Velocity[2] = dir.Y() * p.Speed
	return ok
}
