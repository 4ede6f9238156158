package freecam

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"game-prototype/internal/input"
)

const eps = 1e-5

func identity() Transform {
	return Transform{Rotation: mgl32.QuatIdent()}
}

func speed(c *Controller) float32 {
	return c.State().Velocity.Len()
}

func TestForwardWalkScenario(t *testing.T) {
	c := New(DefaultConfig())

	out := c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW)}, identity())

	assert.InDelta(t, 5.0, speed(c), eps)
	assert.InDelta(t, 5.0, c.State().Velocity.Z(), eps)
	want := Forward(mgl32.QuatIdent()).Mul(0.1 * 5)
	assert.InDelta(t, want.X(), out.Position.X(), eps)
	assert.InDelta(t, want.Y(), out.Position.Y(), eps)
	assert.InDelta(t, want.Z(), out.Position.Z(), eps)
	assert.InDelta(t, -0.5, out.Position.Z(), eps)
	assert.Equal(t, mgl32.QuatIdent(), out.Rotation)
}

func TestRunKeySelectsSpeed(t *testing.T) {
	cfg := DefaultConfig()

	c := New(cfg)
	c.Update(Input{Dt: 0.016, Keys: input.NewKeys(input.KeyD, input.KeyLeftShift)}, identity())
	assert.InDelta(t, cfg.RunSpeed, speed(c), eps)

	c.Update(Input{Dt: 0.016, Keys: input.NewKeys(input.KeyD)}, identity())
	assert.InDelta(t, cfg.WalkSpeed, speed(c), eps)
}

func TestDiagonalInputIsNormalized(t *testing.T) {
	c := New(DefaultConfig())
	c.Update(Input{Dt: 0.016, Keys: input.NewKeys(input.KeyW, input.KeyD, input.KeyE)}, identity())
	assert.InDelta(t, 5.0, speed(c), eps)
}

func TestOpposingKeysCancel(t *testing.T) {
	c := New(DefaultConfig())
	c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW)}, identity())
	c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW, input.KeyS)}, identity())
	// no net input, so friction 0.5 halves the velocity
	assert.InDelta(t, 2.5, speed(c), eps)
}

func TestFullFrictionStopsImmediately(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Friction = 1
	c := New(cfg)
	c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW)}, identity())
	require.NotZero(t, speed(c))

	for i := 0; i < 5; i++ {
		c.Update(Input{Dt: 0.1}, identity())
		assert.Equal(t, mgl32.Vec3{}, c.State().Velocity)
	}
}

func TestFrictionIsClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Friction = 3
	c := New(cfg)
	c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW)}, identity())
	c.Update(Input{Dt: 0.1}, identity())
	assert.Equal(t, mgl32.Vec3{}, c.State().Velocity)

	cfg.Friction = -1
	c = New(cfg)
	c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW)}, identity())
	c.Update(Input{Dt: 0.1}, identity())
	assert.InDelta(t, 5.0, speed(c), eps)
}

func TestDecayIsMonotonicAndSettles(t *testing.T) {
	for _, friction := range []float32{0, 0.1, 0.5, 0.9} {
		cfg := DefaultConfig()
		cfg.Friction = friction
		c := New(cfg)
		c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW, input.KeyLeftShift)}, identity())

		prev := speed(c)
		for i := 0; i < 200; i++ {
			c.Update(Input{Dt: 0.1}, identity())
			cur := speed(c)
			assert.LessOrEqual(t, cur, prev, "friction %v frame %d", friction, i)
			prev = cur
		}
		if friction > 0 {
			assert.Zero(t, prev, "friction %v should settle", friction)
		}
	}
}

func TestDecayIgnoresFrameTime(t *testing.T) {
	// Known quirk kept on purpose: decay is per frame, so dt does not change it.
	a := New(DefaultConfig())
	b := New(DefaultConfig())
	for _, c := range []*Controller{a, b} {
		c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyW)}, identity())
	}
	a.Update(Input{Dt: 0.001}, identity())
	b.Update(Input{Dt: 0.5}, identity())
	assert.Equal(t, a.State().Velocity, b.State().Velocity)
}

func TestMouseLookWhileHeld(t *testing.T) {
	c := New(DefaultConfig())
	c.Update(Input{Dt: 1, MouseDelta: mgl32.Vec2{10, 0}, CaptureHeld: true}, identity())

	s := c.State()
	assert.Equal(t, float32(-10), s.Yaw)
	assert.Equal(t, float32(0), s.Pitch)
}

func TestMouseIgnoredWithoutCapture(t *testing.T) {
	c := New(DefaultConfig())
	out := c.Update(Input{Dt: 1, MouseDelta: mgl32.Vec2{10, 4}}, identity())

	assert.Zero(t, c.State().Yaw)
	assert.Zero(t, c.State().Pitch)
	assert.Equal(t, mgl32.QuatIdent(), out.Rotation)
}

func TestToggleIsSticky(t *testing.T) {
	c := New(DefaultConfig())
	delta := mgl32.Vec2{1, 0}

	c.Update(Input{Dt: 1, TogglePressed: true, MouseDelta: delta}, identity())
	assert.True(t, c.State().MoveToggled)
	assert.Equal(t, float32(-1), c.State().Yaw)

	c.Update(Input{Dt: 1, MouseDelta: delta}, identity())
	assert.Equal(t, float32(-2), c.State().Yaw)

	c.Update(Input{Dt: 1, TogglePressed: true, MouseDelta: delta}, identity())
	assert.False(t, c.State().MoveToggled)
	assert.Equal(t, float32(-2), c.State().Yaw)

	// holding still works with the toggle off
	c.Update(Input{Dt: 1, CaptureHeld: true, MouseDelta: delta}, identity())
	assert.Equal(t, float32(-3), c.State().Yaw)
}

func TestPitchHalfScaleAndClamp(t *testing.T) {
	c := New(DefaultConfig())
	c.Update(Input{Dt: 1, CaptureHeld: true, MouseDelta: mgl32.Vec2{0, -1}}, identity())
	assert.InDelta(t, 0.5, c.State().Pitch, eps)

	c.Update(Input{Dt: 1, CaptureHeld: true, MouseDelta: mgl32.Vec2{0, -1000}}, identity())
	assert.Equal(t, float32(math32.Pi/2), c.State().Pitch)

	c.Update(Input{Dt: 1, CaptureHeld: true, MouseDelta: mgl32.Vec2{0, 5000}}, identity())
	assert.Equal(t, float32(-math32.Pi/2), c.State().Pitch)
}

func TestPitchStaysInRangeUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := New(DefaultConfig())
	tr := identity()
	for i := 0; i < 1000; i++ {
		in := Input{
			Dt:          rng.Float32() * 0.2,
			CaptureHeld: true,
			MouseDelta:  mgl32.Vec2{rng.Float32()*400 - 200, rng.Float32()*400 - 200},
		}
		tr = c.Update(in, tr)
		p := c.State().Pitch
		require.GreaterOrEqual(t, p, float32(-math32.Pi/2))
		require.LessOrEqual(t, p, float32(math32.Pi/2))
	}
}

func TestDisabledIsNoOp(t *testing.T) {
	c := New(DefaultConfig())
	c.SetEnabled(false)

	in := identity()
	in.Position = mgl32.Vec3{1.5, -2, 3}
	in.Rotation = mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0})

	out := c.Update(Input{
		Dt:            0.5,
		Keys:          input.NewKeys(input.KeyW, input.KeyLeftShift),
		MouseDelta:    mgl32.Vec2{30, 30},
		CaptureHeld:   true,
		TogglePressed: true,
	}, in)

	assert.Equal(t, in, out)
	assert.Equal(t, mgl32.Vec3{}, c.State().Velocity)
	assert.False(t, c.State().MoveToggled)
}

func TestInitializesOnceFromHostRotation(t *testing.T) {
	c := New(DefaultConfig())
	seed := Transform{Rotation: quatZYX(0, 0.4, -0.3)}

	c.Update(Input{Dt: 0.1}, seed)
	s := c.State()
	require.True(t, s.Initialized)
	assert.InDelta(t, 0.4, s.Yaw, eps)
	assert.InDelta(t, -0.3, s.Pitch, eps)

	// later host rotations are ignored
	c.Update(Input{Dt: 0.1}, Transform{Rotation: mgl32.QuatRotate(2, mgl32.Vec3{0, 1, 0})})
	assert.InDelta(t, 0.4, c.State().Yaw, eps)
}

func TestReEnableReseeds(t *testing.T) {
	c := New(DefaultConfig())
	c.Update(Input{Dt: 0.1}, identity())

	c.SetEnabled(false)
	c.SetEnabled(true)
	assert.False(t, c.State().Initialized)

	c.Update(Input{Dt: 0.1}, Transform{Rotation: mgl32.QuatRotate(1.2, mgl32.Vec3{0, 1, 0})})
	assert.InDelta(t, 1.2, c.State().Yaw, eps)
}

func TestMovementUsesPreLookOrientation(t *testing.T) {
	c := New(DefaultConfig())
	out := c.Update(Input{
		Dt:          1,
		Keys:        input.NewKeys(input.KeyW),
		CaptureHeld: true,
		MouseDelta:  mgl32.Vec2{-1.5, 0},
	}, identity())

	// moved straight down -Z even though the camera turned this frame
	assert.InDelta(t, 0, out.Position.X(), eps)
	assert.InDelta(t, -5, out.Position.Z(), eps)
	assert.InDelta(t, 1.5, c.State().Yaw, eps)

	// next frame travels along the turned forward
	next := c.Update(Input{Dt: 1, Keys: input.NewKeys(input.KeyW)}, out)
	dir := next.Position.Sub(out.Position)
	want := Forward(quatZYX(0, 1.5, 0)).Mul(5)
	assert.InDelta(t, want.X(), dir.X(), 1e-4)
	assert.InDelta(t, want.Z(), dir.Z(), 1e-4)
}

func TestVerticalMovementUsesWorldUp(t *testing.T) {
	c := New(DefaultConfig())
	tilted := Transform{Rotation: quatZYX(0, 0, -1)}
	out := c.Update(Input{Dt: 1, Keys: input.NewKeys(input.KeyE)}, tilted)
	assert.InDelta(t, 0, out.Position.X(), eps)
	assert.InDelta(t, 5, out.Position.Y(), eps)
	assert.InDelta(t, 0, out.Position.Z(), eps)
}

func TestSetConfigAppliesNextFrame(t *testing.T) {
	c := New(DefaultConfig())
	cfg := c.Config()
	cfg.WalkSpeed = 2
	c.SetConfig(cfg)
	c.Update(Input{Dt: 0.1, Keys: input.NewKeys(input.KeyA)}, identity())
	assert.InDelta(t, 2, speed(c), eps)
	assert.InDelta(t, -2, c.State().Velocity.X(), eps)
}
