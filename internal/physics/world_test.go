package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ground() *Body {
	return NewBody("ground", mgl32.Vec3{0, -0.5, 0}, mgl32.Vec3{10, 0.5, 10}, 0, true)
}

func TestNewBodyDefaultsMass(t *testing.T) {
	b := NewBody("b", mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, -3, false)
	assert.Equal(t, float32(1), b.Mass)
}

func TestAABBOverlapAndContains(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	b := AABB{Min: mgl32.Vec3{0.5, 0.5, 0.5}, Max: mgl32.Vec3{2, 2, 2}}
	touching := AABB{Min: mgl32.Vec3{1, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(touching))
	assert.True(t, a.Contains(mgl32.Vec3{1, 1, 1}))
	assert.False(t, a.Contains(mgl32.Vec3{1.1, 0, 0}))
}

func TestPenetrationAxisPicksShallowest(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2, 2, 2}}
	b := AABB{Min: mgl32.Vec3{1.9, 0.5, 0.5}, Max: mgl32.Vec3{4, 1.5, 1.5}}
	depth, axis := penetrationAxis(a, b)
	assert.Equal(t, 0, axis)
	assert.InDelta(t, 0.1, depth, 1e-5)

	_, axis = penetrationAxis(a, AABB{Min: mgl32.Vec3{5, 5, 5}, Max: mgl32.Vec3{6, 6, 6}})
	assert.Equal(t, -1, axis)
}

func TestStepRestsOnGround(t *testing.T) {
	w := NewWorld()
	w.AddBody(ground())
	box := NewBody("box", mgl32.Vec3{0, 3, 0}, mgl32.Vec3{0.5, 0.5, 0.5}, 1, false)
	w.AddBody(box)

	for i := 0; i < 300; i++ {
		w.Step(1.0 / 60)
	}
	assert.InDelta(t, 0.5, box.Position.Y(), 0.01)
	assert.True(t, box.Grounded)
	assert.Equal(t, mgl32.Vec3{0, -0.5, 0}, w.Body("ground").Position)
}

func TestStepPushesOutOnNearSide(t *testing.T) {
	w := NewWorld()
	w.Gravity = mgl32.Vec3{}
	wall := NewBody("wall", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{0.25, 2, 10}, 0, true)
	w.AddBody(wall)
	mover := NewBody("mover", mgl32.Vec3{4, 0, 0}, mgl32.Vec3{0.5, 0.5, 0.5}, 1, false)
	mover.Velocity = mgl32.Vec3{3, 0, 0}
	w.AddBody(mover)

	w.Step(0.1)
	assert.InDelta(t, 4.25, mover.Position.X(), 1e-5)
	assert.Zero(t, mover.Velocity.X())
}

func TestStepSplitsByMass(t *testing.T) {
	w := NewWorld()
	w.Gravity = mgl32.Vec3{}
	light := NewBody("light", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, 1, false)
	heavy := NewBody("heavy", mgl32.Vec3{1.5, 0, 0}, mgl32.Vec3{1, 1, 1}, 3, false)
	w.AddBody(light)
	w.AddBody(heavy)

	w.Step(0)
	// 0.5 overlap: light moves 3/4 of it, heavy 1/4
	assert.InDelta(t, -0.375, light.Position.X(), 1e-5)
	assert.InDelta(t, 1.625, heavy.Position.X(), 1e-5)
}

func TestOverlappingAndLookup(t *testing.T) {
	w := NewWorld()
	w.AddBody(ground())
	require.Nil(t, w.Body("missing"))

	hits := w.Overlapping(AABB{Min: mgl32.Vec3{-1, -0.2, -1}, Max: mgl32.Vec3{1, 0.2, 1}})
	require.Len(t, hits, 1)
	assert.Equal(t, "ground", hits[0].Name)
	assert.Empty(t, w.Overlapping(AABB{Min: mgl32.Vec3{0, 1, 0}, Max: mgl32.Vec3{1, 2, 1}}))
}

func TestSubsteps(t *testing.T) {
	w := NewWorld()
	w.Gravity = mgl32.Vec3{}
	assert.Equal(t, 1, w.Substeps(0))
	assert.Equal(t, 1, w.Substeps(MaxStep/2))
	assert.Equal(t, 6, w.Substeps(0.1-1e-4))

	fast := NewBody("fast", mgl32.Vec3{}, mgl32.Vec3{0.5, 0.5, 0.5}, 1, false)
	fast.Velocity = mgl32.Vec3{40, 0, 0}
	w.AddBody(fast)
	// 40 units/s over 0.1s is 4 units, at most 0.2 per sub-step
	n := w.Substeps(0.1)
	assert.GreaterOrEqual(t, n, 20)
	assert.LessOrEqual(t, n, 21)
	assert.Equal(t, maxSubsteps, w.Substeps(10))
}

func TestLongStepDoesNotTunnel(t *testing.T) {
	w := NewWorld()
	w.Gravity = mgl32.Vec3{}
	w.AddBody(NewBody("wall", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{0.25, 2, 10}, 0, true))
	mover := NewBody("mover", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.5, 0.5, 0.5}, 1, false)
	mover.Velocity = mgl32.Vec3{30, 0, 0}
	w.AddBody(mover)

	// a single step would carry the mover from x=0 to x=7.5, straight through the wall
	w.Step(0.25)
	assert.InDelta(t, 4.25, mover.Position.X(), 1e-4)
	assert.Zero(t, mover.Velocity.X())
}
