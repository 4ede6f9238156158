package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxStep is the longest single integration step in seconds; longer frames are split.
	MaxStep = float32(1.0 / 60)
	// maxTravel bounds how far a dynamic body may move in one sub-step. It stays below the
	// thinnest static half extent so a body cannot skip through or be lifted over a wall.
	maxTravel   = 0.2
	maxSubsteps = 64
)

// World holds a set of bodies and runs a simple 3D step: gravity, integration, AABB push-out.
type World struct {
	Gravity mgl32.Vec3
	Bodies  []*Body
}

// NewWorld returns a world with gravity (0, -9.8, 0). The scene is Y-up.
func NewWorld() *World {
	return &World{
		Gravity: mgl32.Vec3{0, -9.8, 0},
	}
}

// AddBody appends a body. Order is preserved.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Body returns the first body with the given name, or nil.
func (w *World) Body(name string) *Body {
	for _, b := range w.Bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Overlapping returns every body whose box intersects box.
func (w *World) Overlapping(box AABB) []*Body {
	var hits []*Body
	for _, b := range w.Bodies {
		if b.Bounds().Overlaps(box) {
			hits = append(hits, b)
		}
	}
	return hits
}

// penetrationAxis returns the overlap depth and axis (0=X, 1=Y, 2=Z) of minimum penetration.
// If the boxes do not overlap it returns (0, -1).
func penetrationAxis(a, b AABB) (depth float32, axis int) {
	axis = -1
	for i := 0; i < 3; i++ {
		overlap := min(a.Max[i], b.Max[i]) - max(a.Min[i], b.Min[i])
		if overlap <= 0 {
			return 0, -1
		}
		if axis < 0 || overlap < depth {
			depth = overlap
			axis = i
		}
	}
	return depth, axis
}

// Step advances the simulation by dt seconds in equal sub-steps no longer than MaxStep, short
// enough that no dynamic body travels more than maxTravel in one of them. Each sub-step applies
// gravity and integrates dynamic bodies, then pushes overlapping pairs apart along the axis of
// minimum penetration, zeroing the velocity component along that axis on every body moved.
func (w *World) Step(dt float32) {
	if dt < 0 {
		return
	}
	n := w.Substeps(dt)
	h := dt / float32(n)
	for i := 0; i < n; i++ {
		w.step(h)
	}
}

// Substeps returns how many sub-steps Step(dt) will take, between 1 and maxSubsteps.
func (w *World) Substeps(dt float32) int {
	n := int(math32.Ceil(dt / MaxStep))
	fastest := float32(0)
	for _, b := range w.Bodies {
		if !b.Static {
			fastest = max(fastest, b.Velocity.Len())
		}
	}
	fastest += w.Gravity.Len() * dt
	n = max(n, int(math32.Ceil(fastest*dt/maxTravel)))
	return min(max(n, 1), maxSubsteps)
}

func (w *World) step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Grounded = false
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			depth, axis := penetrationAxis(bi.Bounds(), bj.Bounds())
			if axis < 0 {
				continue
			}
			resolve(bi, bj, depth, axis)
		}
	}
}

// resolve separates a and b by depth along axis, splitting the move by mass when both are dynamic.
func resolve(a, b *Body, depth float32, axis int) {
	// push a towards its own side of b
	dir := float32(1)
	if a.Position[axis] < b.Position[axis] {
		dir = -1
	}

	var moveA, moveB float32
	switch {
	case a.Static:
		moveB = -dir * depth
	case b.Static:
		moveA = dir * depth
	default:
		total := a.Mass + b.Mass
		moveA = dir * depth * (b.Mass / total)
		moveB = -dir * depth * (a.Mass / total)
	}

	if !a.Static {
		a.Position[axis] += moveA
		a.Velocity[axis] = 0
		if axis == 1 && moveA > 0 {
			a.Grounded = true
		}
	}
	if !b.Static {
		b.Position[axis] += moveB
		b.Velocity[axis] = 0
		if axis == 1 && moveB > 0 {
			b.Grounded = true
		}
	}
}
