package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is an axis-aligned box collider with position and velocity.
// Static bodies do not move and are not affected by gravity.
type Body struct {
	Name        string
	Position    mgl32.Vec3
	Velocity    mgl32.Vec3
	HalfExtents mgl32.Vec3
	Mass        float32
	Static      bool
	// Grounded is set by Step when the body was pushed up out of another body this step.
	Grounded bool
}

// NewBody returns a body centred on position with the given half extents. Velocity is zero.
// mass is used to share push-out between two dynamic bodies; values <= 0 become 1.
func NewBody(name string, position, halfExtents mgl32.Vec3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Name:        name,
		Position:    position,
		HalfExtents: halfExtents,
		Mass:        mass,
		Static:      static,
	}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Bounds returns the body's current box.
func (b *Body) Bounds() AABB {
	return AABB{
		Min: b.Position.Sub(b.HalfExtents),
		Max: b.Position.Add(b.HalfExtents),
	}
}

// Overlaps reports whether the boxes intersect with positive volume.
func (a AABB) Overlaps(o AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Max[i] <= o.Min[i] || o.Max[i] <= a.Min[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < a.Min[i] || p[i] > a.Max[i] {
			return false
		}
	}
	return true
}
