package freecam

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}

	worldUp = axisY
)

// gimbalLimit is the |sin(pitch)| above which yaw and roll can no longer be separated.
const gimbalLimit = 0.999999

// yawPitchYXZ decomposes q as Ry(yaw) * Rx(pitch) * Rz(roll) and drops the roll.
func yawPitchYXZ(q mgl32.Quat) (yaw, pitch float32) {
	m := q.Normalize().Mat4()
	// Column 2 of Ry*Rx*Rz is (sin(y)cos(x), -sin(x), cos(y)cos(x)).
	sinPitch := mgl32.Clamp(-m.At(1, 2), -1, 1)
	pitch = math32.Asin(sinPitch)
	if math32.Abs(sinPitch) < gimbalLimit {
		yaw = math32.Atan2(m.At(0, 2), m.At(2, 2))
	} else {
		// roll folded into yaw
		yaw = math32.Atan2(-m.At(2, 0), m.At(0, 0))
	}
	return yaw, pitch
}

// quatZYX composes Rz(z) * Ry(y) * Rx(x).
func quatZYX(z, y, x float32) mgl32.Quat {
	return mgl32.QuatRotate(z, axisZ).
		Mul(mgl32.QuatRotate(y, axisY)).
		Mul(mgl32.QuatRotate(x, axisX))
}

// Forward returns the -Z axis rotated by q.
func Forward(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(mgl32.Vec3{0, 0, -1})
}

// Right returns the +X axis rotated by q.
func Right(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(axisX)
}
