package freecam

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LookAt returns a roll-free transform at eye facing target. If the two coincide the camera
// faces -Z.
func LookAt(eye, target mgl32.Vec3) Transform {
	dir := target.Sub(eye)
	if dir.Dot(dir) == 0 {
		return Transform{Position: eye, Rotation: mgl32.QuatIdent()}
	}
	dir = dir.Normalize()
	yaw := math32.Atan2(-dir.X(), -dir.Z())
	pitch := math32.Asin(mgl32.Clamp(dir.Y(), -1, 1))
	return Transform{Position: eye, Rotation: quatZYX(0, yaw, pitch)}
}
