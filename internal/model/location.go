package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Forward axis and up axis of the scene. A zero rotation faces +Z.
var (
	AxisForward = mgl64.Vec3{0, 0, 1}
	AxisUp      = mgl64.Vec3{0, 1, 0}
)

// Pose представляет положение и ориентацию агента.
// Value type, передаётся по значению.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewPose создаёт Pose с поворотом yaw (градусы, вокруг +Y).
func NewPose(position mgl64.Vec3, yawDegrees float64) Pose {
	return Pose{
		Position: position,
		Rotation: YawRotation(mgl64.DegToRad(yawDegrees)),
	}
}

// Forward returns the unit direction the pose faces.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation.Rotate(AxisForward)
}

// WithPosition возвращает новый Pose с обновлёнными координатами (immutable pattern).
func (p Pose) WithPosition(position mgl64.Vec3) Pose {
	p.Position = position
	return p
}

// WithRotation возвращает новый Pose с обновлённым поворотом (immutable pattern).
func (p Pose) WithRotation(rotation mgl64.Quat) Pose {
	p.Rotation = rotation
	return p
}

// YawRotation returns a rotation of angle radians around the up axis.
func YawRotation(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, AxisUp)
}

// LookRotation returns the rotation that faces dir, keeping the up axis vertical.
// Only the horizontal part of dir is used. ok is false for a vertical or zero dir,
// in which case no rotation is defined.
func LookRotation(dir mgl64.Vec3) (q mgl64.Quat, ok bool) {
	if dir.X() == 0 && dir.Z() == 0 {
		return mgl64.QuatIdent(), false
	}
	return YawRotation(math.Atan2(dir.X(), dir.Z())), true
}

// Slerp interpolates from a to b along the shortest arc. t is clamped to [0, 1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}
