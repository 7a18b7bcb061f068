// Package perception implements the geometric predicates an NPC uses to
// notice its target: the vision cone, the rear-proximity check and the
// attack range. All predicates are pure functions of positions and facing.
package perception

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Thresholds configures the perception model. Distances are in world units,
// angles in degrees. All comparisons are strict.
type Thresholds struct {
	VisionDistance float64 `yaml:"vision_distance"`
	VisionAngle    float64 `yaml:"vision_angle"`
	RearDistance   float64 `yaml:"rear_distance"`
	RearAngle      float64 `yaml:"rear_angle"`
	ShootDistance  float64 `yaml:"shoot_distance"`
}

// DefaultThresholds returns the stock perception model.
func DefaultThresholds() Thresholds {
	return Thresholds{
		VisionDistance: 10.0,
		VisionAngle:    30.0,
		RearDistance:   2.0,
		RearAngle:      30.0,
		ShootDistance:  7.0,
	}
}

// angleEpsilon matches the zero-length guard of common engine Angle helpers.
const angleEpsilon = 1e-15

// Angle returns the unsigned angle between a and b in degrees, in [0, 180].
// Zero-length vectors yield 0.
func Angle(a, b mgl64.Vec3) float64 {
	denom := math.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < angleEpsilon {
		return 0
	}
	cos := mgl64.Clamp(a.Dot(b)/denom, -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// CanSeePlayer reports whether target is inside the vision cone of an NPC at
// position facing forward.
func (t Thresholds) CanSeePlayer(position, forward, target mgl64.Vec3) bool {
	direction := target.Sub(position)
	return direction.Len() < t.VisionDistance && Angle(direction, forward) < t.VisionAngle
}

// IsPlayerBehind reports whether target is close behind the NPC: near enough
// and with the NPC's back turned to it.
func (t Thresholds) IsPlayerBehind(position, forward, target mgl64.Vec3) bool {
	direction := position.Sub(target)
	return direction.Len() < t.RearDistance && Angle(direction, forward) < t.RearAngle
}

// CanAttackPlayer reports whether target is within shooting distance.
func (t Thresholds) CanAttackPlayer(position, target mgl64.Vec3) bool {
	return target.Sub(position).Len() < t.ShootDistance
}
