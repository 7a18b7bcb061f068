package perception

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

var (
	origin  = mgl64.Vec3{}
	forward = mgl64.Vec3{0, 0, 1}
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	assert.Equal(t, 10.0, th.VisionDistance)
	assert.Equal(t, 30.0, th.VisionAngle)
	assert.Equal(t, 2.0, th.RearDistance)
	assert.Equal(t, 30.0, th.RearAngle)
	assert.Equal(t, 7.0, th.ShootDistance)
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl64.Vec3
		want float64
	}{
		{"same direction", mgl64.Vec3{0, 0, 2}, forward, 0},
		{"opposite", mgl64.Vec3{0, 0, -3}, forward, 180},
		{"perpendicular", mgl64.Vec3{1, 0, 0}, forward, 90},
		{"diagonal", mgl64.Vec3{1, 0, 1}, forward, 45},
		{"zero vector", mgl64.Vec3{}, forward, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Angle(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCanSeePlayer(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name   string
		target mgl64.Vec3
		want   bool
	}{
		{"straight ahead", mgl64.Vec3{0, 0, 5}, true},
		{"just inside distance", mgl64.Vec3{0, 0, 9.999}, true},
		{"exactly at distance", mgl64.Vec3{0, 0, 10}, false},
		{"beyond distance", mgl64.Vec3{0, 0, 12}, false},
		{"inside cone at 20 degrees", yawed(20, 5), true},
		{"outside cone at 40 degrees", yawed(40, 5), false},
		{"behind", mgl64.Vec3{0, 0, -5}, false},
		{"beside", mgl64.Vec3{5, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.CanSeePlayer(origin, forward, tt.target))
		})
	}
}

func TestCanSeePlayer_AngleBoundaryIsStrict(t *testing.T) {
	target := yawed(30, 5)

	th := DefaultThresholds()
	th.VisionAngle = Angle(target, forward)
	assert.False(t, th.CanSeePlayer(origin, forward, target), "angle equal to threshold must not be seen")

	th.VisionAngle = math.Nextafter(th.VisionAngle, math.Inf(1))
	assert.True(t, th.CanSeePlayer(origin, forward, target))
}

func TestCanSeePlayer_UsesFullDistance(t *testing.T) {
	th := DefaultThresholds()
	// 6 forward and 8 up: distance 10 exactly, elevation angle ~53 degrees
	assert.False(t, th.CanSeePlayer(origin, forward, mgl64.Vec3{0, 8, 6}))
}

func TestIsPlayerBehind(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name   string
		target mgl64.Vec3
		want   bool
	}{
		{"close behind", mgl64.Vec3{0, 0, -1}, true},
		{"exactly at rear distance", mgl64.Vec3{0, 0, -2}, false},
		{"far behind", mgl64.Vec3{0, 0, -5}, false},
		{"close in front", mgl64.Vec3{0, 0, 1}, false},
		{"close beside", mgl64.Vec3{1, 0, 0}, false},
		{"close behind at 20 degrees", yawed(200, 1.5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.IsPlayerBehind(origin, forward, tt.target))
		})
	}
}

func TestCanAttackPlayer(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name   string
		target mgl64.Vec3
		want   bool
	}{
		{"inside", mgl64.Vec3{0, 0, 6}, true},
		{"exactly at shoot distance", mgl64.Vec3{7, 0, 0}, false},
		{"outside", mgl64.Vec3{0, 0, -8}, false},
		{"any direction", mgl64.Vec3{-3, 0, -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.CanAttackPlayer(origin, tt.target))
		})
	}
}

// yawed returns a horizontal point at dist from the origin, rotated deg degrees
// from +Z towards +X.
func yawed(deg, dist float64) mgl64.Vec3 {
	r := mgl64.DegToRad(deg)
	return mgl64.Vec3{math.Sin(r) * dist, 0, math.Cos(r) * dist}
}
