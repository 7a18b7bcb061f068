package ai

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/npcfsm/internal/model"
	"github.com/udisondev/npcfsm/internal/testutil"
)

func TestAttack_Enter(t *testing.T) {
	r := newRig(t)
	r.target.Pos = mgl64.Vec3{0, 0, 5}
	r.nav.Paused = false

	s := newAttack(r.agent)
	assert.Same(t, s, s.Process())

	assert.True(t, r.nav.Paused)
	assert.True(t, r.anim.Active["isShooting"])
	assert.Equal(t, 1, r.audio.Plays())
	assert.True(t, r.audio.Playing())
}

func TestAttack_TurnsTowardsTarget(t *testing.T) {
	tests := []struct {
		name    string
		dt      float64
		wantYaw float64
	}{
		{"full turn", 0.5, 90},
		{"partial turn", 0.125, 22.5},
		{"overshoot clamped", 2.0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t)
			r.target.Pos = mgl64.Vec3{5, 0, 0}
			r.agent.dt = tt.dt

			newAttack(r.agent).Process()

			fwd := r.body.Forward()
			gotYaw := mgl64.RadToDeg(math.Atan2(fwd.X(), fwd.Z()))
			assert.InDelta(t, tt.wantYaw, gotYaw, 1e-6)
		})
	}
}

func TestAttack_IgnoresHeightDifference(t *testing.T) {
	r := newRig(t)
	r.target.Pos = mgl64.Vec3{3, 4, 0}
	r.agent.dt = 1

	newAttack(r.agent).Process()

	fwd := r.body.Forward()
	assert.InDelta(t, 0, fwd.Y(), 1e-9)
	assert.InDelta(t, 1, fwd.X(), 1e-9)
}

func TestAttack_TargetOnTopKeepsRotation(t *testing.T) {
	r := newRig(t)
	r.target.Pos = mgl64.Vec3{0, 2, 0}
	r.agent.dt = 1

	newAttack(r.agent).Process()
	assert.Zero(t, r.body.Rotations)
}

func TestAttack_LeavesRangeStopsAudioOnce(t *testing.T) {
	r := newRig(t)
	r.target.Pos = mgl64.Vec3{0, 0, 5}

	s := newAttack(r.agent)
	s.Process()
	s.Process()
	assert.Zero(t, r.audio.Stops())

	r.target.Pos = mgl64.Vec3{0, 0, 7} // not strictly inside shoot distance
	next := s.Process()
	require.Equal(t, model.StateIdle, next.Kind())
	assert.Equal(t, 1, r.audio.Stops())
	assert.False(t, r.audio.Playing())
	assert.False(t, r.anim.Active["isShooting"])

	// the following Idle frames never touch the audio again
	r.target.Pos = mgl64.Vec3{0, 0, -100}
	for range 5 {
		next = next.Process()
	}
	assert.Equal(t, 1, r.audio.Stops())
	assert.Equal(t, 1, r.audio.Plays())
}

func TestAttack_WithoutAudio(t *testing.T) {
	r := newRig(t)
	r.agent.Audio = nil
	r.target.Pos = mgl64.Vec3{0, 0, 5}

	s := newAttack(r.agent)
	assert.NotPanics(t, func() { s.Process() })

	r.target.Pos = mgl64.Vec3{0, 0, 50}
	assert.NotPanics(t, func() {
		assert.Equal(t, model.StateIdle, s.Process().Kind())
	})
}

func TestAttack_AudioCapturedAtConstruction(t *testing.T) {
	r := newRig(t)
	r.target.Pos = mgl64.Vec3{0, 0, 5}

	s := newAttack(r.agent)
	replaced := &testutil.FakeEmitter{}
	r.agent.Audio = replaced
	s.Process()

	assert.Equal(t, 1, r.audio.Plays())
	assert.Zero(t, replaced.Plays())
}
