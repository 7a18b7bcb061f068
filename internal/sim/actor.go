// Package sim is a headless host for NPC agents: straight-line kinematics,
// an animation recorder, synthesized audio and a scripted target.
package sim

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/npcfsm/internal/model"
)

// Bounds is the walkable area on the horizontal plane. Y is ignored.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Contains reports whether p lies inside the bounds (edges included).
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Actor is an agent's body and navigator. It moves in a straight line towards
// its goal and turns to face the direction of travel.
//
// A path exists iff the goal lies inside the walkable bounds. Without a goal or
// a path the actor stands still and reports zero remaining distance.
type Actor struct {
	mu     sync.Mutex
	pose   model.Pose
	bounds Bounds

	speed     float64
	paused    bool
	goal      mgl64.Vec3
	hasGoal   bool
	validPath bool

	travelled float64
}

// NewActor creates a paused actor at pose.
func NewActor(pose model.Pose, bounds Bounds) *Actor {
	return &Actor{
		pose:   pose,
		bounds: bounds,
		paused: true,
	}
}

func (a *Actor) Position() mgl64.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pose.Position
}

func (a *Actor) Forward() mgl64.Vec3 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pose.Forward()
}

func (a *Actor) Rotation() mgl64.Quat {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pose.Rotation
}

func (a *Actor) SetRotation(q mgl64.Quat) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pose = a.pose.WithRotation(q)
}

func (a *Actor) SetSpeed(speed float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.speed = speed
}

func (a *Actor) SetPaused(paused bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.paused = paused
}

// SetGoal replaces the destination and recomputes the path.
func (a *Actor) SetGoal(goal mgl64.Vec3) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.goal = goal
	a.hasGoal = true
	a.validPath = a.bounds.Contains(goal)
}

// RemainingDistance returns the distance left along the current path.
func (a *Actor) RemainingDistance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.hasGoal || !a.validPath {
		return 0
	}
	return a.goal.Sub(a.pose.Position).Len()
}

func (a *Actor) HasValidPath() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasGoal && a.validPath
}

// Paused reports whether movement is paused.
func (a *Actor) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.paused
}

// Speed returns the current movement speed.
func (a *Actor) Speed() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.speed
}

// Travelled returns the total distance moved.
func (a *Actor) Travelled() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.travelled
}

// Step advances the actor by dt seconds.
func (a *Actor) Step(dt float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.paused || !a.hasGoal || !a.validPath || a.speed <= 0 {
		return
	}

	delta := a.goal.Sub(a.pose.Position)
	dist := delta.Len()
	if dist == 0 {
		return
	}

	move := a.speed * dt
	if move >= dist {
		a.pose.Position = a.goal
		move = dist
	} else {
		a.pose.Position = a.pose.Position.Add(delta.Mul(move / dist))
	}
	a.travelled += move

	if look, ok := model.LookRotation(delta); ok {
		a.pose.Rotation = look
	}
}
