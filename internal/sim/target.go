package sim

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Target is the tracked player. It walks its route at constant speed and loops
// back to the first point after the last one.
type Target struct {
	mu    sync.RWMutex
	route []mgl64.Vec3
	loop  float64 // length of one full lap
	speed float64
	pos   mgl64.Vec3
	next  int
}

// NewTarget places the target at route[0]. An empty route keeps it at the
// origin; a single point keeps it there.
func NewTarget(route []mgl64.Vec3, speed float64) *Target {
	t := &Target{
		route: append([]mgl64.Vec3(nil), route...),
		speed: speed,
	}
	if len(route) > 0 {
		t.pos = route[0]
		t.next = 1 % len(route)
	}
	for i, p := range route {
		t.loop += route[(i+1)%len(route)].Sub(p).Len()
	}
	return t
}

// Position implements ai.Target.
func (t *Target) Position() mgl64.Vec3 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pos
}

// Step moves the target dt seconds along its route.
func (t *Target) Step(dt float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.loop == 0 || t.speed <= 0 {
		return
	}

	budget := t.speed * dt
	if budget > t.loop {
		budget = math.Mod(budget, t.loop)
	}
	for budget > 0 {
		goal := t.route[t.next]
		delta := goal.Sub(t.pos)
		dist := delta.Len()
		if dist > budget {
			t.pos = t.pos.Add(delta.Mul(budget / dist))
			return
		}
		t.pos = goal
		budget -= dist
		t.next = (t.next + 1) % len(t.route)
	}
}
