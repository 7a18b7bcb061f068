package sim

import (
	"slices"
	"sync"
)

// Animator records animation triggers. A trigger stays active until cleared.
type Animator struct {
	mu     sync.Mutex
	active map[string]bool
	fired  map[string]int
}

func NewAnimator() *Animator {
	return &Animator{
		active: make(map[string]bool),
		fired:  make(map[string]int),
	}
}

func (a *Animator) SetTrigger(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active[name] = true
	a.fired[name]++
}

func (a *Animator) ClearTrigger(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.active, name)
}

// IsActive reports whether trigger name is set.
func (a *Animator) IsActive(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active[name]
}

// Active returns the set triggers in name order.
func (a *Animator) Active() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, 0, len(a.active))
	for name := range a.active {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Fired returns how many times trigger name was set.
func (a *Animator) Fired(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fired[name]
}
