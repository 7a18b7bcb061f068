// Package waypoint holds the ordered catalog of patrol checkpoints shared by
// every patrolling agent.
package waypoint

import (
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/npcfsm/internal/model"
)

// Registry is an immutable, name-ordered list of checkpoints.
// Safe for concurrent reads once constructed.
type Registry struct {
	checkpoints []model.SceneObject
}

// NewRegistry copies objects and sorts them by name. Objects with equal names
// keep their input order.
func NewRegistry(objects []model.SceneObject) *Registry {
	checkpoints := slices.Clone(objects)
	slices.SortStableFunc(checkpoints, func(a, b model.SceneObject) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return &Registry{checkpoints: checkpoints}
}

// Registry implements Source.
func (r *Registry) Registry() *Registry {
	return r
}

// Len returns number of checkpoints. A nil registry is empty.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.checkpoints)
}

// At returns checkpoint i in traversal order.
func (r *Registry) At(i int) model.SceneObject {
	return r.checkpoints[i]
}

// Checkpoints returns a copy of the traversal order.
func (r *Registry) Checkpoints() []model.SceneObject {
	if r == nil {
		return nil
	}
	return slices.Clone(r.checkpoints)
}

// Nearest returns the index of the checkpoint closest to p.
// Ties keep the earliest checkpoint in traversal order. ok is false for an
// empty registry.
func (r *Registry) Nearest(p mgl64.Vec3) (index int, ok bool) {
	index = -1
	best := math.Inf(1)
	for i := 0; i < r.Len(); i++ {
		if d := r.checkpoints[i].DistanceTo(p); d < best {
			best = d
			index = i
		}
	}
	return index, index >= 0
}

// Next returns the index that follows i, wrapping to 0 past the last one.
func (r *Registry) Next(i int) int {
	if i >= r.Len()-1 {
		return 0
	}
	return i + 1
}

// Source yields a registry. Both *Registry and *Lazy implement it.
type Source interface {
	Registry() *Registry
}

// FinderFunc resolves the objects carrying a tag.
type FinderFunc func(tag string) []model.SceneObject

// Lazy builds its registry on first access. Concurrent first calls are safe;
// the finder runs exactly once.
type Lazy struct {
	once   sync.Once
	find   FinderFunc
	tag    string
	loaded *Registry
}

// NewLazy creates a registry that resolves objects tagged tag via find on first use.
func NewLazy(find FinderFunc, tag string) *Lazy {
	return &Lazy{find: find, tag: tag}
}

// Registry returns the registry, building it on the first call.
func (l *Lazy) Registry() *Registry {
	l.once.Do(func() {
		var objects []model.SceneObject
		if l.find != nil {
			objects = l.find(l.tag)
		}
		l.loaded = NewRegistry(objects)
	})
	return l.loaded
}
