// Package world is the scene-object store agents query by tag.
package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/udisondev/npcfsm/internal/model"
)

// ErrDuplicateObject is returned when an object ID is already in the scene.
var ErrDuplicateObject = errors.New("world: duplicate object id")

// World holds the scene's tagged objects. It is passed explicitly to whoever
// needs lookups; there is no global instance.
//
// Tagged objects are kept in insertion order, so FindByTag results are stable
// between runs of the same scene.
type World struct {
	mu      sync.RWMutex
	objects map[uint32]model.SceneObject // objectID → object
	byTag   map[string][]uint32          // tag → objectIDs in insertion order

	ids *ObjectIDGenerator
}

// New creates an empty world.
func New() *World {
	return &World{
		objects: make(map[uint32]model.SceneObject),
		byTag:   make(map[string][]uint32),
		ids:     NewObjectIDGenerator(),
	}
}

// IDs returns the world's ID generator.
func (w *World) IDs() *ObjectIDGenerator {
	return w.ids
}

// AddObject adds obj to the scene.
// Returns ErrDuplicateObject if its ID is taken.
func (w *World) AddObject(obj model.SceneObject) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := obj.ObjectID()
	if _, exists := w.objects[id]; exists {
		return fmt.Errorf("adding %q: %w: %d", obj.Name(), ErrDuplicateObject, id)
	}

	w.objects[id] = obj
	if obj.Tag() != "" {
		w.byTag[obj.Tag()] = append(w.byTag[obj.Tag()], id)
	}
	return nil
}

// FindByTag returns the objects carrying tag in insertion order.
// The result is a fresh slice; nil when nothing matches.
func (w *World) FindByTag(tag string) []model.SceneObject {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ids := w.byTag[tag]
	if len(ids) == 0 {
		return nil
	}
	out := make([]model.SceneObject, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.objects[id])
	}
	return out
}

// ObjectCount returns total number of objects in the scene
func (w *World) ObjectCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.objects)
}
