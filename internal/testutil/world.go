package testutil

import (
	"testing"

	"github.com/udisondev/npcfsm/internal/model"
	"github.com/udisondev/npcfsm/internal/world"
)

// NewWorld creates a fresh world holding objs. Each test gets its own world,
// there is nothing to reset afterwards.
func NewWorld(t testing.TB, objs ...model.SceneObject) *world.World {
	t.Helper()
	w := world.New()
	for _, obj := range objs {
		if err := w.AddObject(obj); err != nil {
			t.Fatalf("adding %q to test world: %v", obj.Name(), err)
		}
	}
	return w
}
