package world

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/npcfsm/internal/model"
)

func obj(id uint32, name, tag string) model.SceneObject {
	return model.NewSceneObject(id, name, tag, mgl64.Vec3{float64(id), 0, 0})
}

func TestWorld_AddObject(t *testing.T) {
	w := New()
	assert.Zero(t, w.ObjectCount())

	require.NoError(t, w.AddObject(obj(1, "CP_A", "Checkpoint")))
	require.NoError(t, w.AddObject(obj(2, "Rock", "")))
	assert.Equal(t, 2, w.ObjectCount())

	got := w.FindByTag("Checkpoint")
	require.Len(t, got, 1)
	assert.Equal(t, "CP_A", got[0].Name())
	assert.Nil(t, w.FindByTag(""), "untagged objects are not indexed")
}

func TestWorld_DuplicateID(t *testing.T) {
	w := New()
	require.NoError(t, w.AddObject(obj(1, "CP_A", "Checkpoint")))

	err := w.AddObject(obj(1, "Bunker", "Safe"))
	assert.ErrorIs(t, err, ErrDuplicateObject)
	assert.Equal(t, 1, w.ObjectCount())
	assert.Nil(t, w.FindByTag("Safe"))
}

func TestWorld_FindByTagInsertionOrder(t *testing.T) {
	w := New()
	require.NoError(t, w.AddObject(obj(3, "CP_C", "Checkpoint")))
	require.NoError(t, w.AddObject(obj(1, "Bunker", "Safe")))
	require.NoError(t, w.AddObject(obj(2, "CP_A", "Checkpoint")))
	require.NoError(t, w.AddObject(obj(4, "Rock", "")))

	names := func(objs []model.SceneObject) []string {
		var out []string
		for _, o := range objs {
			out = append(out, o.Name())
		}
		return out
	}

	assert.Equal(t, []string{"CP_C", "CP_A"}, names(w.FindByTag("Checkpoint")))
	assert.Equal(t, []string{"Bunker"}, names(w.FindByTag("Safe")))
	assert.Nil(t, w.FindByTag("Player"))
	assert.Equal(t, 4, w.ObjectCount())
}

func TestWorld_FindByTagReturnsCopy(t *testing.T) {
	w := New()
	require.NoError(t, w.AddObject(obj(1, "CP_A", "Checkpoint")))

	found := w.FindByTag("Checkpoint")
	found[0] = obj(9, "Other", "Checkpoint")

	again := w.FindByTag("Checkpoint")
	assert.Equal(t, "CP_A", again[0].Name())
}

func TestWorld_ConcurrentReads(t *testing.T) {
	w := New()
	for i := uint32(1); i <= 50; i++ {
		require.NoError(t, w.AddObject(obj(i, "CP", "Checkpoint")))
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.Len(t, w.FindByTag("Checkpoint"), 50)
			}
		}()
	}
	wg.Wait()
}

func TestObjectIDGenerator(t *testing.T) {
	gen := NewObjectIDGenerator()

	agent := gen.NextAgentID()

	assert.Equal(t, uint32(0x20000001), agent)
	assert.Equal(t, agent+1, gen.NextAgentID())
}
