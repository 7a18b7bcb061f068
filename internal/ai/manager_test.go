package ai

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/npcfsm/internal/model"
	"github.com/udisondev/npcfsm/internal/testutil"
	"github.com/udisondev/npcfsm/internal/waypoint"
)

// countingController считает вызовы и может вернуть ошибку.
type countingController struct {
	name    string
	ticks   atomic.Int64
	started atomic.Int32
	stopped atomic.Int32
	err     error
}

func (c *countingController) Start() { c.started.Add(1) }
func (c *countingController) Stop()  { c.stopped.Add(1) }
func (c *countingController) Tick(dt float64) error {
	c.ticks.Add(1)
	return c.err
}
func (c *countingController) Name() string                  { return c.name }
func (c *countingController) CurrentState() model.StateKind { return model.StateIdle }

func TestTickManager_RegisterUnregister(t *testing.T) {
	mgr := NewTickManager(time.Millisecond, 2)

	c := &countingController{name: "a"}
	mgr.Register(1, c)

	if mgr.Count() != 1 {
		t.Errorf("Count() after Register() = %d, want 1", mgr.Count())
	}
	if c.started.Load() != 1 {
		t.Errorf("Register() should start controller")
	}

	controller, err := mgr.GetController(1)
	if err != nil {
		t.Fatalf("GetController() error = %v", err)
	}
	if controller.Name() != "a" {
		t.Errorf("controller.Name() = %q, want a", controller.Name())
	}

	mgr.Unregister(1)
	if mgr.Count() != 0 {
		t.Errorf("Count() after Unregister() = %d, want 0", mgr.Count())
	}
	if c.stopped.Load() != 1 {
		t.Errorf("Unregister() should stop controller")
	}
	if _, err := mgr.GetController(1); err == nil {
		t.Error("GetController() after Unregister() should return error")
	}

	// unknown id
	mgr.Unregister(42)
	if mgr.Count() != 0 {
		t.Errorf("Count() after unknown Unregister() = %d, want 0", mgr.Count())
	}
}

func TestTickManager_RegisterReplaces(t *testing.T) {
	mgr := NewTickManager(time.Millisecond, 1)

	first := &countingController{name: "first"}
	second := &countingController{name: "second"}
	mgr.Register(7, first)
	mgr.Register(7, second)

	assert.Equal(t, 1, mgr.Count())
	assert.Equal(t, int32(1), first.stopped.Load())

	c, err := mgr.GetController(7)
	require.NoError(t, err)
	assert.Equal(t, "second", c.Name())
}

func TestTickManager_StepTicksEveryControllerOnce(t *testing.T) {
	mgr := NewTickManager(time.Millisecond, 3)

	var order []string
	var mu sync.Mutex
	record := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}
	mgr.SetPreTick(func(dt float64) { record("pre") })
	mgr.SetPostTick(func(dt float64) { record("post") })

	controllers := make([]*countingController, 10)
	for i := range controllers {
		controllers[i] = &countingController{name: "c"}
		mgr.Register(uint32(i+1), controllers[i])
	}

	for range 5 {
		require.NoError(t, mgr.Step(context.Background(), 0.1))
	}

	for _, c := range controllers {
		assert.Equal(t, int64(5), c.ticks.Load())
	}
	assert.Equal(t, int64(5), mgr.Steps())
	require.Len(t, order, 10)
	for i := 0; i < len(order); i += 2 {
		assert.Equal(t, "pre", order[i])
		assert.Equal(t, "post", order[i+1])
	}
}

func TestTickManager_StepError(t *testing.T) {
	mgr := NewTickManager(time.Millisecond, 1)
	boom := errors.New("boom")
	mgr.Register(1, &countingController{name: "bad", err: boom})

	postCalled := false
	mgr.SetPostTick(func(dt float64) { postCalled = true })

	err := mgr.Step(context.Background(), 0.1)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "bad")
	assert.True(t, postCalled, "post hook runs even when a controller failed")
}

func TestTickManager_Start(t *testing.T) {
	mgr := NewTickManager(5*time.Millisecond, 2)
	c := &countingController{name: "a"}
	mgr.Register(1, c)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := mgr.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, c.ticks.Load())
}

func TestTickManager_Stop(t *testing.T) {
	mgr := NewTickManager(time.Millisecond, 1)

	done := make(chan error, 1)
	go func() { done <- mgr.Start(context.Background()) }()

	time.Sleep(10 * time.Millisecond)
	mgr.Stop()
	mgr.Stop() // idempotent

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start() did not return after Stop()")
	}
}

// Много NPC с общим ленивым маршрутом тикаются параллельно (go test -race).
func TestTickManager_ParallelAgentsShareRegistry(t *testing.T) {
	env := &testutil.FakeEnv{Objects: []model.SceneObject{
		checkpoint(1, "CP_A", 0, 10),
		checkpoint(2, "CP_B", 10, 10),
	}}
	route := waypoint.NewLazy(env.FindByTag, "Checkpoint")

	mgr := NewTickManager(time.Millisecond, 4)
	npcs := make([]*NpcAI, 32)
	for i := range npcs {
		r := newRig(t)
		r.roll.Value = 0
		r.agent.Env = env
		r.agent.Waypoints = route
		r.body.SetPosition(mgl64.Vec3{float64(i), 0, 0})

		ai, err := NewNpcAI(r.agent)
		require.NoError(t, err)
		npcs[i] = ai
		mgr.Register(uint32(i+1), ai)
	}

	for range 3 {
		require.NoError(t, mgr.Step(context.Background(), frame))
	}

	for _, npc := range npcs {
		assert.Equal(t, model.StatePatrol, npc.CurrentState())
		assert.Equal(t, int64(3), npc.TickCount())
	}
	assert.Equal(t, []string{"Checkpoint"}, env.Queries)
}
