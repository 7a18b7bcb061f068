// Package spawn populates a simulation from a scene: static objects go into
// the world, every agent spawn point becomes a ticking NPC.
package spawn

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/udisondev/npcfsm/internal/ai"
	"github.com/udisondev/npcfsm/internal/data"
	"github.com/udisondev/npcfsm/internal/model"
	"github.com/udisondev/npcfsm/internal/sim"
	"github.com/udisondev/npcfsm/internal/waypoint"
	"github.com/udisondev/npcfsm/internal/world"
)

// ObjectSource loads the scene's static objects (file scene or database).
type ObjectSource interface {
	LoadAll(ctx context.Context) ([]model.SceneObject, error)
}

// Manager manages NPC spawns.
type Manager struct {
	world    *world.World
	sim      *sim.Simulation
	behavior ai.Behavior
	seed     uint64
	bounds   sim.Bounds

	// route is shared by every agent and resolved on the first patrol.
	route *waypoint.Lazy

	agents     sync.Map // map[uint32]*sim.Agent, objectID → agent
	agentCount atomic.Int32
}

// NewManager creates new spawn manager. seed makes per-agent randomness reproducible.
func NewManager(w *world.World, s *sim.Simulation, behavior ai.Behavior, seed uint64) *Manager {
	return &Manager{
		world:    w,
		sim:      s,
		behavior: behavior,
		seed:     seed,
		route:    waypoint.NewLazy(w.FindByTag, behavior.CheckpointTag),
	}
}

// Route returns the shared checkpoint registry.
func (m *Manager) Route() waypoint.Source {
	return m.route
}

// SetBounds sets the walkable area for agents spawned afterwards.
func (m *Manager) SetBounds(b data.Bounds) {
	m.bounds = sim.Bounds{Min: b.Min, Max: b.Max}
}

// LoadObjects adds the source's objects to the world.
func (m *Manager) LoadObjects(ctx context.Context, src ObjectSource) error {
	objects, err := src.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading scene objects: %w", err)
	}

	for _, obj := range objects {
		if err := m.world.AddObject(obj); err != nil {
			return fmt.Errorf("loading scene objects: %w", err)
		}
	}

	slog.Info("scene objects loaded",
		"count", len(objects),
		"total", m.world.ObjectCount(),
		"checkpoints", len(m.world.FindByTag(m.behavior.CheckpointTag)),
		"safe", len(m.world.FindByTag(m.behavior.SafeTag)))
	return nil
}

// DoSpawn spawns one NPC and registers it with the simulation.
func (m *Manager) DoSpawn(spec data.AgentSpec) (*sim.Agent, error) {
	objectID := m.world.IDs().NextAgentID()

	actor := sim.NewActor(model.NewPose(spec.Position, spec.Heading), m.bounds)
	anim := sim.NewAnimator()
	emitter := m.sim.Mixer().NewEmitter(m.seed ^ uint64(objectID))

	npc, err := ai.NewNpcAI(&ai.Agent{
		Name:      spec.Name,
		Body:      actor,
		Nav:       actor,
		Anim:      anim,
		Audio:     emitter,
		Env:       m.world,
		Target:    m.sim.Target(),
		Waypoints: m.route,
		Rand:      rand.New(rand.NewPCG(m.seed, uint64(objectID))),
		Behavior:  m.behavior,
	})
	if err != nil {
		return nil, fmt.Errorf("spawning %q: %w", spec.Name, err)
	}

	agent := sim.NewAgent(objectID, npc, actor, anim, emitter)
	m.agents.Store(objectID, agent)
	m.agentCount.Add(1)
	m.sim.AddAgent(agent)

	slog.Info("NPC spawned",
		"objectID", objectID,
		"name", spec.Name,
		"position", spec.Position,
		"heading", spec.Heading)

	return agent, nil
}

// Despawn stops the NPC and removes it from the simulation.
func (m *Manager) Despawn(objectID uint32) bool {
	value, ok := m.agents.LoadAndDelete(objectID)
	if !ok {
		return false
	}
	m.agentCount.Add(-1)
	m.sim.RemoveAgent(objectID)

	agent := value.(*sim.Agent)
	slog.Info("NPC despawned",
		"objectID", objectID,
		"name", agent.Name(),
		"state", agent.CurrentState())
	return true
}

// SpawnAll spawns every spec. Failed spawns are logged and skipped; the first
// error is returned once all specs were tried.
func (m *Manager) SpawnAll(specs []data.AgentSpec) error {
	count := 0
	var firstErr error

	for _, spec := range specs {
		if _, err := m.DoSpawn(spec); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			slog.Error("failed to spawn NPC", "name", spec.Name, "error", err)
			continue
		}
		count++
	}

	if firstErr != nil {
		slog.Warn("SpawnAll completed with errors", "spawned", count, "error", firstErr)
		return fmt.Errorf("spawning all NPCs: %w", firstErr)
	}

	slog.Info("all NPCs spawned", "count", count)
	return nil
}

// SpawnScene loads objects from src and spawns the scene's agents inside its
// walkable area. src is usually the scene itself.
func (m *Manager) SpawnScene(ctx context.Context, scene *data.Scene, src ObjectSource) error {
	m.SetBounds(scene.Walkable)
	if err := m.LoadObjects(ctx, src); err != nil {
		return err
	}
	return m.SpawnAll(scene.Agents)
}

// GetAgent returns agent by objectID
func (m *Manager) GetAgent(objectID uint32) (*sim.Agent, bool) {
	value, ok := m.agents.Load(objectID)
	if !ok {
		return nil, false
	}
	return value.(*sim.Agent), true
}

// AgentCount returns number of spawned agents (O(1) cached count)
func (m *Manager) AgentCount() int {
	return int(m.agentCount.Load())
}
