package ai

import (
	"log/slog"
	"sync/atomic"

	"github.com/udisondev/npcfsm/internal/model"
)

// NpcAI is the Controller for a single NPC FSM.
// Ticks are serialized by the TickManager; State and counters may be read
// from other goroutines.
type NpcAI struct {
	agent     *Agent
	machine   *Machine
	isRunning atomic.Bool
	halted    atomic.Bool // Stop приостановил навигацию и звук
	state     atomic.Int32
	tickCount atomic.Int64
}

// NewNpcAI builds the FSM for agent. The agent starts in Idle.
func NewNpcAI(agent *Agent) (*NpcAI, error) {
	machine, err := NewMachine(agent)
	if err != nil {
		return nil, err
	}
	ai := &NpcAI{
		agent:   agent,
		machine: machine,
	}
	ai.state.Store(int32(machine.State()))
	return ai, nil
}

// Start starts AI controller. After Stop it restores what the current state
// had set up: movement for the moving states, the shooting sound for Attack.
func (ai *NpcAI) Start() {
	if ai.isRunning.Swap(true) {
		return
	}
	if ai.halted.Swap(false) {
		ai.resume()
	}
	slog.Debug("NPC AI started",
		"agent", ai.agent.Name,
		"state", ai.CurrentState())
}

func (ai *NpcAI) resume() {
	if ai.CurrentState() == model.StateAttack {
		if ai.agent.Audio != nil {
			ai.agent.Audio.Play()
		}
		return
	}
	ai.agent.Nav.SetPaused(false)
}

// Stop halts the NPC: navigation is paused and its sound source silenced.
func (ai *NpcAI) Stop() {
	if !ai.isRunning.Swap(false) {
		return
	}
	ai.agent.Nav.SetPaused(true)
	if ai.agent.Audio != nil {
		ai.agent.Audio.Stop()
	}
	ai.halted.Store(true)
	slog.Debug("NPC AI stopped",
		"agent", ai.agent.Name,
		"state", ai.CurrentState(),
		"ticks", ai.tickCount.Load())
}

// Tick performs one frame. Stopped controllers ignore ticks.
func (ai *NpcAI) Tick(dt float64) error {
	if !ai.isRunning.Load() {
		return nil
	}
	ai.tickCount.Add(1)
	if err := ai.machine.Tick(dt); err != nil {
		return err
	}
	ai.state.Store(int32(ai.machine.State()))
	return nil
}

// Name returns the agent name
func (ai *NpcAI) Name() string {
	return ai.agent.Name
}

// CurrentState returns the kind of the active state
func (ai *NpcAI) CurrentState() model.StateKind {
	return model.StateKind(ai.state.Load())
}

// TickCount returns number of frames processed while running
func (ai *NpcAI) TickCount() int64 {
	return ai.tickCount.Load()
}

// Machine returns the underlying FSM driver.
func (ai *NpcAI) Machine() *Machine {
	return ai.machine
}
