package ai

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/npcfsm/internal/model"
)

var (
	// ErrNilAgent is returned when a machine is built without an agent.
	ErrNilAgent = errors.New("ai: agent is nil")
	// ErrRetiredState means the driver was about to process a state that
	// already handed off to its successor.
	ErrRetiredState = errors.New("ai: retired state processed")
)

// TransitionFunc observes state changes of a machine.
type TransitionFunc func(from, to model.StateKind)

// Machine drives one agent's FSM: it holds the current state, processes it once
// per frame and swaps in the successor when the state exits.
// Not safe for concurrent use; the owning controller serializes ticks.
type Machine struct {
	agent       *Agent
	current     *State
	ticks       uint64
	transitions uint64

	onTransition TransitionFunc
}

// NewMachine validates agent and starts its FSM in Idle.
func NewMachine(agent *Agent) (*Machine, error) {
	if agent == nil {
		return nil, ErrNilAgent
	}
	if err := agent.Validate(); err != nil {
		return nil, fmt.Errorf("building machine for %q: %w", agent.Name, err)
	}
	return &Machine{
		agent:   agent,
		current: newIdle(agent),
	}, nil
}

// OnTransition sets the transition observer.
func (m *Machine) OnTransition(fn TransitionFunc) {
	m.onTransition = fn
}

// Tick processes the current state for a frame lasting dt seconds.
func (m *Machine) Tick(dt float64) error {
	if m.current.Retired() {
		return fmt.Errorf("%w: agent %q state %s", ErrRetiredState, m.agent.Name, m.current.kind)
	}

	m.agent.dt = dt
	m.ticks++

	next := m.current.Process()
	if next == m.current {
		return nil
	}

	from := m.current.kind
	m.current = next
	m.transitions++

	if IsDebugEnabled() {
		slog.Debug("NPC state changed",
			"agent", m.agent.Name,
			"from", from,
			"to", next.kind,
			"tick", m.ticks)
	}
	if m.onTransition != nil {
		m.onTransition(from, next.kind)
	}
	return nil
}

// State returns the kind of the current state.
func (m *Machine) State() model.StateKind {
	return m.current.kind
}

// Current returns the current state object.
func (m *Machine) Current() *State {
	return m.current
}

// Ticks returns the number of processed frames.
func (m *Machine) Ticks() uint64 {
	return m.ticks
}

// Transitions returns the number of state changes so far.
func (m *Machine) Transitions() uint64 {
	return m.transitions
}
