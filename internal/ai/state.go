package ai

import "github.com/udisondev/npcfsm/internal/model"

// State is one behavioral mode of an NPC. It is a closed variant: kind selects
// the lifecycle from the dispatch table, and the kind-specific fields below are
// only meaningful for their kind.
//
// A State is single-use. Once Process returns its successor the state is
// retired (StageDone) and must not be processed again.
type State struct {
	kind  model.StateKind
	stage model.Stage
	agent *Agent
	next  *State

	// Patrol: index into the waypoint registry, -1 before Enter.
	patrolIndex int
	// Attack: audio handle captured at construction.
	emitter Emitter
	// RunAway: safe location resolved at construction, nil when the scene has none.
	safe *model.SceneObject
}

type lifecycle struct {
	enter  func(s *State)
	update func(s *State)
	exit   func(s *State)
}

var lifecycles = [...]lifecycle{
	model.StateIdle:    {enter: idleEnter, update: idleUpdate, exit: idleExit},
	model.StatePatrol:  {enter: patrolEnter, update: patrolUpdate, exit: patrolExit},
	model.StatePursue:  {enter: pursueEnter, update: pursueUpdate, exit: pursueExit},
	model.StateAttack:  {enter: attackEnter, update: attackUpdate, exit: attackExit},
	model.StateRunAway: {enter: runAwayEnter, update: runAwayUpdate, exit: runAwayExit},
}

func newState(kind model.StateKind, agent *Agent) *State {
	return &State{
		kind:        kind,
		stage:       model.StageEnter,
		agent:       agent,
		patrolIndex: -1,
	}
}

// Kind returns the state discriminant.
func (s *State) Kind() model.StateKind {
	return s.kind
}

// Stage returns the current lifecycle stage.
func (s *State) Stage() model.Stage {
	return s.stage
}

// Retired reports whether the state already handed off to its successor.
func (s *State) Retired() bool {
	return s.stage == model.StageDone
}

// Process runs one frame of the state's lifecycle and returns the state that
// should be current on the next frame: s itself, or its successor once s exits.
//
// Enter falls through to Update within the same call, and an Update that
// requests a transition falls through to Exit. Processing a retired state is a
// no-op.
func (s *State) Process() *State {
	if s.Retired() {
		return s
	}
	lc := lifecycles[s.kind]

	if s.stage == model.StageEnter {
		lc.enter(s)
		s.stage = model.StageUpdate
	}
	if s.stage == model.StageUpdate {
		lc.update(s)
	}
	if s.stage == model.StageExit {
		lc.exit(s)
		s.stage = model.StageDone
		return s.next
	}
	return s
}

// transition schedules next and asks Process to exit this frame.
func (s *State) transition(next *State) {
	s.next = next
	s.stage = model.StageExit
}
