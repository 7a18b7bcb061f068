package ai

import "github.com/udisondev/npcfsm/internal/model"

func newIdle(a *Agent) *State {
	return newState(model.StateIdle, a)
}

func idleEnter(s *State) {
	s.agent.Anim.SetTrigger(s.agent.Behavior.Animations.Idle)
}

// idleUpdate chases a visible target, otherwise starts patrolling with
// PatrolChance percent per tick. The roll is per frame, so the effective
// rate scales with the tick rate.
func idleUpdate(s *State) {
	a := s.agent
	if a.canSeePlayer() {
		s.transition(newPursue(a))
		return
	}
	if a.Rand.IntN(100) < a.Behavior.PatrolChance {
		s.transition(newPatrol(a))
	}
}

func idleExit(s *State) {
	s.agent.Anim.ClearTrigger(s.agent.Behavior.Animations.Idle)
}
