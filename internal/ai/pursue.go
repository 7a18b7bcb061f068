package ai

import "github.com/udisondev/npcfsm/internal/model"

func newPursue(a *Agent) *State {
	return newState(model.StatePursue, a)
}

func pursueEnter(s *State) {
	a := s.agent
	a.Nav.SetSpeed(a.Behavior.PursueSpeed)
	a.Nav.SetPaused(false)
	a.Anim.SetTrigger(a.Behavior.Animations.Running)
}

// pursueUpdate re-targets every frame. Transitions are only considered while
// a path to the target exists; otherwise the goal is simply re-issued next tick.
func pursueUpdate(s *State) {
	a := s.agent
	a.Nav.SetGoal(a.Target.Position())
	if !a.Nav.HasValidPath() {
		return
	}

	if a.canAttackPlayer() {
		s.transition(newAttack(a))
	} else if !a.canSeePlayer() {
		s.transition(newPatrol(a))
	}
}

func pursueExit(s *State) {
	s.agent.Anim.ClearTrigger(s.agent.Behavior.Animations.Running)
}
