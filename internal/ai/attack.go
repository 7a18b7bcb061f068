package ai

import "github.com/udisondev/npcfsm/internal/model"

func newAttack(a *Agent) *State {
	s := newState(model.StateAttack, a)
	s.emitter = a.Audio
	return s
}

func attackEnter(s *State) {
	a := s.agent
	a.Nav.SetPaused(true)
	a.Anim.SetTrigger(a.Behavior.Animations.Shooting)
	if s.emitter != nil {
		s.emitter.Play()
	}
}

// attackUpdate turns the agent towards the target on the horizontal plane and
// drops back to Idle once the target leaves shooting range.
func attackUpdate(s *State) {
	a := s.agent
	direction := a.Target.Position().Sub(a.Body.Position())
	direction[1] = 0

	if look, ok := model.LookRotation(direction); ok {
		a.Body.SetRotation(model.Slerp(a.Body.Rotation(), look, a.dt*a.Behavior.RotationSpeed))
	}

	if !a.canAttackPlayer() {
		if s.emitter != nil {
			s.emitter.Stop()
		}
		s.transition(newIdle(a))
	}
}

func attackExit(s *State) {
	s.agent.Anim.ClearTrigger(s.agent.Behavior.Animations.Shooting)
}
