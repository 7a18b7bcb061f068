package ai

import (
	"log/slog"

	"github.com/udisondev/npcfsm/internal/model"
)

func newPatrol(a *Agent) *State {
	return newState(model.StatePatrol, a)
}

// patrolEnter starts the loop at the checkpoint nearest to the agent. The
// index is set one behind it so the first arrival check advances onto it.
// With an empty route the index stays -1 and no goal is ever issued.
func patrolEnter(s *State) {
	a := s.agent
	if idx, ok := a.route().Nearest(a.Body.Position()); ok {
		s.patrolIndex = idx - 1
	} else if IsDebugEnabled() {
		slog.Debug("patrol without checkpoints", "agent", a.Name)
	}

	a.Nav.SetSpeed(a.Behavior.PatrolSpeed)
	a.Nav.SetPaused(false)
	a.Anim.SetTrigger(a.Behavior.Animations.Walking)
}

func patrolUpdate(s *State) {
	a := s.agent
	route := a.route()
	if route.Len() > 0 && a.Nav.RemainingDistance() < a.Behavior.ArriveDistance {
		s.patrolIndex = route.Next(s.patrolIndex)
		a.Nav.SetGoal(route.At(s.patrolIndex).Position())
	}

	if a.canSeePlayer() {
		s.transition(newPursue(a))
	} else if a.isPlayerBehind() {
		s.transition(newRunAway(a))
	}
}

func patrolExit(s *State) {
	s.agent.Anim.ClearTrigger(s.agent.Behavior.Animations.Walking)
}
