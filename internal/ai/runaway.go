package ai

import (
	"log/slog"

	"github.com/udisondev/npcfsm/internal/model"
)

// newRunAway resolves the safe location once. The first object carrying the
// safe tag wins.
func newRunAway(a *Agent) *State {
	s := newState(model.StateRunAway, a)
	if found := a.Env.FindByTag(a.Behavior.SafeTag); len(found) > 0 {
		safe := found[0]
		s.safe = &safe
	}
	return s
}

func runAwayEnter(s *State) {
	a := s.agent
	a.Anim.SetTrigger(a.Behavior.Animations.Running)
	a.Nav.SetPaused(false)
	a.Nav.SetSpeed(a.Behavior.FleeSpeed)
	if s.safe != nil {
		a.Nav.SetGoal(s.safe.Position())
	}
}

// runAwayUpdate settles into Idle on arrival. Without a safe location there is
// nowhere to run, so the agent falls back to Idle on its first update.
func runAwayUpdate(s *State) {
	a := s.agent
	if s.safe == nil {
		slog.Warn("no safe location, falling back to idle",
			"agent", a.Name,
			"tag", a.Behavior.SafeTag)
		s.transition(newIdle(a))
		return
	}

	if a.Nav.RemainingDistance() < a.Behavior.ArriveDistance {
		s.transition(newIdle(a))
	}
}

func runAwayExit(s *State) {
	s.agent.Anim.ClearTrigger(s.agent.Behavior.Animations.Running)
}
