package ai

import "github.com/udisondev/npcfsm/internal/model"

// Controller represents AI controller interface for NPCs
type Controller interface {
	// Start starts AI controller
	Start()

	// Stop stops AI controller
	Stop()

	// Tick performs one AI frame lasting dt seconds
	Tick(dt float64) error

	// Name returns the controlled agent's name
	Name() string

	// CurrentState returns the kind of the active FSM state
	CurrentState() model.StateKind
}
