package model

// StateKind is the discriminant of an NPC behavior state.
type StateKind int32

const (
	// StateIdle - NPC stands still and occasionally starts patrolling
	StateIdle StateKind = iota
	// StatePatrol - NPC walks the checkpoint loop
	StatePatrol
	// StatePursue - NPC runs after the target
	StatePursue
	// StateAttack - NPC stands and shoots at the target
	StateAttack
	// StateRunAway - NPC flees to the safe location
	StateRunAway
)

// String returns human-readable state name
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "IDLE"
	case StatePatrol:
		return "PATROL"
	case StatePursue:
		return "PURSUE"
	case StateAttack:
		return "ATTACK"
	case StateRunAway:
		return "RUNAWAY"
	default:
		return "UNKNOWN"
	}
}

// Stage is the lifecycle stage of a state.
type Stage int32

const (
	StageEnter Stage = iota
	StageUpdate
	StageExit
	// StageDone marks a retired state. It is never processed again.
	StageDone
)

// String returns human-readable stage name
func (s Stage) String() string {
	switch s {
	case StageEnter:
		return "ENTER"
	case StageUpdate:
		return "UPDATE"
	case StageExit:
		return "EXIT"
	case StageDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}
