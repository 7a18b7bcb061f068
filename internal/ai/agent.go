package ai

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/npcfsm/internal/model"
	"github.com/udisondev/npcfsm/internal/perception"
	"github.com/udisondev/npcfsm/internal/waypoint"
)

// Navigator is the host movement/pathfinding system of one agent.
type Navigator interface {
	SetSpeed(speed float64)
	SetPaused(paused bool)
	SetGoal(goal mgl64.Vec3)
	RemainingDistance() float64
	HasValidPath() bool
}

// Body exposes the agent's transform. Position and facing are owned by the host.
type Body interface {
	Position() mgl64.Vec3
	Forward() mgl64.Vec3
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
}

// Animator receives fire-and-forget animation triggers.
type Animator interface {
	SetTrigger(name string)
	ClearTrigger(name string)
}

// Emitter is a per-agent sound source.
type Emitter interface {
	Play()
	Stop()
}

// Environment resolves scene objects by tag.
type Environment interface {
	FindByTag(tag string) []model.SceneObject
}

// Target is a stable handle to the tracked target's transform.
type Target interface {
	Position() mgl64.Vec3
}

// Roller draws uniform integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Roller interface {
	IntN(n int) int
}

// Construction errors. A machine is never built over an incomplete agent.
var (
	ErrNilTarget      = errors.New("ai: target is nil")
	ErrNilBody        = errors.New("ai: body is nil")
	ErrNilNavigator   = errors.New("ai: navigator is nil")
	ErrNilAnimator    = errors.New("ai: animator is nil")
	ErrNilEnvironment = errors.New("ai: environment is nil")
	ErrNilRoller      = errors.New("ai: roller is nil")
)

// Agent is everything a state operates on. The FSM does not own any of these;
// the host keeps them valid for the agent's whole session.
//
// Audio and Waypoints may be nil: Attack then stays silent and Patrol sees an
// empty route.
type Agent struct {
	Name      string
	Body      Body
	Nav       Navigator
	Anim      Animator
	Audio     Emitter
	Env       Environment
	Target    Target
	Waypoints waypoint.Source
	Rand      Roller
	Behavior  Behavior

	// dt is the duration of the frame being processed, in seconds.
	dt float64
}

// Validate checks the agent's required handles.
func (a *Agent) Validate() error {
	switch {
	case a.Target == nil:
		return ErrNilTarget
	case a.Body == nil:
		return ErrNilBody
	case a.Nav == nil:
		return ErrNilNavigator
	case a.Anim == nil:
		return ErrNilAnimator
	case a.Env == nil:
		return ErrNilEnvironment
	case a.Rand == nil:
		return ErrNilRoller
	}
	return nil
}

// DeltaTime returns the duration of the frame being processed.
func (a *Agent) DeltaTime() float64 {
	return a.dt
}

func (a *Agent) route() *waypoint.Registry {
	if a.Waypoints == nil {
		return nil
	}
	return a.Waypoints.Registry()
}

func (a *Agent) canSeePlayer() bool {
	return a.Behavior.Perception.CanSeePlayer(a.Body.Position(), a.Body.Forward(), a.Target.Position())
}

func (a *Agent) isPlayerBehind() bool {
	return a.Behavior.Perception.IsPlayerBehind(a.Body.Position(), a.Body.Forward(), a.Target.Position())
}

func (a *Agent) canAttackPlayer() bool {
	return a.Behavior.Perception.CanAttackPlayer(a.Body.Position(), a.Target.Position())
}

// Animation trigger names.
type Animations struct {
	Idle     string `yaml:"idle"`
	Walking  string `yaml:"walking"`
	Running  string `yaml:"running"`
	Shooting string `yaml:"shooting"`
}

// Behavior tunes the states. DefaultBehavior matches the stock NPC.
type Behavior struct {
	Perception     perception.Thresholds `yaml:"perception"`
	PatrolSpeed    float64               `yaml:"patrol_speed"`
	PursueSpeed    float64               `yaml:"pursue_speed"`
	FleeSpeed      float64               `yaml:"flee_speed"`
	ArriveDistance float64               `yaml:"arrive_distance"`
	RotationSpeed  float64               `yaml:"rotation_speed"`
	PatrolChance   int                   `yaml:"patrol_chance"` // percent per tick
	CheckpointTag  string                `yaml:"checkpoint_tag"`
	SafeTag        string                `yaml:"safe_tag"`
	Animations     Animations            `yaml:"animations"`
}

// DefaultBehavior returns the stock tuning.
func DefaultBehavior() Behavior {
	return Behavior{
		Perception:     perception.DefaultThresholds(),
		PatrolSpeed:    2.0,
		PursueSpeed:    5.0,
		FleeSpeed:      6.0,
		ArriveDistance: 1.0,
		RotationSpeed:  2.0,
		PatrolChance:   10,
		CheckpointTag:  "Checkpoint",
		SafeTag:        "Safe",
		Animations: Animations{
			Idle:     "isIdle",
			Walking:  "isWalking",
			Running:  "isRunning",
			Shooting: "isShooting",
		},
	}
}
