package sim

import (
	"github.com/udisondev/npcfsm/internal/ai"
	"github.com/udisondev/npcfsm/internal/model"
)

// Agent is a spawned NPC: its FSM controller plus the host objects behind the
// FSM's capabilities. One tick runs the FSM and then the kinematics.
type Agent struct {
	id      uint32
	npc     *ai.NpcAI
	actor   *Actor
	anim    *Animator
	emitter *Emitter
}

// NewAgent binds npc to the host objects it was built over.
func NewAgent(id uint32, npc *ai.NpcAI, actor *Actor, anim *Animator, emitter *Emitter) *Agent {
	return &Agent{
		id:      id,
		npc:     npc,
		actor:   actor,
		anim:    anim,
		emitter: emitter,
	}
}

func (a *Agent) ID() uint32 { return a.id }

func (a *Agent) Actor() *Actor { return a.actor }

func (a *Agent) Animator() *Animator { return a.anim }

func (a *Agent) Emitter() *Emitter { return a.emitter }

func (a *Agent) NPC() *ai.NpcAI { return a.npc }

// Start implements ai.Controller.
func (a *Agent) Start() { a.npc.Start() }

// Stop implements ai.Controller.
func (a *Agent) Stop() { a.npc.Stop() }

// Tick implements ai.Controller.
func (a *Agent) Tick(dt float64) error {
	if err := a.npc.Tick(dt); err != nil {
		return err
	}
	a.actor.Step(dt)
	return nil
}

func (a *Agent) Name() string { return a.npc.Name() }

func (a *Agent) CurrentState() model.StateKind { return a.npc.CurrentState() }
