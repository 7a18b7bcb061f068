package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/npcfsm/internal/ai"
	"github.com/udisondev/npcfsm/internal/model"
)

// Options tune the simulation loop.
type Options struct {
	TickRate   int   // steps per second
	Workers    int   // agents ticked in parallel
	MaxTicks   int64 // 0 = run until the context is canceled
	SampleRate int   // audio mixer rate, Hz
}

// Simulation owns the tick manager, the target and the audio mix.
// Every step moves the target, ticks all agents and renders the audio frame.
type Simulation struct {
	opts    Options
	dt      float64
	manager *ai.TickManager
	target  *Target
	mixer   *Mixer

	mu     sync.Mutex
	agents []*Agent
}

// MaxTickRate is the highest step rate the fixed-step loop accepts.
const MaxTickRate = 1000

// New creates a simulation chasing target.
func New(opts Options, target *Target) (*Simulation, error) {
	if opts.TickRate <= 0 || opts.TickRate > MaxTickRate {
		return nil, fmt.Errorf("tick rate must be within [1, %d], got %d", MaxTickRate, opts.TickRate)
	}
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", opts.SampleRate)
	}
	if target == nil {
		return nil, ai.ErrNilTarget
	}

	interval := time.Second / time.Duration(opts.TickRate)
	s := &Simulation{
		opts:    opts,
		dt:      interval.Seconds(),
		manager: ai.NewTickManager(interval, opts.Workers),
		target:  target,
		mixer:   NewMixer(opts.SampleRate),
	}
	s.manager.SetPreTick(target.Step)
	s.manager.SetPostTick(s.postTick)
	return s, nil
}

func (s *Simulation) postTick(dt float64) {
	s.mixer.Render(dt)

	// Steps() ещё не включает текущий шаг
	if s.opts.MaxTicks > 0 && s.manager.Steps()+1 >= s.opts.MaxTicks {
		s.manager.Stop()
	}
}

// Target returns the tracked target.
func (s *Simulation) Target() *Target { return s.target }

// Mixer returns the audio mix.
func (s *Simulation) Mixer() *Mixer { return s.mixer }

// Manager returns the tick manager.
func (s *Simulation) Manager() *ai.TickManager { return s.manager }

// AddAgent registers agent with the tick manager and starts it.
func (s *Simulation) AddAgent(agent *Agent) {
	s.mu.Lock()
	s.agents = append(s.agents, agent)
	s.mu.Unlock()

	s.manager.Register(agent.ID(), agent)
}

// RemoveAgent stops the agent and drops it from the loop.
func (s *Simulation) RemoveAgent(id uint32) {
	s.mu.Lock()
	for i, a := range s.agents {
		if a.ID() == id {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.manager.Unregister(id)
}

// Agents returns the registered agents in spawn order.
func (s *Simulation) Agents() []*Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Agent(nil), s.agents...)
}

// Run drives the loop in real time until ctx is canceled or MaxTicks steps ran.
// Cancellation is a normal shutdown and returns nil.
func (s *Simulation) Run(ctx context.Context) error {
	err := s.manager.Start(ctx)
	s.logSummary()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Step runs n steps back to back, without waiting for the ticker.
func (s *Simulation) Step(ctx context.Context, n int) error {
	for range n {
		if err := s.manager.Step(ctx, s.dt); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns the number of completed steps.
func (s *Simulation) Steps() int64 {
	return s.manager.Steps()
}

// Close stops every agent.
func (s *Simulation) Close() {
	s.manager.Stop()
	for _, a := range s.Agents() {
		s.manager.Unregister(a.ID())
	}
}

// AgentSummary is a per-agent snapshot.
type AgentSummary struct {
	ID          uint32
	Name        string
	State       model.StateKind
	Ticks       int64
	Transitions uint64
	Travelled   float64
}

// Summary snapshots every agent in spawn order.
func (s *Simulation) Summary() []AgentSummary {
	agents := s.Agents()
	out := make([]AgentSummary, 0, len(agents))
	for _, a := range agents {
		out = append(out, AgentSummary{
			ID:          a.ID(),
			Name:        a.Name(),
			State:       a.CurrentState(),
			Ticks:       a.NPC().TickCount(),
			Transitions: a.NPC().Machine().Transitions(),
			Travelled:   a.Actor().Travelled(),
		})
	}
	return out
}

func (s *Simulation) logSummary() {
	slog.Info("simulation finished",
		"steps", s.manager.Steps(),
		"agents", s.manager.Count(),
		"audio_samples", s.mixer.Rendered(),
		"audio_peak", s.mixer.Peak())

	for _, sum := range s.Summary() {
		slog.Info("agent summary",
			"agent", sum.Name,
			"objectID", sum.ID,
			"state", sum.State,
			"ticks", sum.Ticks,
			"transitions", sum.Transitions,
			"travelled", sum.Travelled)
	}
}
