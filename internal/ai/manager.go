package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// StepFunc runs before or after every manager step with the frame duration.
type StepFunc func(dt float64)

// TickManager drives all registered NPC controllers at a fixed step.
// Controllers share nothing mutable, so one step ticks them in parallel on up
// to workers goroutines; each controller is ticked exactly once per step.
type TickManager struct {
	controllers     sync.Map // map[uint32]Controller, objectID → controller
	controllerCount atomic.Int32
	steps           atomic.Int64

	interval time.Duration
	workers  int
	preTick  StepFunc
	postTick StepFunc

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewTickManager creates a manager stepping every interval. workers < 1 means 1.
func NewTickManager(interval time.Duration, workers int) *TickManager {
	if workers < 1 {
		workers = 1
	}
	return &TickManager{
		interval: interval,
		workers:  workers,
		stopCh:   make(chan struct{}),
	}
}

// SetPreTick sets a hook run before controllers are ticked (host world update).
// Must be called before Start.
func (m *TickManager) SetPreTick(fn StepFunc) {
	m.preTick = fn
}

// SetPostTick sets a hook run after all controllers were ticked.
// Must be called before Start.
func (m *TickManager) SetPostTick(fn StepFunc) {
	m.postTick = fn
}

// Register registers AI controller for NPC
func (m *TickManager) Register(objectID uint32, controller Controller) {
	if prev, loaded := m.controllers.Swap(objectID, controller); loaded {
		prev.(Controller).Stop()
	} else {
		m.controllerCount.Add(1)
	}
	controller.Start()

	slog.Debug("AI controller registered",
		"objectID", objectID,
		"agent", controller.Name(),
		"state", controller.CurrentState())
}

// Unregister unregisters AI controller
func (m *TickManager) Unregister(objectID uint32) {
	value, ok := m.controllers.LoadAndDelete(objectID)
	if !ok {
		return
	}

	m.controllerCount.Add(-1)

	controller := value.(Controller)
	controller.Stop()

	slog.Debug("AI controller unregistered", "objectID", objectID)
}

// Start runs the fixed-step loop (blocks until context is canceled, Stop is
// called or a step fails).
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	dt := m.interval.Seconds()
	slog.Info("AI tick manager started",
		"interval", m.interval,
		"workers", m.workers,
		"controllers", m.Count())

	for {
		select {
		case <-ctx.Done():
			slog.Info("AI tick manager stopping", "steps", m.steps.Load())
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("AI tick manager stopped", "steps", m.steps.Load())
			return nil

		case <-ticker.C:
			// Stop из post-tick hook должен выиграть у уже готового тика.
			select {
			case <-m.stopCh:
				slog.Info("AI tick manager stopped", "steps", m.steps.Load())
				return nil
			default:
			}
			if err := m.Step(ctx, dt); err != nil {
				return err
			}
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// Step runs one frame: the pre-tick hook, every controller, then the post-tick
// hook. The first controller error is returned after all ticks finished;
// controllers not yet ticked when it happened skip this frame.
func (m *TickManager) Step(ctx context.Context, dt float64) error {
	if m.preTick != nil {
		m.preTick(dt)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)

	count := 0
	m.controllers.Range(func(key, value any) bool {
		controller := value.(Controller)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := controller.Tick(dt); err != nil {
				return fmt.Errorf("ticking %s (objectID %d): %w", controller.Name(), key.(uint32), err)
			}
			return nil
		})
		count++
		return true
	})
	err := g.Wait()

	if m.postTick != nil {
		m.postTick(dt)
	}

	step := m.steps.Add(1)
	if count > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "step", step, "controllers", count)
	}
	return err
}

// Steps returns the number of completed steps.
func (m *TickManager) Steps() int64 {
	return m.steps.Load()
}

// Count returns number of registered controllers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// GetController returns controller for NPC
func (m *TickManager) GetController(objectID uint32) (Controller, error) {
	value, ok := m.controllers.Load(objectID)
	if !ok {
		return nil, fmt.Errorf("controller not found for objectID %d", objectID)
	}
	return value.(Controller), nil
}
