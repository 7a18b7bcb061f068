// Command npcsim runs the NPC behavior simulation headless: guards patrol,
// chase, shoot at and flee from a scripted player until interrupted or until
// max_ticks steps ran.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/npcfsm/internal/ai"
	"github.com/udisondev/npcfsm/internal/config"
	"github.com/udisondev/npcfsm/internal/data"
	"github.com/udisondev/npcfsm/internal/db"
	"github.com/udisondev/npcfsm/internal/model"
	"github.com/udisondev/npcfsm/internal/sim"
	"github.com/udisondev/npcfsm/internal/spawn"
	"github.com/udisondev/npcfsm/internal/world"
)

const (
	ConfigPath     = "config/npcsim.yaml"
	reportInterval = 5 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("NPCSIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := config.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Per-tick FSM logging only at debug level
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("npcsim starting",
		"log_level", cfg.LogLevel,
		"tick_rate", cfg.TickRate,
		"workers", cfg.Workers,
		"max_ticks", cfg.MaxTicks,
		"seed", cfg.Seed)

	scene := data.DefaultScene()
	if cfg.Scene.Path != "" {
		if scene, err = data.LoadScene(cfg.Scene.Path); err != nil {
			return err
		}
	}

	var objects spawn.ObjectSource = scene
	if cfg.Scene.Source == config.SceneSourcePostgres {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		version, err := db.RunMigrations(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database connected", "schema_version", version)

		name := cfg.Scene.Name
		if name == "" {
			name = scene.Name
		}
		objects = db.NewSceneRepository(database.Pool(), name)
	}

	simulation, err := sim.New(sim.Options{
		TickRate:   cfg.TickRate,
		Workers:    cfg.Workers,
		MaxTicks:   cfg.MaxTicks,
		SampleRate: cfg.Audio.SampleRate,
	}, sim.NewTarget(scene.Target.Route, scene.Target.Speed))
	if err != nil {
		return fmt.Errorf("creating simulation: %w", err)
	}
	defer simulation.Close()

	spawner := spawn.NewManager(world.New(), simulation, cfg.Behavior, cfg.Seed)
	if err := spawner.SpawnScene(ctx, scene, objects); err != nil {
		return fmt.Errorf("spawning scene %q: %w", scene.Name, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	finished := make(chan struct{})

	g.Go(func() error {
		defer close(finished)
		slog.Info("starting simulation", "scene", scene.Name, "agents", spawner.AgentCount())
		if err := simulation.Run(gctx); err != nil {
			return fmt.Errorf("simulation: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(reportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-finished:
				return nil
			case <-ticker.C:
				report(simulation)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation error: %w", err)
	}
	return nil
}

// report logs how many agents are in each state.
func report(s *sim.Simulation) {
	var counts [model.StateRunAway + 1]int
	for _, a := range s.Agents() {
		if k := a.CurrentState(); k >= 0 && int(k) < len(counts) {
			counts[k]++
		}
	}

	attrs := []any{"step", s.Steps(), "audio_rms", s.Mixer().LastRMS()}
	for k, n := range counts {
		attrs = append(attrs, model.StateKind(k).String(), n)
	}
	slog.Info("simulation status", attrs...)
}
