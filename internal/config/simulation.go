package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/npcfsm/internal/ai"
	"github.com/udisondev/npcfsm/internal/sim"
)

// Scene sources.
const (
	SceneSourceFile     = "file"
	SceneSourcePostgres = "postgres"
)

// SceneConfig selects where static scene objects come from. Agents, the target
// route and walkable bounds always come from the scene file; an empty path
// means the built-in scene.
type SceneConfig struct {
	Source string `yaml:"source"` // file | postgres
	Path   string `yaml:"path"`
	Name   string `yaml:"name"` // scene name in the database, defaults to the file's name
}

// AudioConfig holds the headless mixer settings.
type AudioConfig struct {
	SampleRate int `yaml:"sample_rate"`
}

// Simulation holds all configuration of the NPC simulation.
type Simulation struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	TickRate int    `yaml:"tick_rate"` // steps per second
	MaxTicks int64  `yaml:"max_ticks"` // 0 = until interrupted
	Workers  int    `yaml:"workers"`   // agents ticked in parallel
	Seed     uint64 `yaml:"seed"`

	Scene    SceneConfig    `yaml:"scene"`
	Database DatabaseConfig `yaml:"database"`
	Audio    AudioConfig    `yaml:"audio"`
	Behavior ai.Behavior    `yaml:"behavior"`
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel: "info",
		TickRate: 30,
		Workers:  4,
		Seed:     1,
		Scene: SceneConfig{
			Source: SceneSourceFile,
		},
		Database: DefaultDatabase(),
		Audio:    AudioConfig{SampleRate: 44100},
		Behavior: ai.DefaultBehavior(),
	}
}

// LoadSimulation loads simulation config from a YAML file.
// If the file doesn't exist, returns defaults. Keys absent from the file keep
// their default values.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the simulation cannot run with.
func (c Simulation) Validate() error {
	var errs []error
	if c.TickRate <= 0 || c.TickRate > sim.MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate must be within [1, %d], got %d", sim.MaxTickRate, c.TickRate))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("max_ticks must not be negative, got %d", c.MaxTicks))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	switch c.Scene.Source {
	case SceneSourceFile, SceneSourcePostgres:
	default:
		errs = append(errs, fmt.Errorf("scene.source must be %q or %q, got %q",
			SceneSourceFile, SceneSourcePostgres, c.Scene.Source))
	}
	if c.Behavior.PatrolChance < 0 || c.Behavior.PatrolChance > 100 {
		errs = append(errs, fmt.Errorf("behavior.patrol_chance must be within [0, 100], got %d", c.Behavior.PatrolChance))
	}
	return errors.Join(errs...)
}
