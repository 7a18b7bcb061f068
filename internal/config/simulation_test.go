package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/npcfsm/internal/ai"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "npcsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSimulation_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadSimulation(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulation(), cfg)
}

func TestLoadSimulation_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
tick_rate: 60
max_ticks: 900
scene:
  path: scenes/crossroads.yaml
behavior:
  patrol_speed: 3.5
  perception:
    vision_distance: 15
`)

	cfg, err := LoadSimulation(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, int64(900), cfg.MaxTicks)
	assert.Equal(t, 4, cfg.Workers, "untouched keys keep defaults")
	assert.Equal(t, SceneSourceFile, cfg.Scene.Source)
	assert.Equal(t, "scenes/crossroads.yaml", cfg.Scene.Path)

	def := ai.DefaultBehavior()
	assert.Equal(t, 3.5, cfg.Behavior.PatrolSpeed)
	assert.Equal(t, def.PursueSpeed, cfg.Behavior.PursueSpeed)
	assert.Equal(t, 15.0, cfg.Behavior.Perception.VisionDistance)
	assert.Equal(t, def.Perception.ShootDistance, cfg.Behavior.Perception.ShootDistance)
	assert.Equal(t, def.Animations, cfg.Behavior.Animations)
}

func TestLoadSimulation_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "tick_rate: [1"},
		{"zero tick rate", "tick_rate: 0"},
		{"negative workers", "workers: -1"},
		{"negative max ticks", "max_ticks: -5"},
		{"zero sample rate", "audio: {sample_rate: 0}"},
		{"unknown scene source", "scene: {source: s3}"},
		{"patrol chance over 100", "behavior: {patrol_chance: 101}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSimulation(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultSimulation()
	cfg.TickRate = 0
	cfg.Workers = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_rate")
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_TickRateBounds(t *testing.T) {
	tests := []struct {
		rate    int
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{1000, false},
		{1001, true},
		{2_000_000_000, true},
	}
	for _, tt := range tests {
		cfg := DefaultSimulation()
		cfg.TickRate = tt.rate
		err := cfg.Validate()
		if tt.wantErr {
			assert.ErrorContains(t, err, "tick_rate", "rate %d", tt.rate)
		} else {
			assert.NoError(t, err, "rate %d", tt.rate)
		}
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 6543, User: "u", Password: "p", DBName: "scenes", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:6543/scenes?sslmode=require", d.DSN())
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestLoadSimulation_ShippedConfig(t *testing.T) {
	cfg, err := LoadSimulation(filepath.Join("..", "..", "config", "npcsim.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ai.DefaultBehavior(), cfg.Behavior)
	assert.Equal(t, DefaultDatabase(), cfg.Database)
	assert.Equal(t, "scenes/courtyard.yaml", cfg.Scene.Path)
}
