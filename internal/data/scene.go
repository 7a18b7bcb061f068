// Package data loads scene descriptions: static tagged objects, NPC spawn
// points, the target's route and the walkable area.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/npcfsm/internal/model"
)

// ErrInvalidScene is wrapped by every scene validation error.
var ErrInvalidScene = errors.New("invalid scene")

// Bounds: прямоугольная область (XZ), по которой могут ходить агенты.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// AgentSpec: точка спавна NPC.
type AgentSpec struct {
	Name     string
	Position mgl64.Vec3
	Heading  float64 // degrees from +Z towards +X
}

// TargetSpec: маршрут игрока (по кругу).
type TargetSpec struct {
	Speed float64
	Route []mgl64.Vec3
}

// Scene is a validated scene description.
type Scene struct {
	Name     string
	Walkable Bounds
	Objects  []model.SceneObject
	Agents   []AgentSpec
	Target   TargetSpec
}

// LoadAll returns the scene's static objects. Lets a file scene serve as an
// object source next to the database repository.
func (s *Scene) LoadAll(ctx context.Context) ([]model.SceneObject, error) {
	return append([]model.SceneObject(nil), s.Objects...), nil
}

// LoadScene reads and validates a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}

	scene, err := ParseScene(raw)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", path, err)
	}

	slog.Info("loaded scene",
		"name", scene.Name,
		"objects", len(scene.Objects),
		"agents", len(scene.Agents),
		"route_points", len(scene.Target.Route))
	return scene, nil
}

// ParseScene decodes and validates a YAML scene.
func ParseScene(raw []byte) (*Scene, error) {
	var f sceneFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return f.build()
}
