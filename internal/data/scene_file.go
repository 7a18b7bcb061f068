package data

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/npcfsm/internal/model"
)

// Формат YAML файла сцены.
type sceneFile struct {
	Name     string       `yaml:"name"`
	Walkable boundsFile   `yaml:"walkable"`
	Objects  []objectFile `yaml:"objects"`
	Agents   []agentFile  `yaml:"agents"`
	Target   targetFile   `yaml:"target"`
}

type boundsFile struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

type objectFile struct {
	ID       uint32    `yaml:"id"`
	Name     string    `yaml:"name"`
	Tag      string    `yaml:"tag"`
	Position []float64 `yaml:"position"`
}

type agentFile struct {
	Name     string    `yaml:"name"`
	Position []float64 `yaml:"position"`
	Heading  float64   `yaml:"heading"`
}

type targetFile struct {
	Speed float64     `yaml:"speed"`
	Route [][]float64 `yaml:"route"`
}

func vec3(v []float64, field string) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%w: %s: want 3 coordinates, got %d", ErrInvalidScene, field, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

func (f *sceneFile) build() (*Scene, error) {
	scene := &Scene{Name: f.Name}

	var err error
	if scene.Walkable.Min, err = vec3(f.Walkable.Min, "walkable.min"); err != nil {
		return nil, err
	}
	if scene.Walkable.Max, err = vec3(f.Walkable.Max, "walkable.max"); err != nil {
		return nil, err
	}
	if scene.Walkable.Min.X() > scene.Walkable.Max.X() || scene.Walkable.Min.Z() > scene.Walkable.Max.Z() {
		return nil, fmt.Errorf("%w: walkable.min %v exceeds walkable.max %v",
			ErrInvalidScene, scene.Walkable.Min, scene.Walkable.Max)
	}

	ids := make(map[uint32]string, len(f.Objects))
	for i, o := range f.Objects {
		field := fmt.Sprintf("objects[%d]", i)
		if o.ID == 0 {
			return nil, fmt.Errorf("%w: %s: id must be non-zero", ErrInvalidScene, field)
		}
		if prev, dup := ids[o.ID]; dup {
			return nil, fmt.Errorf("%w: %s: id %d already used by %q", ErrInvalidScene, field, o.ID, prev)
		}
		if o.Name == "" {
			return nil, fmt.Errorf("%w: %s: name is empty", ErrInvalidScene, field)
		}
		pos, err := vec3(o.Position, field+".position")
		if err != nil {
			return nil, err
		}
		ids[o.ID] = o.Name
		scene.Objects = append(scene.Objects, model.NewSceneObject(o.ID, o.Name, o.Tag, pos))
	}

	names := make(map[string]bool, len(f.Agents))
	for i, a := range f.Agents {
		field := fmt.Sprintf("agents[%d]", i)
		if a.Name == "" {
			return nil, fmt.Errorf("%w: %s: name is empty", ErrInvalidScene, field)
		}
		if names[a.Name] {
			return nil, fmt.Errorf("%w: %s: duplicate agent name %q", ErrInvalidScene, field, a.Name)
		}
		pos, err := vec3(a.Position, field+".position")
		if err != nil {
			return nil, err
		}
		names[a.Name] = true
		scene.Agents = append(scene.Agents, AgentSpec{Name: a.Name, Position: pos, Heading: a.Heading})
	}

	if f.Target.Speed < 0 {
		return nil, fmt.Errorf("%w: target.speed must not be negative", ErrInvalidScene)
	}
	if len(f.Target.Route) == 0 {
		return nil, fmt.Errorf("%w: target.route is empty", ErrInvalidScene)
	}
	scene.Target.Speed = f.Target.Speed
	for i, p := range f.Target.Route {
		pos, err := vec3(p, fmt.Sprintf("target.route[%d]", i))
		if err != nil {
			return nil, err
		}
		scene.Target.Route = append(scene.Target.Route, pos)
	}

	return scene, nil
}
