package data

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/npcfsm/internal/model"
)

// DefaultScene returns the built-in courtyard: four checkpoints around the
// centre, one bunker, two guards and a player circling the yard.
func DefaultScene() *Scene {
	return &Scene{
		Name: "courtyard",
		Walkable: Bounds{
			Min: mgl64.Vec3{-40, 0, -40},
			Max: mgl64.Vec3{40, 0, 40},
		},
		Objects: []model.SceneObject{
			model.NewSceneObject(1, "CP_01", "Checkpoint", mgl64.Vec3{-15, 0, 15}),
			model.NewSceneObject(2, "CP_02", "Checkpoint", mgl64.Vec3{15, 0, 15}),
			model.NewSceneObject(3, "CP_03", "Checkpoint", mgl64.Vec3{15, 0, -15}),
			model.NewSceneObject(4, "CP_04", "Checkpoint", mgl64.Vec3{-15, 0, -15}),
			model.NewSceneObject(10, "Bunker", "Safe", mgl64.Vec3{-35, 0, 0}),
		},
		Agents: []AgentSpec{
			{Name: "guard-north", Position: mgl64.Vec3{0, 0, 12}, Heading: 90},
			{Name: "guard-south", Position: mgl64.Vec3{0, 0, -12}, Heading: 270},
		},
		Target: TargetSpec{
			Speed: 3,
			Route: []mgl64.Vec3{
				{25, 0, 25},
				{0, 0, 5},
				{-25, 0, 25},
				{-25, 0, -25},
				{0, 0, -5},
				{25, 0, -25},
			},
		},
	}
}
