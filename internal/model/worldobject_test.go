package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewSceneObject(t *testing.T) {
	pos := mgl64.Vec3{1, 2, 3}
	obj := NewSceneObject(12345, "CP_01", "Checkpoint", pos)

	if obj.ObjectID() != 12345 {
		t.Errorf("ObjectID() = %d, want 12345", obj.ObjectID())
	}
	if obj.Name() != "CP_01" {
		t.Errorf("Name() = %q, want %q", obj.Name(), "CP_01")
	}
	if obj.Tag() != "Checkpoint" {
		t.Errorf("Tag() = %q, want %q", obj.Tag(), "Checkpoint")
	}
	if obj.Position() != pos {
		t.Errorf("Position() = %v, want %v", obj.Position(), pos)
	}
}

func TestSceneObject_DistanceTo(t *testing.T) {
	obj := NewSceneObject(1, "a", "Checkpoint", mgl64.Vec3{3, 0, 4})

	if got := obj.DistanceTo(mgl64.Vec3{}); got != 5 {
		t.Errorf("DistanceTo(origin) = %v, want 5", got)
	}
	if got := obj.DistanceTo(mgl64.Vec3{3, 0, 4}); got != 0 {
		t.Errorf("DistanceTo(self) = %v, want 0", got)
	}
}
