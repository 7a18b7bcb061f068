package ai

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/npcfsm/internal/model"
	"github.com/udisondev/npcfsm/internal/testutil"
	"github.com/udisondev/npcfsm/internal/waypoint"
)

// rig bundles an agent with the fakes behind it.
type rig struct {
	agent  *Agent
	body   *testutil.FakeBody
	nav    *testutil.FakeNav
	anim   *testutil.FakeAnimator
	audio  *testutil.FakeEmitter
	env    *testutil.FakeEnv
	target *testutil.FakeTarget
	roll   *testutil.FixedRoller
}

// newRig: агент в начале координат смотрит в +Z, цель далеко позади,
// бросок никогда не запускает патруль, маршрут пустой.
func newRig(t *testing.T) *rig {
	t.Helper()

	r := &rig{
		body:   testutil.NewFakeBody(mgl64.Vec3{}, 0),
		nav:    testutil.NewFakeNav(),
		anim:   testutil.NewFakeAnimator(),
		audio:  &testutil.FakeEmitter{},
		env:    &testutil.FakeEnv{},
		target: &testutil.FakeTarget{Pos: mgl64.Vec3{0, 0, -100}},
		roll:   &testutil.FixedRoller{Value: 99},
	}
	r.agent = &Agent{
		Name:     "npc-test",
		Body:     r.body,
		Nav:      r.nav,
		Anim:     r.anim,
		Audio:    r.audio,
		Env:      r.env,
		Target:   r.target,
		Rand:     r.roll,
		Behavior: DefaultBehavior(),
	}
	return r
}

// withCheckpoints installs an eager registry built from objs.
func (r *rig) withCheckpoints(objs ...model.SceneObject) *rig {
	r.agent.Waypoints = waypoint.NewRegistry(objs)
	return r
}

func (r *rig) withSafe(objs ...model.SceneObject) *rig {
	r.env.Objects = append(r.env.Objects, objs...)
	return r
}

func checkpoint(id uint32, name string, x, z float64) model.SceneObject {
	return model.NewSceneObject(id, name, "Checkpoint", mgl64.Vec3{x, 0, z})
}

func safeSpot(id uint32, name string, x, z float64) model.SceneObject {
	return model.NewSceneObject(id, name, "Safe", mgl64.Vec3{x, 0, z})
}
