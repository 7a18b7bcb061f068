package testutil

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/udisondev/npcfsm/internal/model"
)

// FakeBody: in-memory Body для unit тестов FSM.
type FakeBody struct {
	Pose      model.Pose
	Rotations int // количество вызовов SetRotation
}

// NewFakeBody создаёт тело в pos, повёрнутое на yaw градусов от +Z к +X.
func NewFakeBody(pos mgl64.Vec3, yaw float64) *FakeBody {
	return &FakeBody{Pose: model.NewPose(pos, yaw)}
}

func (b *FakeBody) Position() mgl64.Vec3     { return b.Pose.Position }
func (b *FakeBody) Forward() mgl64.Vec3      { return b.Pose.Forward() }
func (b *FakeBody) Rotation() mgl64.Quat     { return b.Pose.Rotation }
func (b *FakeBody) SetPosition(p mgl64.Vec3) { b.Pose.Position = p }
func (b *FakeBody) SetRotation(q mgl64.Quat) {
	b.Pose.Rotation = q
	b.Rotations++
}

// FakeNav записывает все команды навигации. Remaining и ValidPath
// задаются тестом напрямую.
type FakeNav struct {
	Speed     float64
	Paused    bool
	Goals     []mgl64.Vec3
	Remaining float64
	ValidPath bool

	SpeedCalls int
	PauseCalls int
}

// NewFakeNav возвращает навигатор без цели, с валидным путём.
func NewFakeNav() *FakeNav {
	return &FakeNav{Paused: true, ValidPath: true}
}

func (n *FakeNav) SetSpeed(speed float64) {
	n.Speed = speed
	n.SpeedCalls++
}

func (n *FakeNav) SetPaused(paused bool) {
	n.Paused = paused
	n.PauseCalls++
}

func (n *FakeNav) SetGoal(goal mgl64.Vec3) {
	n.Goals = append(n.Goals, goal)
}

func (n *FakeNav) RemainingDistance() float64 { return n.Remaining }
func (n *FakeNav) HasValidPath() bool         { return n.ValidPath }

// Goal возвращает последнюю цель и false, если целей не было.
func (n *FakeNav) Goal() (mgl64.Vec3, bool) {
	if len(n.Goals) == 0 {
		return mgl64.Vec3{}, false
	}
	return n.Goals[len(n.Goals)-1], true
}

// FakeAnimator хранит активные триггеры и журнал команд ("+name" / "-name").
type FakeAnimator struct {
	Active map[string]bool
	Log    []string
}

func NewFakeAnimator() *FakeAnimator {
	return &FakeAnimator{Active: make(map[string]bool)}
}

func (a *FakeAnimator) SetTrigger(name string) {
	a.Active[name] = true
	a.Log = append(a.Log, "+"+name)
}

func (a *FakeAnimator) ClearTrigger(name string) {
	delete(a.Active, name)
	a.Log = append(a.Log, "-"+name)
}

// FakeEmitter считает вызовы Play/Stop.
type FakeEmitter struct {
	mu      sync.Mutex
	plays   int
	stops   int
	playing bool
}

func (e *FakeEmitter) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.plays++
	e.playing = true
}

func (e *FakeEmitter) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stops++
	e.playing = false
}

func (e *FakeEmitter) Plays() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.plays
}

func (e *FakeEmitter) Stops() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stops
}

func (e *FakeEmitter) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// FakeEnv: сцена из фиксированного списка объектов.
type FakeEnv struct {
	mu      sync.Mutex
	Objects []model.SceneObject
	Queries []string
}

func (e *FakeEnv) FindByTag(tag string) []model.SceneObject {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Queries = append(e.Queries, tag)

	var out []model.SceneObject
	for _, obj := range e.Objects {
		if obj.Tag() == tag {
			out = append(out, obj)
		}
	}
	return out
}

// FakeTarget: неподвижная (или двигаемая тестом) цель.
type FakeTarget struct {
	Pos mgl64.Vec3
}

func (t *FakeTarget) Position() mgl64.Vec3 { return t.Pos }

// FixedRoller всегда возвращает Value.
type FixedRoller struct {
	Value int
	Calls int
}

func (r *FixedRoller) IntN(n int) int {
	r.Calls++
	return r.Value
}
