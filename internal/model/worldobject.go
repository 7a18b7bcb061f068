package model

import "github.com/go-gl/mathgl/mgl64"

// SceneObject: статический объект сцены (checkpoint, safe zone и т.д.).
// Value type, immutable после создания: хост находит его по tag,
// FSM только читает позицию.
type SceneObject struct {
	objectID uint32
	name     string
	tag      string
	position mgl64.Vec3
}

// NewSceneObject создаёт объект сцены.
func NewSceneObject(objectID uint32, name, tag string, position mgl64.Vec3) SceneObject {
	return SceneObject{
		objectID: objectID,
		name:     name,
		tag:      tag,
		position: position,
	}
}

// ObjectID возвращает уникальный ID объекта.
func (o SceneObject) ObjectID() uint32 {
	return o.objectID
}

// Name возвращает имя объекта. Waypoint registry сортирует по нему.
func (o SceneObject) Name() string {
	return o.name
}

// Tag возвращает tag, по которому объект находится в сцене.
func (o SceneObject) Tag() string {
	return o.tag
}

// Position возвращает мировые координаты объекта.
func (o SceneObject) Position() mgl64.Vec3 {
	return o.position
}

// DistanceTo возвращает евклидово расстояние от объекта до точки.
func (o SceneObject) DistanceTo(p mgl64.Vec3) float64 {
	return o.position.Sub(p).Len()
}
