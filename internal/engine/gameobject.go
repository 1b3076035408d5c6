package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    atomic.AddUint64(&nextUID, 1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of the requested type, or the
// zero value if the object has none.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent returns the first component implementing the given
// non-Component interface (PhysicsTicker, PoseProvider, ...).
func FindComponent[T any](g *GameObject) (T, bool) {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
	for _, child := range g.Children {
		child.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

// PhysicsTick runs all fixed-step components on this object and its children.
func (g *GameObject) PhysicsTick(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if pt, ok := c.(PhysicsTicker); ok {
			pt.PhysicsTick(deltaTime)
		}
	}
	for _, child := range g.Children {
		child.PhysicsTick(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	child.Scene = g.Scene
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldPosition resolves the position through the parent chain, applying
// parent scale and yaw. Full Euler composition is not needed here: camera
// pivots and pitcher children only ever nest under yaw-rotated parents.
func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}
	rotated := RotateAroundY(scaled, g.Parent.WorldRotation().Y)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
