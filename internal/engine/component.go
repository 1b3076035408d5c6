package engine

// Component is the unit of per-object behavior. Start runs once when the
// owning GameObject starts; Update runs on every frame tick.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// PhysicsTicker is implemented by components that must run on the fixed
// simulation step rather than the variable frame tick. The scheduler runs
// all PhysicsTick calls for a frame before any Update call, so frame-tick
// components always observe this frame's simulated positions.
type PhysicsTicker interface {
	PhysicsTick(deltaTime float32)
}

// PoseProvider is implemented by components that control a camera pose.
// Renderers read the eye position and look target from it.
type PoseProvider interface {
	EyePosition() (x, y, z float32)
	LookTarget() (x, y, z float32)
}

// BaseComponent provides the default Component wiring. Embed it and
// override the methods you need.
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
