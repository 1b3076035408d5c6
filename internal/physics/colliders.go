package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/engine"
)

// BoxCollider is an oriented box attached to a GameObject. Orientation
// follows the object's Euler rotation, so ramps and tilted walls produce
// correctly sloped contact normals.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	Layer  Layer
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:  size,
		Layer: LayerDefault,
	}
}

// Center returns the world-space center of the box.
func (b *BoxCollider) Center() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// WorldHalfSize returns the half-extents scaled by the object's world scale.
func (b *BoxCollider) WorldHalfSize() rl.Vector3 {
	g := b.GetGameObject()
	s := g.WorldScale()
	return rl.Vector3{
		X: absf(b.Size.X*s.X) / 2,
		Y: absf(b.Size.Y*s.Y) / 2,
		Z: absf(b.Size.Z*s.Z) / 2,
	}
}

// Axes returns the box's local X, Y, Z axes rotated into world space.
// Rotation order is X, Y, Z, the same convention the renderer uses.
func (b *BoxCollider) Axes() [3]rl.Vector3 {
	rot := b.GetGameObject().WorldRotation()
	rx := float64(rot.X) * math.Pi / 180
	ry := float64(rot.Y) * math.Pi / 180
	rz := float64(rot.Z) * math.Pi / 180
	m := rl.MatrixMultiply(rl.MatrixMultiply(
		rl.MatrixRotateX(float32(rx)),
		rl.MatrixRotateY(float32(ry))),
		rl.MatrixRotateZ(float32(rz)))
	return [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: m.M0, Y: m.M1, Z: m.M2}),
		rl.Vector3Normalize(rl.Vector3{X: m.M4, Y: m.M5, Z: m.M6}),
		rl.Vector3Normalize(rl.Vector3{X: m.M8, Y: m.M9, Z: m.M10}),
	}
}

// SphereCollider is a sphere attached to a GameObject.
type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
	Layer  Layer
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Layer:  LayerDefault,
	}
}

// Center returns the world-space center of the sphere.
func (s *SphereCollider) Center() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
