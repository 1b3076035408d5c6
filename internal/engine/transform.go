package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Forward returns the unit facing direction derived from yaw and pitch.
// Yaw 0 faces -Z, matching the renderer's convention.
func (t Transform) Forward() rl.Vector3 {
	yaw := float64(t.Rotation.Y) * math.Pi / 180
	pitch := float64(t.Rotation.X) * math.Pi / 180
	return rl.Vector3{
		X: float32(-math.Sin(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(-math.Cos(yaw) * math.Cos(pitch)),
	}
}

// Quaternion converts the Euler rotation to a quaternion (X, Y, Z order).
func (t Transform) Quaternion() rl.Quaternion {
	return rl.QuaternionFromEuler(
		t.Rotation.X*rl.Deg2rad,
		t.Rotation.Y*rl.Deg2rad,
		t.Rotation.Z*rl.Deg2rad,
	)
}

// RotateAroundY rotates v around the world Y axis by degrees.
func RotateAroundY(v rl.Vector3, degrees float32) rl.Vector3 {
	rad := float64(degrees) * math.Pi / 180
	sin, cos := float32(math.Sin(rad)), float32(math.Cos(rad))
	return rl.Vector3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}
