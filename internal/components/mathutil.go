package components

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrapAngle maps degrees into (-180, 180].
func wrapAngle(deg float32) float32 {
	wrapped := float32(math.Mod(float64(deg)+180, 360))
	if wrapped < 0 {
		wrapped += 360
	}
	return wrapped - 180
}

// lerpAngle interpolates between angles in degrees along the shortest arc.
func lerpAngle(from, to, t float32) float32 {
	return from + wrapAngle(to-from)*clamp01(t)
}

// yawFromDirection returns the yaw in degrees that faces the given
// horizontal direction (yaw 0 faces -Z).
func yawFromDirection(dir rl.Vector3) float32 {
	return float32(math.Atan2(float64(-dir.X), float64(-dir.Z))) * rl.Rad2deg
}

func signf(v float32) float32 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
