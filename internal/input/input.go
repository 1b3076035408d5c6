// Package input defines the frame input contract. The core consumes one
// Frame per frame tick and never polls devices itself.
package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Frame is one frame's worth of already-normalized input. It is read-only
// to the simulation and fully consumed each tick.
type Frame struct {
	Move rl.Vector2 // desired movement, each axis in [-1, 1]
	Look rl.Vector2 // look delta, X = yaw, Y = pitch

	JumpPressed  bool
	InteractDown bool
	InteractUp   bool
	ZoomDir      float32 // -1 zoom in, +1 zoom out, 0 none
}

// Source produces one Frame per frame tick.
type Source interface {
	Sample() Frame
}

// Nop is a Source that reports no input.
type Nop struct{}

func (Nop) Sample() Frame { return Frame{} }
