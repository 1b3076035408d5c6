package input

import rl "github.com/gen2brain/raylib-go/raylib"

// KeyboardMouse samples raylib's keyboard and mouse into a Frame. Used by
// the demo binary; headless drivers supply their own Source.
type KeyboardMouse struct {
	LookSensitivity float32
}

func NewKeyboardMouse() *KeyboardMouse {
	return &KeyboardMouse{LookSensitivity: 0.25}
}

func (k *KeyboardMouse) Sample() Frame {
	var f Frame

	if rl.IsKeyDown(rl.KeyW) {
		f.Move.Y += 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		f.Move.Y -= 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		f.Move.X -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		f.Move.X += 1
	}

	mouse := rl.GetMouseDelta()
	f.Look.X = mouse.X * k.LookSensitivity
	f.Look.Y = -mouse.Y * k.LookSensitivity

	f.JumpPressed = rl.IsKeyPressed(rl.KeySpace)
	f.InteractDown = rl.IsKeyPressed(rl.KeyE)
	f.InteractUp = rl.IsKeyReleased(rl.KeyE)

	if wheel := rl.GetMouseWheelMove(); wheel > 0 {
		f.ZoomDir = -1
	} else if wheel < 0 {
		f.ZoomDir = 1
	}

	return f
}
