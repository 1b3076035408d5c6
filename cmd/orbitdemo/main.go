// Interactive playground: WASD to move, mouse to orbit, wheel to zoom,
// space to jump, F to freeze, TAB for the tuning panel.
package main

import (
	"math"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"orbit3d/internal/config"
	"orbit3d/internal/engine"
	"orbit3d/internal/input"
	"orbit3d/internal/physics"
	"orbit3d/internal/sim"
	"orbit3d/internal/world"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	w, err := world.New(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("build world")
	}
	sched, err := sim.NewScheduler(w.Scene, cfg.Sim, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build scheduler")
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "orbit3d playground")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)
	rl.DisableCursor()

	source := input.NewKeyboardMouse()
	showPanel := false
	frozen := false

	for !rl.WindowShouldClose() {
		deltaTime := rl.GetFrameTime()

		if rl.IsKeyPressed(rl.KeyTab) {
			showPanel = !showPanel
			if showPanel {
				rl.EnableCursor()
			} else {
				rl.DisableCursor()
			}
		}

		var f input.Frame
		if !showPanel {
			f = source.Sample()
		}
		applyInput(w, f, deltaTime)

		if rl.IsKeyPressed(rl.KeyF) {
			if frozen {
				w.Movement.Unfreeze()
			} else {
				w.Movement.Freeze()
			}
			frozen = !frozen
		}

		w.Sensor.SetSwimming(w.InWater())
		sched.Advance(deltaTime)

		draw(w, showPanel)
	}
}

func applyInput(w *world.World, f input.Frame, deltaTime float32) {
	yaw := float64(w.CameraPivot.Transform.Rotation.Y) * math.Pi / 180
	forward := rl.Vector2{X: float32(-math.Sin(yaw)), Y: float32(-math.Cos(yaw))}
	right := rl.Vector2{X: float32(math.Cos(yaw)), Y: float32(-math.Sin(yaw))}
	w.Movement.SetMoveInput(rl.Vector2{
		X: forward.X*f.Move.Y + right.X*f.Move.X,
		Y: forward.Y*f.Move.Y + right.Y*f.Move.X,
	})
	if f.JumpPressed {
		w.Movement.RequestJump()
	}
	if f.InteractDown {
		w.Movement.InteractDown.Invoke()
	}
	if f.InteractUp {
		w.Movement.InteractUp.Invoke()
	}

	w.Rig.RotateHorizontal(f.Look.X, deltaTime)
	w.Rig.RotateVertical(f.Look.Y, deltaTime)
	if f.ZoomDir != 0 {
		w.Rig.SetZoomValue(w.Rig.ZoomValue() + f.ZoomDir*0.5)
	}
}

func draw(w *world.World, showPanel bool) {
	eyeX, eyeY, eyeZ := w.Rig.EyePosition()
	lookX, lookY, lookZ := w.Rig.LookTarget()
	camera := rl.Camera3D{
		Position:   rl.Vector3{X: eyeX, Y: eyeY, Z: eyeZ},
		Target:     rl.Vector3{X: lookX, Y: lookY, Z: lookZ},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 34, 255))

	rl.BeginMode3D(camera)
	for _, obj := range w.Cast.Colliders {
		drawCollider(obj, w.Player)
	}
	rl.DrawGrid(30, 2)
	rl.EndMode3D()

	drawHUD(w, showPanel)
	rl.EndDrawing()
}

func drawCollider(obj *engine.GameObject, player *engine.GameObject) {
	if obj == player {
		pos := obj.Transform.Position
		rl.DrawSphere(pos, 0.4, rl.SkyBlue)
		tip := rl.Vector3Add(pos, rl.Vector3Scale(obj.Transform.Forward(), 0.8))
		rl.DrawLine3D(pos, tip, rl.White)
		return
	}

	box := engine.GetComponent[*physics.BoxCollider](obj)
	if box == nil {
		return
	}
	color := colorForLayer(box.Layer)

	rl.PushMatrix()
	rl.Translatef(obj.Transform.Position.X, obj.Transform.Position.Y, obj.Transform.Position.Z)
	rl.Rotatef(obj.Transform.Rotation.Z, 0, 0, 1)
	rl.Rotatef(obj.Transform.Rotation.Y, 0, 1, 0)
	rl.Rotatef(obj.Transform.Rotation.X, 1, 0, 0)
	rl.DrawCubeV(rl.Vector3{}, box.Size, color)
	rl.DrawCubeWiresV(rl.Vector3{}, box.Size, rl.Fade(rl.White, 0.3))
	rl.PopMatrix()
}

func colorForLayer(layer physics.Layer) rl.Color {
	switch layer {
	case physics.LayerTerrain:
		return rl.NewColor(90, 100, 90, 255)
	case physics.LayerWater:
		return rl.Fade(rl.Blue, 0.5)
	default:
		return rl.NewColor(140, 110, 80, 255)
	}
}

func drawHUD(w *world.World, showPanel bool) {
	rl.DrawText(w.Sensor.State().String(), 10, 10, 20, rl.RayWhite)
	if w.Rig.Corrected() {
		rl.DrawText("obstacle corrected", 10, 34, 20, rl.Orange)
	}
	if w.Movement.Frozen() {
		rl.DrawText("frozen", 10, 58, 20, rl.Red)
	}

	if !showPanel {
		return
	}

	panel := rl.NewRectangle(float32(rl.GetScreenWidth())-290, 10, 280, 240)
	rl.DrawRectangleRec(panel, rl.Fade(rl.Black, 0.7))

	row := func(i int) rl.Rectangle {
		return rl.NewRectangle(panel.X+90, panel.Y+14+float32(i)*34, panel.Width-110, 20)
	}
	w.Rig.RotationSpeed = gui.Slider(row(0), "rot speed", "", w.Rig.RotationSpeed, 30, 360)
	w.Rig.PositionLerp = gui.Slider(row(1), "pos lerp", "", w.Rig.PositionLerp, 1, 30)
	w.Rig.ZoomLerp = gui.Slider(row(2), "zoom lerp", "", w.Rig.ZoomLerp, 1, 30)
	w.Movement.Speed = gui.Slider(row(3), "speed", "", w.Movement.Speed, 1, 20)
	w.Movement.RotateLerp = gui.Slider(row(4), "face lerp", "", w.Movement.RotateLerp, 1, 30)
	w.Movement.MoveInAir = gui.CheckBox(rl.NewRectangle(panel.X+90, panel.Y+14+5*34, 20, 20), "air control", w.Movement.MoveInAir)
	w.Rig.PitchLimit = gui.CheckBox(rl.NewRectangle(panel.X+90, panel.Y+14+6*34, 20, 20), "pitch limit", w.Rig.PitchLimit)
}
