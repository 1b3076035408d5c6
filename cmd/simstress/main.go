// Headless soak runner: drives the playground with scripted adversarial
// input for a stretch of simulated time and checks the rig/controller
// invariants every frame.
package main

import (
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"orbit3d/internal/config"
	"orbit3d/internal/input"
	"orbit3d/internal/sim"
	"orbit3d/internal/world"
)

const (
	simSeconds = 120
	frameRate  = 60
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

	log.Info().
		Int("seconds", simSeconds).
		Int("frame_rate", frameRate).
		Int("physics_hz", cfg.Sim.PhysicsHz).
		Msg("soak start")

	frameDelta := float32(1.0 / frameRate)
	violations := 0
	corrections := 0
	interacts := 0
	w.Movement.InteractDown.AddListener(func() { interacts++ })

	for frame := 0; frame < simSeconds*frameRate; frame++ {
		t := float32(frame) * frameDelta
		f := scriptedInput(t)

		w.Sensor.SetSwimming(w.InWater())

		yaw := float64(w.CameraPivot.Transform.Rotation.Y) * math.Pi / 180
		forward := rl.Vector2{X: float32(-math.Sin(yaw)), Y: float32(-math.Cos(yaw))}
		right := rl.Vector2{X: float32(math.Cos(yaw)), Y: float32(-math.Sin(yaw))}
		move := rl.Vector2{
			X: forward.X*f.Move.Y + right.X*f.Move.X,
			Y: forward.Y*f.Move.Y + right.Y*f.Move.X,
		}
		w.Movement.SetMoveInput(move)
		if f.JumpPressed {
			w.Movement.RequestJump()
		}
		if f.InteractDown {
			w.Movement.InteractDown.Invoke()
		}
		if f.InteractUp {
			w.Movement.InteractUp.Invoke()
		}

		w.Rig.RotateHorizontal(f.Look.X, frameDelta)
		w.Rig.RotateVertical(f.Look.Y, frameDelta)
		if f.ZoomDir != 0 {
			w.Rig.SetZoomValue(w.Rig.ZoomValue() + f.ZoomDir*2*frameDelta)
		}

		// Hard cut back to spawn when the tour wanders off the floor.
		// The snap also exercises the rig's boxed-in recovery path.
		pos := w.Player.Transform.Position
		if math.Abs(float64(pos.X)) > 25 || math.Abs(float64(pos.Z)) > 25 {
			w.Player.Transform.Position = rl.Vector3{Y: 1}
			w.Movement.Velocity = rl.Vector3{}
			log.Debug().Float32("t", t).Msg("teleport to spawn")
		}

		sched.Advance(frameDelta)

		if w.Rig.Corrected() {
			corrections++
		}
		violations += checkInvariants(log, cfg, w, t)
	}

	log.Info().
		Int("violations", violations).
		Int("corrected_frames", corrections).
		Int("interacts", interacts).
		Str("final_state", w.Sensor.State().String()).
		Msg("soak done")

	if violations > 0 {
		os.Exit(1)
	}
}

// scriptedInput generates an adversarial tour: wandering movement that
// charges walls and the ramp, constant camera steering, periodic jumps
// and an oscillating zoom.
func scriptedInput(t float32) input.Frame {
	var f input.Frame

	// Heading sweeps the full circle over ~20s so the player visits the
	// corner, the gap and the ramp.
	heading := float64(t) * 0.3
	f.Move.X = float32(math.Cos(heading))
	f.Move.Y = float32(math.Sin(heading))

	// Steer hard one way, then the other.
	f.Look.X = float32(math.Sin(float64(t) * 0.7))
	f.Look.Y = float32(math.Sin(float64(t)*0.4)) * 0.5

	// Occasionally slam the pitch to test limit rejection.
	if int(t)%13 == 0 {
		f.Look.Y = 50
	}

	frame := int(t * frameRate)
	if frame%(4*frameRate) == 0 {
		f.JumpPressed = true
	}

	// Tap interact once in a while so the event fan-out gets traffic.
	if frame%(7*frameRate) == 0 {
		f.InteractDown = true
	}
	if frame%(7*frameRate) == frameRate/2 {
		f.InteractUp = true
	}

	switch int(t) % 10 {
	case 0, 1, 2:
		f.ZoomDir = 1
	case 5, 6, 7:
		f.ZoomDir = -1
	}

	return f
}

func checkInvariants(log zerolog.Logger, cfg *config.Config, w *world.World, t float32) int {
	bad := 0

	zoom := w.Rig.ZoomValue()
	if zoom < cfg.Camera.MinZoom || zoom > cfg.Camera.MaxZoom {
		log.Error().Float32("t", t).Float32("zoom", zoom).Msg("zoom out of range")
		bad++
	}

	lens := w.Rig.LensOffset()
	if lens < cfg.Camera.MinZoom-0.001 || lens > cfg.Camera.MaxObstacleZoom+0.001 {
		log.Error().Float32("t", t).Float32("lens", lens).Msg("lens offset out of range")
		bad++
	}

	if cfg.Camera.PitchLimit {
		pitch := w.Rig.PitchTarget()
		if pitch < cfg.Camera.MinPitch || pitch > cfg.Camera.MaxPitch {
			log.Error().Float32("t", t).Float32("pitch", pitch).Msg("pitch out of range")
			bad++
		}
	}

	pos := w.Player.Transform.Position
	if float32(math.Abs(float64(pos.X))) > world.FloorSize || float32(math.Abs(float64(pos.Z))) > world.FloorSize || pos.Y < -10 {
		log.Error().Float32("t", t).
			Float32("x", pos.X).Float32("y", pos.Y).Float32("z", pos.Z).
			Msg("player escaped the playground")
		bad++
	}

	return bad
}
