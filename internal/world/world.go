// Package world assembles the playground scene shared by the demo and the
// headless soak runner: a floor, obstacle geometry around the spawn, a
// steep ramp, a water volume, the player and the camera rig.
package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/anim"
	"orbit3d/internal/components"
	"orbit3d/internal/config"
	"orbit3d/internal/engine"
	"orbit3d/internal/physics"
)

const FloorSize = 60.0

type World struct {
	Scene *engine.Scene
	Cast  *physics.World

	Player      *engine.GameObject
	CameraPivot *engine.GameObject

	Movement *components.MovementController
	Sensor   *components.GroundSensor
	Rig      *components.CameraRig
}

// New builds the playground. sink may be nil when no animation
// collaborator is attached.
func New(cfg *config.Config, sink anim.Sink) (*World, error) {
	w := &World{
		Scene: engine.NewScene("Playground"),
		Cast:  physics.NewWorld(),
	}

	w.addBox("Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: FloorSize, Y: 1, Z: FloorSize}, rl.Vector3{}, physics.LayerTerrain)

	// Obstacle course around the spawn: pillars to orbit behind, a corner
	// to wedge the camera into, a narrow gap.
	w.addBox("PillarNorth", rl.Vector3{X: 0, Y: 2, Z: -8}, rl.Vector3{X: 2, Y: 4, Z: 2}, rl.Vector3{}, physics.LayerObstacle)
	w.addBox("PillarEast", rl.Vector3{X: 9, Y: 2, Z: 0}, rl.Vector3{X: 2, Y: 4, Z: 2}, rl.Vector3{}, physics.LayerObstacle)
	w.addBox("CornerWallA", rl.Vector3{X: -12, Y: 3, Z: -2}, rl.Vector3{X: 1, Y: 6, Z: 16}, rl.Vector3{}, physics.LayerObstacle)
	w.addBox("CornerWallB", rl.Vector3{X: -6, Y: 3, Z: -10}, rl.Vector3{X: 13, Y: 6, Z: 1}, rl.Vector3{}, physics.LayerObstacle)
	w.addBox("GapWallA", rl.Vector3{X: 4, Y: 2, Z: 10}, rl.Vector3{X: 6, Y: 4, Z: 1}, rl.Vector3{}, physics.LayerObstacle)
	w.addBox("GapWallB", rl.Vector3{X: 12, Y: 2, Z: 10}, rl.Vector3{X: 6, Y: 4, Z: 1}, rl.Vector3{}, physics.LayerObstacle)

	// Ramp steeper than the walkable threshold.
	w.addBox("SteepRamp", rl.Vector3{X: -8, Y: 1.5, Z: 8}, rl.Vector3{X: 8, Y: 0.6, Z: 6}, rl.Vector3{Z: 55}, physics.LayerTerrain)

	// Water volume; excluded from ground and obstacle masks.
	w.addBox("Pond", rl.Vector3{X: 16, Y: -0.2, Z: -14}, rl.Vector3{X: 10, Y: 1.2, Z: 10}, rl.Vector3{}, physics.LayerWater)

	if err := w.createPlayer(cfg, sink); err != nil {
		return nil, err
	}
	if err := w.createCameraRig(cfg); err != nil {
		return nil, err
	}

	w.Scene.Start()
	return w, nil
}

func (w *World) addBox(name string, pos, size, rotation rl.Vector3, layer physics.Layer) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.Transform.Rotation = rotation
	box := physics.NewBoxCollider(size)
	box.Layer = layer
	obj.AddComponent(box)
	w.Scene.AddGameObject(obj)
	w.Cast.AddObject(obj)
	return obj
}

func (w *World) createPlayer(cfg *config.Config, sink anim.Sink) error {
	w.Player = engine.NewGameObject("Player")
	w.Player.Tags = []string{"player"}
	w.Player.Transform.Position = rl.Vector3{Y: 1}

	body := physics.NewSphereCollider(0.4)
	body.Layer = physics.LayerCharacter
	w.Player.AddComponent(body)

	sensor, err := components.NewGroundSensor(w.Cast, cfg.Ground)
	if err != nil {
		return err
	}
	movement, err := components.NewMovementController(sensor, sink, cfg.Movement)
	if err != nil {
		return err
	}
	w.Player.AddComponent(sensor)
	w.Player.AddComponent(movement)

	w.Sensor = sensor
	w.Movement = movement
	w.Scene.AddGameObject(w.Player)
	w.Cast.AddObject(w.Player)
	return nil
}

func (w *World) createCameraRig(cfg *config.Config) error {
	w.CameraPivot = engine.NewGameObject("CameraPivot")
	w.CameraPivot.Transform.Position = rl.Vector3Add(w.Player.Transform.Position, rl.Vector3{Y: 1.5})

	rig, err := components.NewCameraRig(w.Player, w.Cast, cfg.Camera)
	if err != nil {
		return err
	}
	w.CameraPivot.AddComponent(rig)

	w.Rig = rig
	w.Scene.AddGameObject(w.CameraPivot)
	return nil
}

// InWater reports whether the player is submerged past the waist. The
// probe drops from above the head, since a cast starting inside the
// volume would see nothing. The caller feeds this into the sensor's
// swimming flag each frame.
func (w *World) InWater() bool {
	pos := w.Player.Transform.Position
	origin := pos
	origin.Y += 1
	hit, ok := w.Cast.Raycast(origin, rl.Vector3{Y: -1}, 1.5, physics.LayerWater)
	return ok && hit.Distance <= 0.7
}
