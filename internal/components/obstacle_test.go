package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbit3d/internal/config"
	"orbit3d/internal/engine"
	"orbit3d/internal/physics"
)

func obstacleCfg() config.CameraConfig {
	cfg := config.Default().Camera
	cfg.MaxZoom = 12
	cfg.MaxObstacleZoom = 15
	return cfg
}

func obstacleBox(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	c := physics.NewBoxCollider(size)
	c.Layer = physics.LayerObstacle
	g.AddComponent(c)
	return g
}

// wallWorld places a wall behind the pivot: looking along -Z from
// (0, 1, 0), the lens hangs back along +Z into a face at z = 4 after
// probe inflation.
func wallWorld() *physics.World {
	w := physics.NewWorld()
	w.AddObject(obstacleBox("Wall", rl.Vector3{Y: 1, Z: 6.3}, rl.Vector3{X: 4, Y: 4, Z: 4}))
	return w
}

func TestPrimaryHitSnapsLensIn(t *testing.T) {
	rig, pivot, _ := newRig(t, wallWorld(), obstacleCfg())
	rig.SetZoomValue(10)
	rig.lensOffset = 10

	pivot.Update(tick)

	// Nominal 10, hit at 4: corrected to 6, applied without smoothing.
	assert.True(t, rig.Corrected())
	assert.InDelta(t, 6, rig.LensOffset(), 1e-3)
}

func TestZoomDecreaseRejectedWhileCorrected(t *testing.T) {
	rig, pivot, _ := newRig(t, wallWorld(), obstacleCfg())
	rig.SetZoomValue(10)
	rig.lensOffset = 10

	pivot.Update(tick)
	require.True(t, rig.Corrected())

	rig.SetZoomValue(8)
	assert.InDelta(t, 10, rig.ZoomValue(), 1e-4, "zoom-in fights the correction and is dropped")

	rig.SetZoomValue(11)
	assert.InDelta(t, 11, rig.ZoomValue(), 1e-4, "zoom-out is still allowed")
}

func TestUserTighterZoomPreserved(t *testing.T) {
	rig, pivot, _ := newRig(t, wallWorld(), obstacleCfg())
	rig.SetZoomValue(3)
	rig.lensOffset = 10 // lens still smoothing in from further out

	pivot.Update(tick)

	// The obstacle would demand 6, but the user already sits at 3.
	assert.False(t, rig.Corrected())
	assert.Less(t, rig.LensOffset(), float32(10), "lens keeps smoothing toward the user's zoom")
	assert.InDelta(t, 3, rig.ZoomValue(), 1e-4)
}

func TestInverseHitTurnsAwayFromLastInput(t *testing.T) {
	w := physics.NewWorld()
	// The pivot sits inside this block, so the primary cast sees nothing
	// and only the inverse cast notices the rig is boxed in.
	w.AddObject(obstacleBox("Cavity", rl.Vector3{Y: 1, Z: 0.5}, rl.Vector3{X: 2, Y: 2, Z: 2}))
	rig, pivot, _ := newRig(t, w, obstacleCfg())
	rig.lensOffset = 6
	rig.SetZoomValue(6)

	rig.RotateHorizontal(1, 0.1)
	yawBefore := rig.YawTarget()

	pivot.Update(tick)

	assert.False(t, rig.Corrected())
	assert.InDelta(t, yawBefore-rig.RotationSpeed*tick, rig.YawTarget(), 1e-3,
		"escape turns opposite the last steering direction")

	// The escape turn itself must not overwrite the remembered sign.
	pivot.Update(tick)
	assert.InDelta(t, yawBefore-2*rig.RotationSpeed*tick, rig.YawTarget(), 1e-2)
}

func TestInverseHitUsesDefaultSignWithoutInput(t *testing.T) {
	w := physics.NewWorld()
	w.AddObject(obstacleBox("Cavity", rl.Vector3{Y: 1, Z: 0.5}, rl.Vector3{X: 2, Y: 2, Z: 2}))
	cfg := obstacleCfg()
	cfg.EscapeDefaultSign = 1
	rig, pivot, _ := newRig(t, w, cfg)
	rig.lensOffset = 6
	rig.SetZoomValue(6)

	pivot.Update(tick)

	assert.InDelta(t, -rig.RotationSpeed*tick, rig.YawTarget(), 1e-3)
}

func TestBothCastsClearUseCommittedZoom(t *testing.T) {
	rig, pivot, _ := newRig(t, physics.NewWorld(), obstacleCfg())
	rig.SetZoomValue(4)
	before := rig.LensOffset()

	pivot.Update(tick)

	assert.False(t, rig.Corrected())
	assert.Less(t, rig.LensOffset(), before)
	assert.Greater(t, rig.LensOffset(), float32(4))
}
