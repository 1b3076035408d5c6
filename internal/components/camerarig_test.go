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

func newRig(t *testing.T, w *physics.World, cfg config.CameraConfig) (*CameraRig, *engine.GameObject, *engine.GameObject) {
	t.Helper()
	target := engine.NewGameObject("Player")
	target.Transform.Position = rl.Vector3{Y: 1}

	rig, err := NewCameraRig(target, w, cfg)
	require.NoError(t, err)

	pivot := engine.NewGameObject("CameraPivot")
	pivot.Transform.Position = target.Transform.Position
	pivot.AddComponent(rig)
	pivot.Start()
	return rig, pivot, target
}

func TestNewCameraRigRequiresRefs(t *testing.T) {
	cfg := config.Default().Camera
	target := engine.NewGameObject("Player")

	_, err := NewCameraRig(nil, physics.NewWorld(), cfg)
	assert.Error(t, err)

	_, err = NewCameraRig(target, nil, cfg)
	assert.Error(t, err)
}

func TestZoomAlwaysWithinRange(t *testing.T) {
	rig, _, _ := newRig(t, physics.NewWorld(), config.Default().Camera)

	for _, v := range []float32{-10, 0, 0.5, 3, 8, 100} {
		rig.SetZoomValue(v)
		assert.GreaterOrEqual(t, rig.ZoomValue(), rig.MinZoom)
		assert.LessOrEqual(t, rig.ZoomValue(), rig.MaxZoom)
	}
}

func TestInitialZoomMidRange(t *testing.T) {
	rig, _, _ := newRig(t, physics.NewWorld(), config.Default().Camera)
	assert.InDelta(t, 4.5, rig.ZoomValue(), 1e-4)
	assert.InDelta(t, 4.5, rig.LensOffset(), 1e-4)
}

func TestPitchDeltaRejectedNotClamped(t *testing.T) {
	rig, _, _ := newRig(t, physics.NewWorld(), config.Default().Camera)

	// One adversarial step that would blow far past the limit.
	rig.RotateVertical(1, 1)
	assert.Equal(t, float32(0), rig.PitchTarget())

	// Many small steps creep up to the boundary but never cross it.
	for i := 0; i < 200; i++ {
		rig.RotateVertical(1, 0.01)
	}
	assert.Less(t, rig.PitchTarget(), rig.MaxPitch)
	assert.Greater(t, rig.PitchTarget(), rig.MaxPitch-2)

	for i := 0; i < 400; i++ {
		rig.RotateVertical(-1, 0.01)
	}
	assert.Greater(t, rig.PitchTarget(), rig.MinPitch)
	assert.Less(t, rig.PitchTarget(), rig.MinPitch+2)
}

func TestPitchUnlimitedWhenDisabled(t *testing.T) {
	cfg := config.Default().Camera
	cfg.PitchLimit = false
	rig, _, _ := newRig(t, physics.NewWorld(), cfg)

	rig.RotateVertical(1, 1)
	assert.InDelta(t, 120, rig.PitchTarget(), 1e-3)
}

func TestYawAccumulatesAndSmooths(t *testing.T) {
	rig, pivot, _ := newRig(t, physics.NewWorld(), config.Default().Camera)

	rig.RotateHorizontal(1, 0.5)
	assert.InDelta(t, 60, rig.YawTarget(), 1e-3)

	for i := 0; i < 300; i++ {
		pivot.Update(tick)
	}
	assert.InDelta(t, 60, pivot.Transform.Rotation.Y, 0.5)
}

func TestPositionFollowsTargetWithOffset(t *testing.T) {
	_, pivot, target := newRig(t, physics.NewWorld(), config.Default().Camera)

	target.Transform.Position = rl.Vector3{X: 5, Y: 1}
	for i := 0; i < 300; i++ {
		pivot.Update(tick)
	}

	assert.InDelta(t, 5, pivot.Transform.Position.X, 0.05)
	assert.InDelta(t, 1, pivot.Transform.Position.Y, 0.05)
}

func TestPoseProviderLensBehindPivot(t *testing.T) {
	rig, pivot, _ := newRig(t, physics.NewWorld(), config.Default().Camera)

	// Yaw 0 looks along -Z, so the lens hangs back along +Z.
	ex, ey, ez := rig.EyePosition()
	assert.InDelta(t, pivot.Transform.Position.X, ex, 1e-4)
	assert.InDelta(t, pivot.Transform.Position.Y, ey, 1e-4)
	assert.InDelta(t, pivot.Transform.Position.Z+rig.LensOffset(), ez, 1e-4)

	tx, ty, tz := rig.LookTarget()
	assert.Equal(t, pivot.Transform.Position, rl.Vector3{X: tx, Y: ty, Z: tz})
}

func TestLensSmoothsTowardCommittedZoom(t *testing.T) {
	rig, pivot, _ := newRig(t, physics.NewWorld(), config.Default().Camera)

	rig.SetZoomValue(2)
	pivot.Update(tick)

	assert.False(t, rig.Corrected())
	assert.Less(t, rig.LensOffset(), float32(4.5), "lens moves toward the new zoom")
	assert.Greater(t, rig.LensOffset(), float32(2), "but does not snap")
}
