package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbit3d/internal/components"
	"orbit3d/internal/config"
)

func TestNewWiresSceneAndControllers(t *testing.T) {
	w, err := New(config.Default(), nil)
	require.NoError(t, err)

	assert.NotNil(t, w.Scene.FindByName("Floor"))
	assert.NotNil(t, w.Scene.FindByName("SteepRamp"))
	require.NotNil(t, w.Player)
	require.NotNil(t, w.Movement)
	require.NotNil(t, w.Rig)
	assert.True(t, w.Player.HasTag("player"))
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	w, err := New(config.Default(), nil)
	require.NoError(t, err)

	step := float32(1.0 / 60.0)
	for i := 0; i < 240; i++ {
		w.Scene.PhysicsTick(step)
	}

	assert.Equal(t, components.OnGround, w.Sensor.State())
	assert.InDelta(t, 0, w.Player.Transform.Position.Y, 0.05)
}

func TestInWater(t *testing.T) {
	w, err := New(config.Default(), nil)
	require.NoError(t, err)

	assert.False(t, w.InWater(), "spawn is dry")

	w.Player.Transform.Position = rl.Vector3{X: 16, Y: 0, Z: -14}
	assert.True(t, w.InWater(), "waist-deep in the pond")

	w.Player.Transform.Position = rl.Vector3{X: 16, Y: 2, Z: -14}
	assert.False(t, w.InWater(), "hovering above the surface")
}
