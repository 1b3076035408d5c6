package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/config"
	"orbit3d/internal/physics"
)

// ObstacleCorrector computes the collision-free zoom distance for a
// camera rig. Two casts per tick: a primary sweep from the follow point
// out toward the desired lens anchor, and an inverse sweep from the
// anchor back toward the follow point. The inverse cast exists because the
// primary one cannot see geometry the anchor is already embedded in (for
// example after a hard cut into a corner); recovering from that by
// rotating away beats yanking the lens to zero distance.
type ObstacleCorrector struct {
	ProbeRadius float32
	Margin      float32

	MinZoom         float32
	MaxObstacleZoom float32

	Mask              physics.Layer
	EscapeDefaultSign float32

	rig   *CameraRig
	world *physics.World
}

func newObstacleCorrector(rig *CameraRig, world *physics.World, cfg config.CameraConfig) *ObstacleCorrector {
	return &ObstacleCorrector{
		ProbeRadius:       cfg.ProbeRadius,
		Margin:            cfg.ProbeMargin,
		MinZoom:           cfg.MinZoom,
		MaxObstacleZoom:   cfg.MaxObstacleZoom,
		Mask:              physics.Layer(cfg.ObstacleMask),
		EscapeDefaultSign: cfg.EscapeDefaultSign,
		rig:               rig,
		world:             world,
	}
}

// Correct resolves this tick's zoom distance. blocked reports whether the
// primary cast hit, which makes the rig snap instead of smooth.
//
// The nominal distance is the rig's current visible lens distance, not
// the committed zoom: the lens may still be smoothing somewhere the user
// no longer wants to be, and that is the span that can actually clip.
func (o *ObstacleCorrector) Correct(deltaTime float32) (blocked bool, distance float32) {
	pivot := o.rig.GetGameObject().Transform.Position
	back := rl.Vector3Scale(o.rig.lookDirection(), -1)
	nominal := o.rig.LensOffset()
	anchor := rl.Vector3Add(pivot, rl.Vector3Scale(back, nominal))

	if hit, ok := o.world.SphereCast(pivot, o.ProbeRadius, back, nominal, o.Mask); ok {
		corrected := nominal - hit.Distance
		if o.rig.ZoomValue() < corrected {
			// The user already sits tighter than the obstacle demands;
			// nothing is actually clipping, so leave the zoom alone.
			return false, o.rig.ZoomValue()
		}
		return true, rl.Clamp(corrected, o.MinZoom, o.MaxObstacleZoom)
	}

	inverseRange := nominal - (o.ProbeRadius + o.Margin)
	if _, ok := o.world.SphereCast(anchor, o.ProbeRadius, rl.Vector3Scale(back, -1), inverseRange, o.Mask); ok {
		// Boxed in behind the anchor: hold the distance where it is and
		// steer away, opposite the last direction the user was turning.
		o.escape(deltaTime)
		return false, rl.Clamp(nominal, o.MinZoom, o.MaxObstacleZoom)
	}

	return false, rl.Clamp(o.rig.ZoomValue(), o.MinZoom, o.MaxObstacleZoom)
}

func (o *ObstacleCorrector) escape(deltaTime float32) {
	sign := o.rig.lastInputSign
	if sign == 0 {
		sign = o.EscapeDefaultSign
	}
	o.rig.autoEscaping = true
	o.rig.RotateHorizontal(-sign, deltaTime)
	o.rig.autoEscaping = false
}
