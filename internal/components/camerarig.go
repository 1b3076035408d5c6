package components

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/config"
	"orbit3d/internal/engine"
	"orbit3d/internal/physics"
)

// CameraRig orbits a follow target: the tracked subject's position plus a
// fixed offset captured at start. Position, yaw and pitch each smooth
// toward their accumulated targets at independent rates; the visible lens
// distance smooths toward the obstacle-corrected zoom, snapping on ticks
// where a correction actually pulled the lens in.
//
// The rig's own GameObject holds yaw; pitch lives on a "pitcher" child so
// the two axes interpolate independently.
type CameraRig struct {
	engine.BaseComponent

	RotationSpeed float32
	PositionLerp  float32
	RotationLerp  float32
	ZoomLerp      float32

	MinZoom float32
	MaxZoom float32

	PitchLimit bool
	MinPitch   float32
	MaxPitch   float32

	target    *engine.GameObject
	pitcher   *engine.GameObject
	corrector *ObstacleCorrector

	followOffset rl.Vector3
	yawTarget    float32
	pitchTarget  float32

	zoom       float32 // committed zoom distance (user intent)
	lensOffset float32 // smoothed visible distance

	correctedThisTick bool
	lastInputSign     float32
	autoEscaping      bool
}

// NewCameraRig wires the rig to the subject it tracks and the cast world
// used for obstacle correction. Both references are required.
func NewCameraRig(target *engine.GameObject, world *physics.World, cfg config.CameraConfig) (*CameraRig, error) {
	if target == nil {
		return nil, errors.New("camera rig: follow target is required")
	}
	if world == nil {
		return nil, errors.New("camera rig: cast world is required")
	}
	rig := &CameraRig{
		RotationSpeed: cfg.RotationSpeed,
		PositionLerp:  cfg.PositionLerp,
		RotationLerp:  cfg.RotationLerp,
		ZoomLerp:      cfg.ZoomLerp,
		MinZoom:       cfg.MinZoom,
		MaxZoom:       cfg.MaxZoom,
		PitchLimit:    cfg.PitchLimit,
		MinPitch:      cfg.MinPitch,
		MaxPitch:      cfg.MaxPitch,
		target:        target,
		lastInputSign: cfg.EscapeDefaultSign,
		zoom:          rl.Clamp((cfg.MinZoom+cfg.MaxZoom)/2, cfg.MinZoom, cfg.MaxZoom),
	}
	rig.lensOffset = rig.zoom
	rig.corrector = newObstacleCorrector(rig, world, cfg)
	return rig, nil
}

// Start captures the follow offset from the rig's initial placement
// relative to the subject and attaches the pitcher child.
func (r *CameraRig) Start() {
	g := r.GetGameObject()
	r.followOffset = rl.Vector3Subtract(g.Transform.Position, r.target.WorldPosition())
	r.yawTarget = g.Transform.Rotation.Y

	if r.pitcher == nil {
		r.pitcher = engine.NewGameObject(g.Name + ".Pitcher")
		g.AddChild(r.pitcher)
	}
	r.pitchTarget = r.pitcher.Transform.Rotation.X
}

// RotateHorizontal accumulates yaw from a signed input. The last nonzero
// input sign steers the obstacle auto-escape direction, but is not
// recorded while the escape itself is turning the rig.
func (r *CameraRig) RotateHorizontal(input, deltaTime float32) {
	if input == 0 {
		return
	}
	r.yawTarget += input * r.RotationSpeed * deltaTime
	if !r.autoEscaping {
		r.lastInputSign = signf(input)
	}
}

// RotateVertical accumulates pitch from a signed input. With pitch
// limiting on, a delta whose result would leave (MinPitch, MaxPitch) is
// rejected whole rather than clamped to the boundary.
func (r *CameraRig) RotateVertical(input, deltaTime float32) {
	if input == 0 {
		return
	}
	candidate := r.pitchTarget + input*r.RotationSpeed*deltaTime
	if r.PitchLimit && (candidate <= r.MinPitch || candidate >= r.MaxPitch) {
		return
	}
	r.pitchTarget = candidate
}

// ZoomValue returns the committed zoom distance.
func (r *CameraRig) ZoomValue() float32 {
	return r.zoom
}

// SetZoomValue commits a new zoom distance, clamped into [MinZoom,
// MaxZoom]. On a tick where the lens was obstacle-corrected, a request to
// pull the zoom tighter is dropped so it cannot fight the correction.
func (r *CameraRig) SetZoomValue(v float32) {
	v = rl.Clamp(v, r.MinZoom, r.MaxZoom)
	if r.correctedThisTick && v < r.zoom {
		return
	}
	r.zoom = v
}

// YawTarget returns the accumulated yaw target in degrees.
func (r *CameraRig) YawTarget() float32 {
	return r.yawTarget
}

// PitchTarget returns the accumulated pitch target in degrees.
func (r *CameraRig) PitchTarget() float32 {
	return r.pitchTarget
}

// Corrected reports whether the lens was obstacle-corrected this tick.
func (r *CameraRig) Corrected() bool {
	return r.correctedThisTick
}

// LensOffset is the smoothed visible camera-to-pivot distance.
func (r *CameraRig) LensOffset() float32 {
	return r.lensOffset
}

// FollowTarget is the point the rig tracks this tick.
func (r *CameraRig) FollowTarget() rl.Vector3 {
	return rl.Vector3Add(r.target.WorldPosition(), r.followOffset)
}

// lookDirection is the rig's forward with both yaw and pitch applied.
func (r *CameraRig) lookDirection() rl.Vector3 {
	t := engine.Transform{}
	t.Rotation.Y = r.GetGameObject().Transform.Rotation.Y
	if r.pitcher != nil {
		t.Rotation.X = r.pitcher.Transform.Rotation.X
	}
	return t.Forward()
}

// LensPosition is the world-space position of the camera lens.
func (r *CameraRig) LensPosition() rl.Vector3 {
	g := r.GetGameObject()
	back := rl.Vector3Scale(r.lookDirection(), -1)
	return rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(back, r.lensOffset))
}

// EyePosition implements engine.PoseProvider.
func (r *CameraRig) EyePosition() (x, y, z float32) {
	p := r.LensPosition()
	return p.X, p.Y, p.Z
}

// LookTarget implements engine.PoseProvider.
func (r *CameraRig) LookTarget() (x, y, z float32) {
	p := r.GetGameObject().Transform.Position
	return p.X, p.Y, p.Z
}

func (r *CameraRig) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}

	g.Transform.Position = rl.Vector3Lerp(g.Transform.Position, r.FollowTarget(), clamp01(r.PositionLerp*deltaTime))

	g.Transform.Rotation.Y = lerpAngle(g.Transform.Rotation.Y, r.yawTarget, r.RotationLerp*deltaTime)
	if r.pitcher != nil {
		cur := r.pitcher.Transform.Rotation.X
		r.pitcher.Transform.Rotation.X = cur + (r.pitchTarget-cur)*clamp01(r.RotationLerp*deltaTime)
	}

	r.correctedThisTick = false
	blocked, distance := r.corrector.Correct(deltaTime)
	if blocked {
		// Snapping avoids smoothing lag while the lens is being pulled
		// out of geometry.
		r.lensOffset = distance
		r.correctedThisTick = true
	} else {
		r.lensOffset += (distance - r.lensOffset) * clamp01(r.ZoomLerp*deltaTime)
	}
}
