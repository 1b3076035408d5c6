package components

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/anim"
	"orbit3d/internal/config"
	"orbit3d/internal/engine"
)

// MovementController drives the body on the fixed physics tick: gravity,
// locomotion, jump, steep-slope slide and stuck recovery. It owns the
// body's transform and velocity exclusively.
type MovementController struct {
	engine.BaseComponent

	Speed      float32
	JumpSpeed  float32
	Gravity    rl.Vector3 // zero when an external integrator owns gravity
	RotateLerp float32
	MoveInAir  bool

	SteepCorrection    bool
	StuckCorrection    bool
	StuckEpsilon       float32
	StuckSpeedFraction float32

	// InteractDown / InteractUp fan out the interact signals to gameplay
	// listeners; nothing in the controller depends on them.
	InteractDown engine.Event
	InteractUp   engine.Event

	sensor *GroundSensor
	sink   anim.Sink

	Velocity rl.Vector3

	freeze      int
	pendingJump bool
	moveInput   rl.Vector2 // world-space horizontal direction (X, Z)
	lastPos     rl.Vector3
	hasLastPos  bool
}

// NewMovementController wires the controller to its ground sensor. The
// sensor is required; sink may be nil for no animation collaborator.
func NewMovementController(sensor *GroundSensor, sink anim.Sink, cfg config.MovementConfig) (*MovementController, error) {
	if sensor == nil {
		return nil, errors.New("movement controller: ground sensor is required")
	}
	if sink == nil {
		sink = anim.NopSink{}
	}
	return &MovementController{
		Speed:              cfg.Speed,
		JumpSpeed:          cfg.JumpSpeed,
		Gravity:            rl.Vector3{X: cfg.Gravity.X, Y: cfg.Gravity.Y, Z: cfg.Gravity.Z},
		RotateLerp:         cfg.RotateLerp,
		MoveInAir:          cfg.MoveInAir,
		SteepCorrection:    cfg.SteepCorrection,
		StuckCorrection:    cfg.StuckCorrection,
		StuckEpsilon:       cfg.StuckEpsilon,
		StuckSpeedFraction: cfg.StuckSpeedFraction,
		sensor:             sensor,
		sink:               sink,
	}, nil
}

// SetMoveInput sets the desired world-space horizontal movement direction
// for the next physics tick (X and Y map to world X and Z).
func (m *MovementController) SetMoveInput(dir rl.Vector2) {
	m.moveInput = dir
}

// Freeze increments the freeze refcount; movement is blocked while it is
// positive.
func (m *MovementController) Freeze() {
	m.freeze++
}

// Unfreeze decrements the freeze refcount. Decrementing past zero is a
// caller error and is ignored.
func (m *MovementController) Unfreeze() {
	if m.freeze > 0 {
		m.freeze--
	}
}

func (m *MovementController) Frozen() bool {
	return m.freeze > 0
}

// RequestJump arms a jump for the next physics tick. Ignored while frozen
// or while a jump is already pending.
func (m *MovementController) RequestJump() {
	if m.freeze > 0 || m.pendingJump {
		return
	}
	m.pendingJump = true
}

// JumpPending reports whether a jump is armed but not yet evaluated.
func (m *MovementController) JumpPending() bool {
	return m.pendingJump
}

func (m *MovementController) Sensor() *GroundSensor {
	return m.sensor
}

func (m *MovementController) PhysicsTick(deltaTime float32) {
	g := m.GetGameObject()
	if g == nil {
		return
	}

	pos := g.Transform.Position
	state, _ := m.sensor.Sense(pos)

	if state == InAir && m.StuckCorrection && m.hasLastPos {
		m.correctStuck(pos)
	}
	m.lastPos = pos
	m.hasLastPos = true

	if m.Gravity.X != 0 || m.Gravity.Y != 0 || m.Gravity.Z != 0 {
		m.Velocity = rl.Vector3Add(m.Velocity, rl.Vector3Scale(m.Gravity, deltaTime))
	}
	if state == OnGround && m.Velocity.Y <= 0 {
		// Settle on the surface: kill the fall and close the probe gap so
		// a landing body does not hover at probe range.
		m.Velocity.Y = 0
		g.Transform.Position.Y -= m.sensor.GroundGap()
	}

	magnitude := rl.Vector2Length(m.moveInput)
	permitted := m.locomotionPermitted(state)
	if permitted && magnitude > 0 {
		m.applyLocomotion(g, deltaTime)
	} else if m.freeze <= 0 && magnitude == 0 && (state == OnGround || state == InLiquid) {
		// Surface friction bleeds off residual locomotion; the sensor
		// zeroes it on steep slopes so the body keeps sliding there.
		damp := 1 - clamp01(m.sensor.Friction())
		m.Velocity.X *= damp
		m.Velocity.Z *= damp
	}

	if m.pendingJump {
		// Evaluated against this tick's state and cleared either way: a
		// jump that missed its grounded moment is dropped, not queued.
		if state == OnGround {
			m.Velocity.Y = m.JumpSpeed
			m.sink.OnJump()
		}
		m.pendingJump = false
	}

	displacement := rl.Vector3Scale(m.Velocity, deltaTime)
	if state == OnSteepSlope && m.SteepCorrection {
		slide := rl.Vector3Scale(m.sensor.SteepNormal(), m.Speed*deltaTime)
		displacement = rl.Vector3Add(displacement, slide)
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, displacement)

	m.sink.SetLocomotion(magnitude, state == OnGround, state == InLiquid)
	m.moveInput = rl.Vector2{}
}

func (m *MovementController) locomotionPermitted(state GroundState) bool {
	if m.freeze > 0 {
		return false
	}
	if state == OnGround || state == InLiquid {
		return true
	}
	return m.MoveInAir && state != OnSteepSlope
}

func (m *MovementController) applyLocomotion(g *engine.GameObject, deltaTime float32) {
	dir := rl.Vector2Normalize(m.moveInput)

	m.Velocity.X = dir.X * m.Speed
	m.Velocity.Z = dir.Y * m.Speed
	// Zero off a slope, so a no-op on normal ground.
	m.Velocity = rl.Vector3Add(m.Velocity, m.sensor.SteepNormal())

	horizontal := rl.Vector3{X: m.Velocity.X, Z: m.Velocity.Z}
	if rl.Vector3Length(horizontal) == 0 {
		return
	}
	targetYaw := yawFromDirection(horizontal)
	diff := wrapAngle(targetYaw - g.Transform.Rotation.Y)
	if diff == 180 || diff == -180 {
		// Dead opposite: the long-way-around direction is ambiguous, so
		// snap instead of picking an arbitrary arc.
		g.Transform.Rotation.Y = targetYaw
		return
	}
	g.Transform.Rotation.Y = lerpAngle(g.Transform.Rotation.Y, targetYaw, m.RotateLerp*deltaTime)
}

// correctStuck nudges an airborne body that has stopped moving, pushing
// it away from the last known ground position so it cannot stay wedged
// against geometry indefinitely.
func (m *MovementController) correctStuck(pos rl.Vector3) {
	moved := rl.Vector3Distance(pos, m.lastPos)
	if moved >= m.StuckEpsilon {
		return
	}
	groundPos, ok := m.sensor.LastGroundPos()
	if !ok {
		return
	}
	away := rl.Vector3Subtract(pos, groundPos)
	away.Y = 0
	if rl.Vector3Length(away) == 0 {
		away = rl.Vector3{X: 1}
	}
	impulse := rl.Vector3Scale(rl.Vector3Normalize(away), m.Speed*m.StuckSpeedFraction)
	impulse.Y = m.Speed * m.StuckSpeedFraction * 0.5 // small upward bias to unhook
	m.Velocity = rl.Vector3Add(m.Velocity, impulse)
}
