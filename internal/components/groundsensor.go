package components

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit3d/internal/config"
	"orbit3d/internal/engine"
	"orbit3d/internal/physics"
)

// GroundState classifies the controller's support on a given tick. It is
// derived fresh from geometry every tick and never reused stale.
type GroundState int

const (
	InAir GroundState = iota
	OnSteepSlope
	OnGround
	InLiquid
)

func (s GroundState) String() string {
	switch s {
	case InAir:
		return "InAir"
	case OnSteepSlope:
		return "OnSteepSlope"
	case OnGround:
		return "OnGround"
	case InLiquid:
		return "InLiquid"
	default:
		return "Unknown"
	}
}

// probeLift raises the cast origin above the feet (past the probe's own
// radius) so a probe standing flush with the ground does not start inside
// the surface, where casts report nothing.
const probeLift = 0.05

// GroundSensor probes downward from the controller's feet and classifies
// support. It owns the friction coefficient and the last-ground /
// steep-normal caches that the movement controller reads in the same tick.
type GroundSensor struct {
	engine.BaseComponent

	ProbeDistance  float32
	ProbeRadius    float32
	SteepThreshold float32 // minimum up-component of a walkable normal
	Mask           physics.Layer

	nominalFriction float32

	world *physics.World

	swimming      bool
	state         GroundState
	friction      float32
	steepNormal   rl.Vector3
	lastGroundPos rl.Vector3
	hasGroundPos  bool
	groundGap     float32
}

// NewGroundSensor builds a sensor against the given cast world. The world
// is a required reference; its absence is a configuration error.
func NewGroundSensor(world *physics.World, cfg config.GroundConfig) (*GroundSensor, error) {
	if world == nil {
		return nil, errors.New("ground sensor: cast world is required")
	}
	return &GroundSensor{
		ProbeDistance:   cfg.ProbeDistance,
		ProbeRadius:     cfg.ProbeRadius,
		SteepThreshold:  cfg.SteepThreshold,
		Mask:            physics.Layer(cfg.Mask),
		nominalFriction: cfg.NominalFriction,
		world:           world,
		friction:        cfg.NominalFriction,
		state:           InAir,
	}, nil
}

// Sense reclassifies support from a fresh downward probe at position.
// While the swimming flag is set no geometry query runs at all.
func (s *GroundSensor) Sense(position rl.Vector3) (GroundState, rl.Vector3) {
	if s.swimming {
		s.state = InLiquid
		s.steepNormal = rl.Vector3{}
		return s.state, rl.Vector3{X: 0, Y: 1, Z: 0}
	}

	lift := s.ProbeRadius + probeLift
	origin := position
	origin.Y += lift
	down := rl.Vector3{X: 0, Y: -1, Z: 0}

	hit, ok := s.world.SphereCast(origin, s.ProbeRadius, down, s.ProbeDistance+lift, s.Mask)
	if !ok {
		s.state = InAir
		s.steepNormal = rl.Vector3{}
		return s.state, rl.Vector3{}
	}

	if hit.Normal.Y < s.SteepThreshold {
		// Too steep to stand on: remember the normal so the movement
		// controller can slide off, and kill surface friction.
		s.state = OnSteepSlope
		s.steepNormal = hit.Normal
		s.friction = 0
		return s.state, hit.Normal
	}

	s.state = OnGround
	s.steepNormal = rl.Vector3{}
	s.friction = s.nominalFriction
	s.lastGroundPos = position
	s.hasGroundPos = true
	// Height of the feet above the contact surface; negative when the
	// body has sunk slightly into it.
	s.groundGap = hit.Distance - probeLift
	return s.state, hit.Normal
}

// SetSwimming toggles the externally-owned liquid flag.
func (s *GroundSensor) SetSwimming(swimming bool) {
	s.swimming = swimming
}

func (s *GroundSensor) Swimming() bool {
	return s.swimming
}

// State returns the classification from the most recent Sense call.
func (s *GroundSensor) State() GroundState {
	return s.state
}

// SteepNormal is the contact normal of the current steep slope, or zero
// when the controller is not on one.
func (s *GroundSensor) SteepNormal() rl.Vector3 {
	return s.steepNormal
}

// LastGroundPos is the most recent position at which the sensor saw
// walkable ground. ok is false before the first such contact.
func (s *GroundSensor) LastGroundPos() (rl.Vector3, bool) {
	return s.lastGroundPos, s.hasGroundPos
}

// Friction is the current surface friction coefficient: zero on steep
// slopes, nominal on walkable ground.
func (s *GroundSensor) Friction() float32 {
	return s.friction
}

// GroundGap is the feet's height above the last walkable contact, valid
// on ticks where Sense returned OnGround.
func (s *GroundSensor) GroundGap() float32 {
	return s.groundGap
}
