// Package anim defines the optional animation collaborator. The movement
// controller pushes locomotion state into a Sink once per physics tick;
// simulation correctness never depends on what the sink does with it.
package anim

// Sink receives per-tick animation parameters.
type Sink interface {
	// SetLocomotion reports the magnitude of the desired movement input
	// and the current support state.
	SetLocomotion(magnitude float32, grounded, swimming bool)
	// OnJump fires once on the tick a jump impulse is applied.
	OnJump()
}

// NopSink is the default collaborator when no animation system is attached.
type NopSink struct{}

func (NopSink) SetLocomotion(magnitude float32, grounded, swimming bool) {}

func (NopSink) OnJump() {}
