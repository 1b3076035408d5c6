// Package sim drives the two-rate tick loop: a fixed physics step for
// movement and ground sensing, and a variable frame tick for the camera
// and input sampling.
package sim

import (
	"errors"

	"github.com/rs/zerolog"

	"orbit3d/internal/config"
	"orbit3d/internal/engine"
)

type Scheduler struct {
	scene *engine.Scene

	step        float32
	maxDelta    float32
	accumulator float32

	frame uint64
	log   zerolog.Logger
}

func NewScheduler(scene *engine.Scene, cfg config.SimConfig, log zerolog.Logger) (*Scheduler, error) {
	if scene == nil {
		return nil, errors.New("scheduler: scene is required")
	}
	if cfg.PhysicsHz <= 0 {
		return nil, errors.New("scheduler: physics rate must be positive")
	}
	return &Scheduler{
		scene:    scene,
		step:     1.0 / float32(cfg.PhysicsHz),
		maxDelta: cfg.MaxFrameDelta,
		log:      log,
	}, nil
}

// Step returns the fixed physics step in seconds.
func (s *Scheduler) Step() float32 {
	return s.step
}

// Advance runs all fixed physics steps owed for this frame, then the
// frame tick. Physics always completes first, so frame-tick components
// (the camera rig) read the subject's position after it moved this frame.
// Returns the number of physics steps taken.
func (s *Scheduler) Advance(frameDelta float32) int {
	if frameDelta < 0 {
		frameDelta = 0
	}
	if s.maxDelta > 0 && frameDelta > s.maxDelta {
		s.log.Warn().
			Float32("delta", frameDelta).
			Float32("clamped_to", s.maxDelta).
			Msg("frame delta clamped")
		frameDelta = s.maxDelta
	}

	s.accumulator += frameDelta
	steps := 0
	for s.accumulator >= s.step {
		s.scene.PhysicsTick(s.step)
		s.accumulator -= s.step
		steps++
	}

	s.scene.Update(frameDelta)
	s.frame++

	if s.frame%600 == 0 {
		s.log.Debug().
			Uint64("frame", s.frame).
			Int("physics_steps", steps).
			Msg("tick")
	}
	return steps
}
