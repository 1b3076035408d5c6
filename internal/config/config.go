// Package config loads the static simulation tuning. Values are resolved
// in three layers: built-in defaults, an optional YAML file, then
// environment overrides. Everything is read once before the first tick.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Movement MovementConfig `yaml:"movement" envPrefix:"MOVE_"`
	Camera   CameraConfig   `yaml:"camera" envPrefix:"CAMERA_"`
	Ground   GroundConfig   `yaml:"ground" envPrefix:"GROUND_"`
	Sim      SimConfig      `yaml:"sim" envPrefix:"SIM_"`
}

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

type MovementConfig struct {
	Speed     float32 `yaml:"speed" env:"SPEED"`
	JumpSpeed float32 `yaml:"jump_speed" env:"JUMP_SPEED"`
	// Gravity applied by the controller each physics tick. Zero means an
	// external integrator owns gravity.
	Gravity    Vec3    `yaml:"gravity"`
	RotateLerp float32 `yaml:"rotate_lerp" env:"ROTATE_LERP"`
	MoveInAir  bool    `yaml:"move_in_air" env:"MOVE_IN_AIR"`

	SteepCorrection bool `yaml:"steep_correction" env:"STEEP_CORRECTION"`

	StuckCorrection    bool    `yaml:"stuck_correction" env:"STUCK_CORRECTION"`
	StuckEpsilon       float32 `yaml:"stuck_epsilon" env:"STUCK_EPSILON"`
	StuckSpeedFraction float32 `yaml:"stuck_speed_fraction" env:"STUCK_SPEED_FRACTION"`
}

type CameraConfig struct {
	RotationSpeed float32 `yaml:"rotation_speed" env:"ROTATION_SPEED"`
	PositionLerp  float32 `yaml:"position_lerp" env:"POSITION_LERP"`
	RotationLerp  float32 `yaml:"rotation_lerp" env:"ROTATION_LERP"`
	ZoomLerp      float32 `yaml:"zoom_lerp" env:"ZOOM_LERP"`

	MinZoom         float32 `yaml:"min_zoom" env:"MIN_ZOOM"`
	MaxZoom         float32 `yaml:"max_zoom" env:"MAX_ZOOM"`
	MaxObstacleZoom float32 `yaml:"max_obstacle_zoom" env:"MAX_OBSTACLE_ZOOM"`

	PitchLimit bool    `yaml:"pitch_limit" env:"PITCH_LIMIT"`
	MinPitch   float32 `yaml:"min_pitch" env:"MIN_PITCH"`
	MaxPitch   float32 `yaml:"max_pitch" env:"MAX_PITCH"`

	ProbeRadius float32 `yaml:"probe_radius" env:"PROBE_RADIUS"`
	ProbeMargin float32 `yaml:"probe_margin" env:"PROBE_MARGIN"`

	ObstacleMask uint32 `yaml:"obstacle_mask" env:"OBSTACLE_MASK"`

	// Escape turn direction used before any horizontal input has occurred.
	EscapeDefaultSign float32 `yaml:"escape_default_sign" env:"ESCAPE_DEFAULT_SIGN"`
}

type GroundConfig struct {
	ProbeDistance float32 `yaml:"probe_distance" env:"PROBE_DISTANCE"`
	ProbeRadius   float32 `yaml:"probe_radius" env:"PROBE_RADIUS"`
	// Minimum up-component of a contact normal for the surface to count
	// as walkable ground.
	SteepThreshold  float32 `yaml:"steep_threshold" env:"STEEP_THRESHOLD"`
	NominalFriction float32 `yaml:"nominal_friction" env:"NOMINAL_FRICTION"`
	Mask            uint32  `yaml:"mask" env:"MASK"`
}

type SimConfig struct {
	PhysicsHz int `yaml:"physics_hz" env:"PHYSICS_HZ"`
	// Frame deltas above this are clamped before feeding the accumulator,
	// so a debugger pause does not fire hundreds of catch-up steps.
	MaxFrameDelta float32 `yaml:"max_frame_delta" env:"MAX_FRAME_DELTA"`
}

// Default returns the tuning used when no file or environment is present.
func Default() *Config {
	return &Config{
		Movement: MovementConfig{
			Speed:              6.0,
			JumpSpeed:          8.0,
			Gravity:            Vec3{Y: -20.0},
			RotateLerp:         10.0,
			MoveInAir:          true,
			SteepCorrection:    true,
			StuckCorrection:    true,
			StuckEpsilon:       0.001,
			StuckSpeedFraction: 0.5,
		},
		Camera: CameraConfig{
			RotationSpeed:     120.0,
			PositionLerp:      8.0,
			RotationLerp:      10.0,
			ZoomLerp:          6.0,
			MinZoom:           1.0,
			MaxZoom:           8.0,
			MaxObstacleZoom:   10.0,
			PitchLimit:        true,
			MinPitch:          -35.0,
			MaxPitch:          60.0,
			ProbeRadius:       0.3,
			ProbeMargin:       0.05,
			ObstacleMask:      0xFFFFFFFF &^ 0x18, // everything except water and the character
			EscapeDefaultSign: 1,
		},
		Ground: GroundConfig{
			ProbeDistance:   0.4,
			ProbeRadius:     0.2,
			SteepThreshold:  0.7,
			NominalFriction: 1.0,
			Mask:            0xFFFFFFFF &^ 0x18,
		},
		Sim: SimConfig{
			PhysicsHz:     60,
			MaxFrameDelta: 0.25,
		},
	}
}

// Load resolves the full configuration. path may be empty, in which case
// only defaults and environment overrides apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "ORBIT3D_"}); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Camera.MinZoom > c.Camera.MaxZoom {
		return fmt.Errorf("camera: min_zoom %.2f exceeds max_zoom %.2f", c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	if c.Camera.PitchLimit && c.Camera.MinPitch > c.Camera.MaxPitch {
		return fmt.Errorf("camera: min_pitch %.2f exceeds max_pitch %.2f", c.Camera.MinPitch, c.Camera.MaxPitch)
	}
	if c.Sim.PhysicsHz <= 0 {
		return fmt.Errorf("sim: physics_hz must be positive, got %d", c.Sim.PhysicsHz)
	}
	return nil
}
