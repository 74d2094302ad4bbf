package config

import (
	_ "embed"
)

//go:embed defaults/brickout.yaml
var defaultYAML []byte

// Default returns the default configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Physics: Physics{
			PaddleSpeed:    1.5,
			BallSpeed:      1.0,
			SpeedIncrement: 1.19,
			BonusFallSpeed: 1.0,
		},
		Layout: Layout{
			Rows:        8,
			Columns:     14,
			BrickHeight: 0.06,
			BrickGap:    0.01,
			StartY:      0.85,
			Seed:        42,
		},
		Paddle: Paddle{
			Width:  0.25,
			Height: 0.04,
			Y:      -0.9,
		},
		Ball: Ball{
			Radius: 0.02,
		},
		Gameplay: Gameplay{
			Lives:   3,
			LifeCap: 5,
		},
	}
}
