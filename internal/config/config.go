// Package config provides YAML-based configuration loading and difficulty
// presets for the brickout simulation.
package config

// Config contains all tunable parameters for the simulation.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Layout   Layout   `yaml:"layout"`
	Paddle   Paddle   `yaml:"paddle"`
	Ball     Ball     `yaml:"ball"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Physics defines motion parameters in world units per second.
type Physics struct {
	PaddleSpeed    float64 `yaml:"paddle_speed"`
	BallSpeed      float64 `yaml:"ball_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Multiplier applied on speed-up triggers (>1)
	BonusFallSpeed float64 `yaml:"bonus_fall_speed"`
}

// Layout defines the target grid.
type Layout struct {
	Rows        int     `yaml:"rows"`
	Columns     int     `yaml:"columns"`
	BrickHeight float64 `yaml:"brick_height"`
	BrickGap    float64 `yaml:"brick_gap"`
	StartY      float64 `yaml:"start_y"`
	Seed        int64   `yaml:"seed"` // Fixed layout seed, independent of gameplay RNG
}

// Paddle defines the paddle's base geometry.
type Paddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"` // Bottom edge in world coordinates
}

// Ball defines the ball's geometry.
type Ball struct {
	Radius float64 `yaml:"radius"`
}

// Gameplay defines session rules.
type Gameplay struct {
	Lives   int `yaml:"lives"`
	LifeCap int `yaml:"life_cap"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
