package config

// ApplyPreset adjusts the configuration for a named difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 0.35
		cfg.Physics.BallSpeed = 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 0.18
		cfg.Physics.BallSpeed = 1.3
	case DifficultyNormal:
		// Defaults are the normal preset.
	}
}
