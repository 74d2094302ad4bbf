package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	var embedded Config
	if err := yaml.Unmarshal(defaultYAML, &embedded); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}
	if embedded != Default() {
		t.Errorf("Embedded YAML diverged from Default():\nembedded: %+v\ndefault:  %+v",
			embedded, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.Layout.Rows != 8 || cfg.Layout.Columns != 14 {
		t.Errorf("Grid = %dx%d, want 8x14", cfg.Layout.Rows, cfg.Layout.Columns)
	}
	if cfg.Physics.SpeedIncrement <= 1 {
		t.Errorf("Speed increment must exceed 1, got %f", cfg.Physics.SpeedIncrement)
	}
	if cfg.Gameplay.Lives <= 0 || cfg.Gameplay.Lives > cfg.Gameplay.LifeCap {
		t.Errorf("Lives %d out of range [1, %d]", cfg.Gameplay.Lives, cfg.Gameplay.LifeCap)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := `
physics:
  paddle_speed: 2.0
  ball_speed: 1.5
  speed_increment: 1.1
  bonus_fall_speed: 0.9
layout:
  rows: 4
  columns: 10
  brick_height: 0.05
  brick_gap: 0.02
  start_y: 0.8
  seed: 7
paddle:
  width: 0.3
  height: 0.05
  y: -0.85
ball:
  radius: 0.03
gameplay:
  lives: 4
  life_cap: 6
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Layout.Rows != 4 || cfg.Layout.Columns != 10 {
		t.Errorf("Grid = %dx%d, want 4x10", cfg.Layout.Rows, cfg.Layout.Columns)
	}
	if cfg.Physics.PaddleSpeed != 2.0 {
		t.Errorf("PaddleSpeed = %f, want 2.0", cfg.Physics.PaddleSpeed)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("Lives = %d, want 4", cfg.Gameplay.Lives)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load with an explicit missing path should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("{not yaml:::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with a malformed explicit config should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		lives  int
	}{
		{DifficultyEasy, 5},
		{DifficultyNormal, Default().Gameplay.Lives},
		{DifficultyHard, 2},
	}

	for _, tc := range tests {
		cfg := Default()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Gameplay.Lives != tc.lives {
			t.Errorf("Preset %s: lives = %d, want %d", tc.preset, cfg.Gameplay.Lives, tc.lives)
		}
	}

	// Presets never touch the layout
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Layout != Default().Layout {
		t.Error("Difficulty presets must not change the layout")
	}
}

func TestApplyPresetUnknownIsNoop(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyPreset("nightmare"))
	if cfg != Default() {
		t.Error("Unknown preset should leave the config untouched")
	}
}
