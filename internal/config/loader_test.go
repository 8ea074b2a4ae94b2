package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SlitherConfig
	if err := yaml.Unmarshal(GetDefaultYAML("slither"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	want := DefaultSlitherConfig()
	if fromYAML != want {
		t.Errorf("embedded YAML differs from DefaultSlitherConfig()\nyaml: %+v\ncode: %+v", fromYAML, want)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultSlitherConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadSlitherCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nspeed:\n  base: 0.25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadSlither(path)
	if err != nil {
		t.Fatalf("LoadSlither() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Speed.Base != 0.25 {
		t.Errorf("Speed.Base = %v, expected 0.25", cfg.Speed.Base)
	}
	// Untouched keys keep defaults
	if cfg.World.Width != 1000 || cfg.Creature.InitialSegments != 8 {
		t.Errorf("defaults not preserved: world=%v segments=%d", cfg.World.Width, cfg.Creature.InitialSegments)
	}
}

func TestLoadSlitherMissingCustomPath(t *testing.T) {
	_, err := LoadSlither(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadSlitherInvalidCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("speed:\n  base: 0.9\n  max: 0.5\ngameplay:\n  lives: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadSlither(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "speed: max") || !strings.Contains(msg, "gameplay: lives") {
		t.Errorf("expected both validation failures to be reported, got: %v", msg)
	}
}

func TestValidateRejectsCrampedWorld(t *testing.T) {
	cfg := DefaultSlitherConfig()
	cfg.World.Width = 200
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when obstacles cannot fit")
	}
}

func TestApplySlitherPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		base      float64
		increment float64
		max       float64
	}{
		{DifficultyEasy, 5, 0.15, 0.02, 0.6},
		{DifficultyNormal, 3, 0.15, 0.02, 0.8},
		{DifficultyHard, 2, 0.2, 0.03, 0.8},
		{DifficultyFixed, 3, 0.15, 0, 0.8},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSlitherConfig()
			ApplySlitherPreset(&cfg, tc.preset)

			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Speed.Base != tc.base || cfg.Speed.Increment != tc.increment || cfg.Speed.Max != tc.max {
				t.Errorf("Speed = %+v, expected base=%v inc=%v max=%v", cfg.Speed, tc.base, tc.increment, tc.max)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(\"hard\") = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}
