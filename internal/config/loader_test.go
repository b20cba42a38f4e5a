package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadPongEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded pong.yaml should match DefaultPongConfig()\n got: %+v\nwant: %+v", cfg, DefaultPongConfig())
	}
}

func TestLoadPlatformerEmbeddedLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if len(cfg.Level.Platforms) != 9 {
		t.Errorf("expected 9 platforms in default level, got %d", len(cfg.Level.Platforms))
	}
	if len(cfg.Level.PowerUps) != 5 {
		t.Errorf("expected 5 power-ups in default level, got %d", len(cfg.Level.PowerUps))
	}
	if cfg.Effects.InvincibleFrames != 480 {
		t.Errorf("InvincibleFrames = %d, expected 480", cfg.Effects.InvincibleFrames)
	}

	vanishing := 0
	for _, p := range cfg.Level.Platforms {
		if p.Vanishing {
			vanishing++
		}
	}
	if vanishing == 0 {
		t.Error("default level should contain vanishing platforms")
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "pong.yaml", "ball:\n  serve_speed: 7\ngameplay:\n  win_score: 11\n")

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Ball.ServeSpeed != 7 {
		t.Errorf("ServeSpeed = %v, expected 7", cfg.Ball.ServeSpeed)
	}
	if cfg.Gameplay.WinScore != 11 {
		t.Errorf("WinScore = %d, expected 11", cfg.Gameplay.WinScore)
	}
	// Untouched keys keep their defaults
	if cfg.Ball.Size != 12 || cfg.Paddles.Height != 80 {
		t.Errorf("defaults lost in overlay: %+v", cfg)
	}
}

func TestLoadCustomLevelReplacesDefaultLevel(t *testing.T) {
	path := writeFile(t, "level.yaml", `
level:
  platforms:
    - { x: 10, y: 500, w: 100, h: 20, vanishing: true }
  powerups: []
`)

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if len(cfg.Level.Platforms) != 1 || !cfg.Level.Platforms[0].Vanishing {
		t.Errorf("custom level not applied: %+v", cfg.Level.Platforms)
	}
	if len(cfg.Level.PowerUps) != 0 {
		t.Errorf("expected no power-ups, got %d", len(cfg.Level.PowerUps))
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadPong(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "paddles: [oops\n")
		if _, err := LoadPong(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "paddles:\n  height: 900\n")
		_, err := LoadPong(path)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})

	t.Run("unknown power-up type", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "level:\n  powerups:\n    - { x: 1, y: 1, type: rocket }\n")
		_, err := LoadPlatformer(path)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})
}

func TestSearchPathUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pong.yaml"), []byte("paddles:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Paddles.Speed != 9 {
		t.Errorf("user config not picked up, speed = %v", cfg.Paddles.Speed)
	}
}

func TestCheck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := Check("pong", ""); err != nil {
		t.Errorf("Check(pong) = %v", err)
	}
	if err := Check("platformer", ""); err != nil {
		t.Errorf("Check(platformer) = %v", err)
	}
	if err := Check("unknown", "/does/not/matter"); err != nil {
		t.Errorf("games without config should pass, got %v", err)
	}
	if err := Check("pong", "/does/not/exist.yaml"); err == nil {
		t.Error("missing explicit config should fail")
	}
}
