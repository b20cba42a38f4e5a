package platformer

import (
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/config"
)

// parseKind maps a config type name to a PowerUpKind.
func parseKind(name string) (PowerUpKind, error) {
	switch config.PowerUpKinds[name] {
	case "growth":
		return PowerUpGrowth, nil
	case "invincibility":
		return PowerUpInvincibility, nil
	}
	return 0, fmt.Errorf("unknown power-up type %q", name)
}

// buildLevel creates fresh platforms and pickups from the level layout.
// Vanishing platforms start visible with a zero timer. Pickups with an
// unknown type are skipped; config validation rejects them earlier.
func buildLevel(cfg config.PlatformerConfig) ([]Platform, []PowerUp) {
	platforms := make([]Platform, 0, len(cfg.Level.Platforms))
	for _, spec := range cfg.Level.Platforms {
		platforms = append(platforms, Platform{
			X:         spec.X,
			Y:         spec.Y,
			W:         spec.W,
			H:         spec.H,
			Vanishing: spec.Vanishing,
			Visible:   true,
		})
	}

	powerUps := make([]PowerUp, 0, len(cfg.Level.PowerUps))
	for _, spec := range cfg.Level.PowerUps {
		kind, err := parseKind(spec.Type)
		if err != nil {
			continue
		}
		powerUps = append(powerUps, PowerUp{
			X:    spec.X,
			Y:    spec.Y,
			Size: cfg.PowerUps.Size,
			Kind: kind,
		})
	}

	return platforms, powerUps
}
