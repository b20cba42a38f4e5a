package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPongConfig returns the default paddle ball configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Paddles: PongPaddles{
			Width:  10,
			Height: 80,
			Offset: 10,
			Speed:  6,
		},
		Ball: PongBall{
			Size:        12,
			ServeSpeed:  4,
			ServeSpread: 6,
			PaddleCarry: 0.4,
		},
		Gameplay: PongGameplay{
			WinScore: 0,
		},
	}
}

// DefaultPlatformerConfig returns the default platformer configuration
// without a level layout. The embedded YAML carries the default level.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: PlatformerWorld{
			Width:      2400,
			Height:     600,
			ViewWidth:  800,
			ViewHeight: 600,
		},
		Physics: PlatformerPhysics{
			Gravity:      0.5,
			MoveSpeed:    4,
			JumpVelocity: -11,
		},
		Player: PlatformerPlayer{
			StartX: 40,
			StartY: 560,
			Width:  30,
			Height: 40,
		},
		Effects: PlatformerEffects{
			GrowthScale:      1.5,
			GrowthJumpBoost:  1.12,
			GrowthFrames:     600,
			InvincibleFrames: 480,
			VanishPeriod:     60,
		},
		PowerUps: PlatformerPowerUps{
			Size:  24,
			Score: 100,
		},
	}
}
