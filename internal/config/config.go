// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// WorldConfig defines the logical world size in world units (pixels).
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongConfig contains all configuration for the paddle ball game.
type PongConfig struct {
	World    WorldConfig  `yaml:"world"`
	Paddles  PongPaddles  `yaml:"paddles"`
	Ball     PongBall     `yaml:"ball"`
	Gameplay PongGameplay `yaml:"gameplay"`
}

// PongPaddles defines paddle geometry and movement.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance from the side walls
	Speed  float64 `yaml:"speed"`  // Vertical speed while a key is held
}

// PongBall defines ball size and serve behaviour.
type PongBall struct {
	Size        float64 `yaml:"size"`
	ServeSpeed  float64 `yaml:"serve_speed"`  // Horizontal speed after a serve or bounce
	ServeSpread float64 `yaml:"serve_spread"` // Vertical speed is uniform in [-spread/2, spread/2)
	PaddleCarry float64 `yaml:"paddle_carry"` // Fraction of paddle speed added to the ball on a hit
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"` // 0 plays forever
}

// Validate checks that the config can drive a simulation.
func (c PongConfig) Validate() error {
	switch {
	case !finite(c.World.Width, c.World.Height,
		c.Paddles.Width, c.Paddles.Height, c.Paddles.Offset, c.Paddles.Speed,
		c.Ball.Size, c.Ball.ServeSpeed, c.Ball.ServeSpread, c.Ball.PaddleCarry):
		return fmt.Errorf("%w: pong values must be finite", ErrInvalid)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: pong world must have positive size", ErrInvalid)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: pong paddles must have positive size", ErrInvalid)
	case c.Paddles.Height > c.World.Height:
		return fmt.Errorf("%w: pong paddle taller than the world", ErrInvalid)
	case c.Paddles.Offset < 0 || c.Paddles.Offset+c.Paddles.Width > c.World.Width/2:
		return fmt.Errorf("%w: pong paddles must sit inside their half of the court", ErrInvalid)
	case c.Paddles.Speed < 0:
		return fmt.Errorf("%w: pong paddle speed must not be negative", ErrInvalid)
	case c.Ball.Size <= 0:
		return fmt.Errorf("%w: pong ball must have positive size", ErrInvalid)
	case c.Ball.Size >= c.World.Width || c.Ball.Size >= c.World.Height:
		return fmt.Errorf("%w: pong ball larger than the court", ErrInvalid)
	case c.Ball.ServeSpeed <= 0:
		return fmt.Errorf("%w: pong serve speed must be positive", ErrInvalid)
	case c.Ball.ServeSpread < 0 || c.Ball.PaddleCarry < 0:
		return fmt.Errorf("%w: pong serve spread and paddle carry must not be negative", ErrInvalid)
	case c.Gameplay.WinScore < 0:
		return fmt.Errorf("%w: pong win score must not be negative", ErrInvalid)
	}
	return nil
}

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	World    PlatformerWorld    `yaml:"world"`
	Physics  PlatformerPhysics  `yaml:"physics"`
	Player   PlatformerPlayer   `yaml:"player"`
	Effects  PlatformerEffects  `yaml:"effects"`
	PowerUps PlatformerPowerUps `yaml:"powerups"`
	Level    LevelConfig        `yaml:"level"`
}

// PlatformerWorld defines the scrolling level size and the visible window.
type PlatformerWorld struct {
	Width      float64 `yaml:"width"`       // Full level width
	Height     float64 `yaml:"height"`      // Level height; its bottom edge is the floor
	ViewWidth  float64 `yaml:"view_width"`  // Visible slice width
	ViewHeight float64 `yaml:"view_height"` // Visible slice height
}

// PlatformerPhysics defines movement constants, all per frame.
type PlatformerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative is up
}

// PlatformerPlayer defines the player's spawn point and base size.
type PlatformerPlayer struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerEffects defines power-up effect strength and duration.
type PlatformerEffects struct {
	GrowthScale      float64 `yaml:"growth_scale"`      // Size multiplier while enlarged
	GrowthJumpBoost  float64 `yaml:"growth_jump_boost"` // Jump multiplier while enlarged
	GrowthFrames     int     `yaml:"growth_frames"`     // Enlarged duration, 0 lasts until restart
	InvincibleFrames int     `yaml:"invincible_frames"` // Invincible duration, 0 lasts until restart
	VanishPeriod     int     `yaml:"vanish_period"`     // Frames per visible or hidden phase
}

// PlatformerPowerUps defines pickup size and reward.
type PlatformerPowerUps struct {
	Size  float64 `yaml:"size"`
	Score int     `yaml:"score"`
}

// LevelConfig lists the static level layout.
type LevelConfig struct {
	Platforms []PlatformSpec `yaml:"platforms"`
	PowerUps  []PowerUpSpec  `yaml:"powerups"`
}

// PlatformSpec describes one platform.
type PlatformSpec struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	W         float64 `yaml:"w"`
	H         float64 `yaml:"h"`
	Vanishing bool    `yaml:"vanishing"`
}

// PowerUpSpec describes one pickup. Type is "growth" or "invincibility"
// ("mushroom" and "star" are accepted aliases).
type PowerUpSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Type string  `yaml:"type"`
}

// Validate checks that the config can drive a simulation.
func (c PlatformerConfig) Validate() error {
	switch {
	case !finite(c.World.Width, c.World.Height, c.World.ViewWidth, c.World.ViewHeight,
		c.Physics.Gravity, c.Physics.MoveSpeed, c.Physics.JumpVelocity,
		c.Player.StartX, c.Player.StartY, c.Player.Width, c.Player.Height,
		c.Effects.GrowthScale, c.Effects.GrowthJumpBoost, c.PowerUps.Size):
		return fmt.Errorf("%w: platformer values must be finite", ErrInvalid)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: platformer world must have positive size", ErrInvalid)
	case c.World.ViewWidth <= 0 || c.World.ViewHeight <= 0:
		return fmt.Errorf("%w: platformer view must have positive size", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: platformer player must have positive size", ErrInvalid)
	case c.Player.Width*max(c.Effects.GrowthScale, 1) > c.World.Width,
		c.Player.Height*max(c.Effects.GrowthScale, 1) > c.World.Height:
		return fmt.Errorf("%w: platformer player does not fit the world", ErrInvalid)
	case c.Effects.GrowthScale <= 0 || c.Effects.GrowthJumpBoost <= 0:
		return fmt.Errorf("%w: growth multipliers must be positive", ErrInvalid)
	case c.Effects.VanishPeriod <= 0:
		return fmt.Errorf("%w: vanish period must be positive", ErrInvalid)
	case c.Effects.GrowthFrames < 0 || c.Effects.InvincibleFrames < 0:
		return fmt.Errorf("%w: effect durations must not be negative", ErrInvalid)
	case c.PowerUps.Size <= 0:
		return fmt.Errorf("%w: power-up size must be positive", ErrInvalid)
	}

	for i, p := range c.Level.Platforms {
		if !finite(p.X, p.Y, p.W, p.H) || p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: platform %d must have positive size", ErrInvalid, i)
		}
	}
	for i, p := range c.Level.PowerUps {
		if !finite(p.X, p.Y) {
			return fmt.Errorf("%w: power-up %d position must be finite", ErrInvalid, i)
		}
		if _, ok := PowerUpKinds[p.Type]; !ok {
			return fmt.Errorf("%w: power-up %d has unknown type %q", ErrInvalid, i, p.Type)
		}
	}
	return nil
}

// PowerUpKinds maps accepted power-up type names to their canonical name.
var PowerUpKinds = map[string]string{
	"growth":        "growth",
	"mushroom":      "growth",
	"invincibility": "invincibility",
	"star":          "invincibility",
}

// finite reports whether no value is NaN or infinite. YAML accepts .nan and
// .inf, which would only surface later as a simulation panic.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
