// Package platformer implements a side-scrolling platformer with one-way
// platforms, vanishing platforms and timed power-ups.
package platformer

import (
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Game implements the platformer logic.
type Game struct {
	cfg      config.PlatformerConfig
	state    State
	paused   bool
	pauseKey core.EdgeDetector
}

// New creates a new game instance with the default configuration.
// Reset must be called before the first Step.
func New() *Game {
	return &Game{cfg: config.DefaultPlatformerConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads the configuration and level and starts a new session.
// If the requested config cannot be loaded the search path is tried, then
// the built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPlatformer(runtime.ConfigPath)
	if err != nil && runtime.ConfigPath != "" {
		cfg, err = config.LoadPlatformer("")
	}
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	g.ResetWith(cfg)
}

// ResetWith starts a new session with an explicit configuration.
func (g *Game) ResetWith(cfg config.PlatformerConfig) {
	g.cfg = cfg
	g.paused = false
	g.pauseKey = core.EdgeDetector{Action: core.ActionPause}

	platforms, powerUps := buildLevel(cfg)
	g.state = State{
		Player: Player{
			X: cfg.Player.StartX,
			Y: cfg.Player.StartY,
			W: cfg.Player.Width,
			H: cfg.Player.Height,
		},
		Platforms: platforms,
		PowerUps:  powerUps,
	}
	g.clampToWorld(&g.state.Player)
	g.updateCamera()
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.pauseKey.Pressed(in) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	s := &g.state
	p := &s.Player
	s.Tick++

	g.applyInput(p, in)
	p.VY += g.cfg.Physics.Gravity
	p.X += p.VX
	p.Y += p.VY

	p.Grounded = false
	g.clampToWorld(p)

	g.updatePlatforms()
	resolvePlatforms(p, s.Platforms)

	scored := g.applyPowerUps(p)
	g.tickEffects(p)

	g.updateCamera()
	s.check()
	return core.StepResult{State: g.State(), Scored: scored}
}

// Viewport returns the size of the visible slice of the level.
func (g *Game) Viewport() (w, h float64) {
	return g.cfg.World.ViewWidth, g.cfg.World.ViewHeight
}

// State returns the current game state. The platformer never ends.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.state.Score,
		Paused: g.paused,
	}
}

// Snapshot returns a deep copy of the simulation state.
func (g *Game) Snapshot() State {
	return g.state.clone()
}

// Config returns the active configuration.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// Register the game on package import.
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
