// Package pong implements a two-player paddle ball game.
// Each player moves a paddle on their side of the court; a point is scored
// when the ball leaves the court past the opposing paddle.
package pong

import (
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Game implements the paddle ball game logic.
type Game struct {
	cfg      config.PongConfig
	rng      core.Random
	state    State
	paused   bool
	pauseKey core.EdgeDetector
}

// New creates a new game instance with the default configuration.
// Reset must be called before the first Step.
func New() *Game {
	return &Game{cfg: config.DefaultPongConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset loads the configuration and starts a new match.
// A config that cannot be loaded falls back to the defaults; the CLI checks
// the config before a game is created, so this only hides errors from hosts
// that skip the check.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPong(runtime.ConfigPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	g.ResetWith(cfg, core.NewRandom(runtime.Seed))
}

// ResetWith starts a new match with an explicit configuration and random
// source.
func (g *Game) ResetWith(cfg config.PongConfig, rng core.Random) {
	g.cfg = cfg
	g.rng = rng
	g.paused = false
	g.pauseKey = core.EdgeDetector{Action: core.ActionPause}

	w, h := cfg.World.Width, cfg.World.Height
	pw, ph := cfg.Paddles.Width, cfg.Paddles.Height

	g.state = State{
		Left: Paddle{
			X: cfg.Paddles.Offset,
			Y: h/2 - ph/2,
			W: pw,
			H: ph,
		},
		Right: Paddle{
			X: w - cfg.Paddles.Offset - pw,
			Y: h/2 - ph/2,
			W: pw,
			H: ph,
		},
		Ball: Ball{Size: cfg.Ball.Size},
	}

	g.serve(g.randomDirection())
}

// Step advances the match by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.pauseKey.Pressed(in) && !g.state.GameOver {
		g.paused = !g.paused
	}
	if g.paused || g.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	s := &g.state
	s.Tick++

	speed := g.cfg.Paddles.Speed
	s.Left.VY = paddleVelocity(in, core.ActionPaddleUp, core.ActionPaddleDown, speed)
	s.Right.VY = paddleVelocity(in, core.ActionPaddle2Up, core.ActionPaddle2Down, speed)
	g.movePaddle(&s.Left)
	g.movePaddle(&s.Right)

	g.moveBall()
	g.bounceWalls()
	g.bouncePaddles()
	scored := g.resolveScore() != SideNone

	s.check()
	return core.StepResult{State: g.State(), Scored: scored}
}

// Viewport returns the court size.
func (g *Game) Viewport() (w, h float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// State returns the current game state. Score is the left side.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.ScoreLeft,
		Score2:   g.state.ScoreRight,
		GameOver: g.state.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() State {
	return g.state
}

// Config returns the active configuration.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Register the game on package import.
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
