// Package window runs a game in a desktop window through Ebitengine.
// Unlike the terminal host it sees real key-up events, so held actions are
// exact rather than inferred from key repeat.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// host adapts a registry.Game to ebiten.Game. Ebitengine calls Update at the
// tick rate and Draw once per frame on the same goroutine.
type host struct {
	game      registry.Game
	keys      keyMap
	keyboard  keyboard
	input     *core.InputState
	canvas    canvas
	logger    *log.Logger
	config    core.RuntimeConfig
	fixedSeed bool
	gameState core.GameState
}

func newHost(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, kb keyboard) *host {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := &host{
		game:      game,
		keys:      keyMapFor(game.ID()),
		keyboard:  kb,
		input:     core.NewInputState(),
		logger:    logger,
		config:    cfg,
		fixedSeed: fixedSeed,
	}
	game.Reset(cfg)
	h.gameState = game.State()
	h.logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)
	return h
}

// Update implements ebiten.Game. It handles host keys, then steps the game
// once with the keys held this tick.
func (h *host) Update() error {
	switch {
	case anyJustPressed(h.keyboard, h.keys.Quit), anyJustPressed(h.keyboard, h.keys.Back):
		h.logger.Info("game quit", "game", h.game.ID(), "score", h.gameState.Score)
		return ebiten.Termination

	case anyJustPressed(h.keyboard, h.keys.Restart):
		h.restart()
		return nil
	}

	syncInput(h.input, h.keys, h.keyboard)

	result := h.game.Step(h.input.Frame())
	if result.Scored {
		h.logger.Debug("score", "game", h.game.ID(), "score", result.State.Score, "score2", result.State.Score2)
	}
	if result.State.GameOver && !h.gameState.GameOver {
		h.logger.Info("game over", "game", h.game.ID(), "score", result.State.Score, "score2", result.State.Score2)
	}
	h.gameState = result.State
	return nil
}

// restart starts the game over, with a fresh seed unless one was given.
func (h *host) restart() {
	if !h.fixedSeed {
		h.config.Seed = time.Now().UnixNano()
	}
	h.game.Reset(h.config)
	h.input.ReleaseAll()
	h.gameState = h.game.State()
	h.logger.Debug("game restarted", "game", h.game.ID(), "seed", h.config.Seed)
}

// Draw implements ebiten.Game.
func (h *host) Draw(screen *ebiten.Image) {
	h.canvas.dst = screen
	h.game.Render(&h.canvas)
}

// Layout implements ebiten.Game. The logical screen is the game viewport;
// Ebitengine scales it to the window.
func (h *host) Layout(_, _ int) (int, int) {
	w, ht := h.game.Viewport()
	return int(w), int(ht)
}

// Run opens a window scale times the game viewport and plays until the
// player quits or closes it.
func Run(game registry.Game, cfg core.RuntimeConfig, scale float64, logger *log.Logger) error {
	if scale <= 0 {
		scale = 1
	}
	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}

	h := newHost(game, cfg, logger, ebitenKeyboard{})

	w, ht := game.Viewport()
	ebiten.SetWindowSize(int(w*scale), int(ht*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
