package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// GameModel is the Bubble Tea model that drives one game: it turns key
// presses into held actions, steps the game once per tick and renders it.
type GameModel struct {
	game      registry.Game
	keys      GameKeyMap
	help      help.Model
	palette   *Palette
	logger    *log.Logger
	screen    *core.Screen
	input     *core.InputState
	hold      *KeyHold
	config    core.RuntimeConfig
	fixedSeed bool
	gameState core.GameState
	loop      uint64
	now       func() time.Time

	// Pause is one-shot: a press queues a single Pause frame. Presses that
	// follow the previous one within the repeat window are auto-repeat.
	pausePending bool
	lastPause    time.Time

	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game. A nil logger discards
// output; a nil palette uses the default renderer.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger, palette *Palette) GameModel {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if palette == nil {
		palette = NewPalette(nil)
	}

	return GameModel{
		game:      game,
		keys:      KeyMapFor(game.ID()),
		help:      help.New(),
		palette:   palette,
		logger:    logger,
		screen:    core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		input:     core.NewInputState(),
		hold:      NewKeyHold(DefaultFirstHold, DefaultRepeatHold),
		config:    cfg,
		fixedSeed: fixedSeed,
		loop:      newLoopID(),
		now:       time.Now,
	}
}

// playRows returns the rows left for the game after the help line.
func playRows(height int) int {
	return max(height-1, 1)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	// The game is a pointer, so the reset survives the value receiver.
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		now := m.now()
		if now.Sub(m.lastPause) >= DefaultRepeatHold {
			m.pausePending = true
		}
		m.lastPause = now
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		if o, ok := Opposite(a); ok {
			m.input.Release(o)
			m.hold.Release(o)
		}
		m.input.Press(a)
		m.hold.Press(a, m.now())
	}
	return m, nil
}

// restart starts the game over, with a fresh seed unless one was given.
func (m *GameModel) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.input.ReleaseAll()
	m.hold.Reset()
	m.pausePending = false
	m.gameState = m.game.State()
	m.logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// handleTick releases keys whose hold expired and advances the game one step.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range m.hold.Expire(now) {
		m.input.Release(a)
	}

	frame := m.input.Frame()
	if m.pausePending {
		frame.Set(core.ActionPause)
		m.pausePending = false
	}

	result := m.game.Step(frame)
	if result.Scored {
		m.logger.Debug("score", "game", m.game.ID(), "score", result.State.Score, "score2", result.State.Score2)
	}
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "score", result.State.Score, "score2", result.State.Score2)
	}
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate, m.loop)
}

// View renders the game canvas and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.game.Viewport()
	m.game.Render(core.NewScreenCanvas(m.screen, w, h))
	return m.palette.RenderFrame(m.screen, m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or backs out.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, cfg, logger, nil)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
