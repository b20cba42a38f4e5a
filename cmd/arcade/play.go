package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/platform/tui"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Terminals report no key releases, so a key counts as held until its
auto-repeat stops.

Controls:
  pong        W/S - left paddle, Up/Down - right paddle
  platformer  A/D or Left/Right - run, W/Up/Space - jump
  P           - Pause
  R           - Restart
  Esc/B, Q    - Quit

Config search order:
  --config file, ~/.arcade/configs/<game>.yaml, ./configs/<game>.yaml,
  then the built-in defaults.

Examples:
  arcade play pong
  arcade play platformer --seed 42
  arcade play platformer --config ./my-level.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// loadGame validates the game ID and its config before any host starts.
func loadGame(gameID, configPath string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q (run 'arcade list')", gameID)
	}
	if err := config.Check(gameID, configPath); err != nil {
		return nil, err
	}
	return registry.Create(gameID)
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := loadGame(args[0], flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(true, "play")
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := tui.Run(game, terminalConfig(flagConfig), logger); err != nil {
		logger.Error("terminal host failed", "game", game.ID(), "err", err)
		return fmt.Errorf("running %s: %w", game.ID(), err)
	}
	return nil
}
