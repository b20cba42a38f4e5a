package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/platform/window"
)

var (
	flagWindowConfig string
	flagScale        float64
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the specified game in a desktop window.

The window host sees real key releases, so held keys are exact.
Controls are the same as for 'arcade play'.

Examples:
  arcade window pong
  arcade window platformer --scale 2
  arcade window platformer --config ./my-level.yaml --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowConfig, "config", "", "Path to custom game config YAML")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size as a multiple of the game viewport")
}

func runWindow(_ *cobra.Command, args []string) error {
	if flagScale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", flagScale)
	}

	game, err := loadGame(args[0], flagWindowConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(false, "window")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagWindowConfig

	if err := window.Run(game, cfg, flagScale, logger); err != nil {
		logger.Error("window host failed", "game", game.ID(), "err", err)
		return err
	}
	return nil
}
