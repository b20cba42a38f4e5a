// arcade plays canvas games in the terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Log file (default: ~/.arcade/arcade.log in the terminal)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/logging"

	// Import games to register them
	_ "github.com/vovakirdan/canvas-arcade/internal/games/platformer"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/pong"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("arcade failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Canvas Arcade - Play Pong and a platformer in your terminal or a window",
	Long: `Canvas Arcade runs small canvas games on interchangeable hosts:
the terminal, a desktop window, or an SSH server.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play pong
  arcade window platformer --scale 1.5
  arcade menu
  arcade serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (terminal hosts default to ~/.arcade/arcade.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the command's logger. Terminal hosts own the screen, so
// they always log to a file; other hosts log to stderr unless --log-file is set.
func newLogger(ownsTerminal bool, prefix string) (*log.Logger, io.Closer, error) {
	path := flagLogFile
	if path == "" && ownsTerminal {
		p, err := logging.DefaultFile()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	return logging.New(logging.Options{
		File:   path,
		Level:  flagLogLevel,
		Prefix: prefix,
	})
}

// terminalConfig returns the runtime config for a terminal host, sized to the
// current terminal when it can be read.
func terminalConfig(configPath string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ConfigPath = configPath
	return cfg
}
