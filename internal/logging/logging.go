// Package logging builds the arcade's charmbracelet/log loggers. Terminal
// hosts own the screen, so they log to a rotating file; the SSH server and
// the window host may log to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 28
)

// Options selects where a logger writes and what it keeps.
type Options struct {
	// File is the log file path. Empty writes to Stderr instead.
	File string
	// Level is a charmbracelet/log level name ("debug", "info", ...).
	// Empty means info.
	Level string
	// Prefix tags every line, e.g. "ssh".
	Prefix string
	// Stderr is used when File is empty. Nil means os.Stderr.
	Stderr io.Writer
}

// DefaultFile returns ~/.arcade/arcade.log.
func DefaultFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".arcade", "arcade.log"), nil
}

// New returns a logger configured by opts and a closer for its sink. The
// closer must be called on exit to flush the log file.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = l
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
		}
		w, closer = file, file
	case opts.Stderr != nil:
		w = opts.Stderr
	default:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          opts.Prefix,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
