package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validatable is implemented by every top-level game config.
type validatable interface {
	Validate() error
}

// LoadPong loads the paddle ball configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong.yaml", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadPlatformer loads the platformer configuration, including its level.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load("platformer.yaml", customPath, defaultPlatformerYAML, DefaultPlatformerConfig)
}

// Check loads the config for a game ID and reports whether it is usable.
// Games without a config file always pass.
func Check(gameID, customPath string) error {
	var err error
	switch gameID {
	case "pong":
		_, err = LoadPong(customPath)
	case "platformer":
		_, err = LoadPlatformer(customPath)
	}
	return err
}

// load decodes a config file on top of the embedded default, so a file only
// needs the keys it changes. A file given explicitly must exist and parse;
// files on the search path are skipped when missing or broken.
func load[T validatable](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		cfg = fallback() // Fallback to hardcoded if embed fails
	}

	switch {
	case customPath != "":
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
	default:
		for _, path := range searchPaths(filename) {
			if overlay, ok := tryOverlay(path, cfg); ok {
				cfg = overlay
				break
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// tryOverlay decodes path on top of a copy of base.
func tryOverlay[T any](path string, base T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	overlay := base
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return base, false
	}
	return overlay, true
}

// searchPaths lists the implicit config locations for filename, in order.
func searchPaths(filename string) []string {
	var paths []string
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
