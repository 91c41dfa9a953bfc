package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.spectrum/config.yaml -> ./configs/spectrum.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/spectrum.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSpectrumYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path of a file under ~/.spectrum, or "" if the
// home directory cannot be resolved.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spectrum", name)
}

// normalize fills zero-valued fields with defaults so partial config files
// stay usable.
func normalize(cfg GameConfig) GameConfig {
	def := DefaultGameConfig()
	if cfg.Board.Width <= 0 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height <= 0 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Rules.EnergyMax <= 0 {
		cfg.Rules.EnergyMax = def.Rules.EnergyMax
	}
	if cfg.Rules.LivesMax <= 0 {
		cfg.Rules.LivesMax = def.Rules.LivesMax
	}
	return cfg
}
