package config

import (
	_ "embed"
)

//go:embed defaults/spectrum.yaml
var defaultSpectrumYAML []byte

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:  12,
			Height: 12,
		},
		Rules: RulesConfig{
			EnergyMax: 20,
			LivesMax:  3,
		},
	}
}
