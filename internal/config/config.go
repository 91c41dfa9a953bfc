// Package config provides YAML-based configuration loading for the
// spectrum CLI.
package config

// GameConfig contains the tunable session parameters.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the default board dimensions for generated boards.
// Level files carry their own dimensions and are not constrained by these.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines the energy/life bookkeeping parameters.
type RulesConfig struct {
	EnergyMax int `yaml:"energy_max"`
	LivesMax  int `yaml:"lives_max"`
}
