// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Words WordsConfig `toml:"words"`
}

// GameConfig maps gameplay settings.
type GameConfig struct {
	Width         *float64 `toml:"width"`
	Height        *float64 `toml:"height"`
	MaxEnemies    *int     `toml:"max-enemies"`
	SpawnInterval *int     `toml:"spawn-interval"`
	BaseSpeed     *float64 `toml:"base-speed"`
	SurvivalBonus *float64 `toml:"survival-bonus"`
	TickRate      *int     `toml:"tick-rate"`
	Seed          *int64   `toml:"seed"`
}

// AudioConfig maps sound settings.
type AudioConfig struct {
	SFX    *bool    `toml:"sfx"`
	Music  *bool    `toml:"music"`
	Volume *float64 `toml:"volume"`
}

// WordsConfig maps optional word tier files.
type WordsConfig struct {
	Easy *string `toml:"easy"`
	Mid  *string `toml:"mid"`
	Hard *string `toml:"hard"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
