package main

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/wordshot/internal/config"
	"github.com/verte-zerg/wordshot/internal/model"
)

func validConfig() model.Config {
	return model.Config{
		Width:         defaultWidth,
		Height:        defaultHeight,
		MaxEnemies:    defaultMaxEnemies,
		SpawnInterval: defaultSpawnInterval,
		BaseSpeed:     defaultBaseSpeed,
		SurvivalBonus: defaultSurvivalBonus,
		TickRate:      defaultTickRate,
		Volume:        defaultVolume,
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(validConfig()); err != nil {
		t.Fatalf("expected defaults to be valid: %v", err)
	}
	cases := map[string]func(*model.Config){
		"--max-enemies": func(c *model.Config) { c.MaxEnemies = 0 },
		"--tick-rate":   func(c *model.Config) { c.TickRate = 0 },
		"--volume":      func(c *model.Config) { c.Volume = 1.5 },
		"--width":       func(c *model.Config) { c.Height = -1 },
		"--base-speed":  func(c *model.Config) { c.BaseSpeed = 0 },
	}
	for flag, mutate := range cases {
		cfg := validConfig()
		mutate(&cfg)
		err := validateConfig(cfg)
		if err == nil || !strings.Contains(err.Error(), flag) {
			t.Fatalf("expected %s error, got %v", flag, err)
		}
	}
}

func TestDefaultConfigTemplateIsValidTOML(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Game.MaxEnemies != nil {
		t.Fatalf("expected all template values commented out")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("max-enemies", "3"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	fromFile := 15
	target := 3
	applyConfig(cmd, "max-enemies", &target, &fromFile)
	if target != 3 {
		t.Fatalf("expected explicit flag to win, got %d", target)
	}
	speed := defaultBaseSpeed
	fileSpeed := 0.5
	applyConfig(cmd, "base-speed", &speed, &fileSpeed)
	if speed != 0.5 {
		t.Fatalf("expected config value for unset flag, got %.2f", speed)
	}
}
