package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakgame/oak/internal/apperrors"
	"github.com/oakgame/oak/internal/game/seat"
)

// Config viewer configuration
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls how the table is rendered.
type DisplayConfig struct {
	Color       bool   `yaml:"color"`       // color red suits
	Perspective string `yaml:"perspective"` // user | opponent
	ShowDeck    bool   `yaml:"show_deck"`
}

// LogConfig log file location
type LogConfig struct {
	Dir string `yaml:"dir"` // empty means ~/.oak
}

// Player returns the configured perspective as a PlayerName.
func (d *DisplayConfig) Player() (seat.PlayerName, error) {
	for _, p := range seat.AllPlayers() {
		if strings.EqualFold(d.Perspective, p.String()) {
			return p, nil
		}
	}
	return seat.User, fmt.Errorf("perspective %q: %w", d.Perspective, apperrors.ErrInvalidConfig)
}

// Load reads the config file at path and fills in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Display.Perspective == "" {
		cfg.Display.Perspective = "user"
	}
	if _, err := cfg.Display.Player(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Color:       true,
			Perspective: "user",
			ShowDeck:    true,
		},
	}
}
