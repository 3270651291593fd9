package utils

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/game"
)

// Config holds the configuration for a simulation run
type Config struct {
	Width         int         `json:"width" yaml:"width"`
	Height        int         `json:"height" yaml:"height"`
	Logging       bool        `json:"logging" yaml:"logging"`
	StepTarget    int         `json:"step_target" yaml:"step_target"`
	StartingState game.Preset `json:"starting_state" yaml:"starting_state"`
	Seed          int64       `json:"seed" yaml:"seed"`
	Threaded      bool        `json:"threaded" yaml:"threaded"`

	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Animate             bool          `json:"animate" yaml:"animate"`
	Render              bool          `json:"render" yaml:"render"`
	Stats               bool          `json:"stats" yaml:"stats"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:         5,
		Height:        5,
		StepTarget:    5,
		StartingState: game.PresetGlider,
		FrameRate:     150 * time.Millisecond,
		Render:        true,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// GameConfig converts the file config into what game.Initialize expects
func (c Config) GameConfig(out io.Writer) game.Config {
	return game.Config{
		Width:         c.Width,
		Height:        c.Height,
		Logging:       c.Logging,
		Output:        out,
		StepTarget:    c.StepTarget,
		StartingState: c.StartingState,
		Seed:          c.Seed,
		Threaded:      c.Threaded,
	}
}
