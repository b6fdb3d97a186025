// Package config holds the game settings: window geometry, frame pacing,
// level locations, logging and the debug inspector. Settings load from
// YAML (canonical) or JSON and fall back to defaults field by field.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Settings is the root configuration document.
type Settings struct {
	Window    WindowSettings    `json:"window" yaml:"window"`
	Levels    LevelSettings     `json:"levels" yaml:"levels"`
	Log       LogSettings       `json:"log" yaml:"log"`
	Inspector InspectorSettings `json:"inspector" yaml:"inspector"`
	TargetFPS int               `json:"target_fps" yaml:"target_fps" validate:"min=0,max=480"`
}

type WindowSettings struct {
	Width  int    `json:"width" yaml:"width" validate:"min=320,max=7680"`
	Height int    `json:"height" yaml:"height" validate:"min=240,max=4320"`
	Title  string `json:"title" yaml:"title" validate:"required"`
}

type LevelSettings struct {
	Dir   string `json:"dir" yaml:"dir" validate:"required"`
	Start string `json:"start" yaml:"start" validate:"required"`
}

type LogSettings struct {
	Level    string `json:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Encoding string `json:"encoding" yaml:"encoding" validate:"oneof=console json"`
}

type InspectorSettings struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Addr is the listen address for the websocket debug feed.
	Addr string `json:"addr" yaml:"addr" validate:"required_if=Enabled true"`
	// IntervalMS throttles snapshot broadcasts.
	IntervalMS int `json:"interval_ms" yaml:"interval_ms" validate:"min=0,max=10000"`
}

// Default returns the settings used when no file is supplied.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  800,
			Height: 600,
			Title:  "Circuit Play",
		},
		Levels: LevelSettings{
			Dir:   "levels",
			Start: "menu",
		},
		Log: LogSettings{
			Level:    "info",
			Encoding: "console",
		},
		Inspector: InspectorSettings{
			Enabled: false,
			Addr:    "127.0.0.1:8077",
			// 100ms matches the original HUD refresh cadence.
			IntervalMS: 100,
		},
		TargetFPS: 60,
	}
}

// LoadYAML decodes settings over the defaults from a YAML reader.
func LoadYAML(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadJSON decodes settings over the defaults from a JSON reader.
func LoadJSON(r io.Reader) (Settings, error) {
	s := Default()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile loads settings from a YAML file path.
func LoadFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// Validate checks the struct-tag constraints.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
