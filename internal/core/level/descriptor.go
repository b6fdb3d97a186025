// Package level turns declarative level documents into live scenes: it
// parses and validates descriptors, builds the circuit graph atomically,
// and manages transitions between levels.
package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Recognized component type tags. The set is closed: anything else is a
// configuration error at load time.
const (
	TypeInputButton = "input_button"
	TypeAnd         = "AND"
	TypeOr          = "OR"
	TypeNot         = "NOT"
	TypeLED         = "led"
	TypeMenuButton  = "menu_button"
	TypeText        = "text"
	TypeBackground  = "background"
)

// Descriptor is a complete level document.
type Descriptor struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	// Next names the level loaded by Advance after this one. Empty for
	// terminal levels and menus.
	Next        string                `json:"next,omitempty" yaml:"next,omitempty"`
	Components  []ComponentDescriptor `json:"components" yaml:"components" validate:"dive"`
	Connections []WireDescriptor      `json:"connections" yaml:"connections" validate:"dive"`

	// digest of the raw document bytes, filled in by Decode.
	digest uint64
}

// Digest returns the xxhash of the raw bytes this descriptor was decoded
// from. Used to skip reloading an unchanged level.
func (d Descriptor) Digest() uint64 { return d.digest }

// ComponentDescriptor declares one component. Which fields apply depends
// on Type; Validate enforces the per-type requirements.
type ComponentDescriptor struct {
	ID       string    `json:"id" yaml:"id" validate:"required"`
	Type     string    `json:"type" yaml:"type" validate:"required,oneof=input_button AND OR NOT led menu_button text background"`
	Position []float64 `json:"position,omitempty" yaml:"position,omitempty" validate:"omitempty,len=2"`
	Size     []float64 `json:"size,omitempty" yaml:"size,omitempty" validate:"omitempty,len=2"`
	Radius   float64   `json:"radius,omitempty" yaml:"radius,omitempty" validate:"min=0"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	FontSize float64   `json:"font_size,omitempty" yaml:"font_size,omitempty" validate:"min=0"`
	// Callback names a registered action for menu buttons.
	Callback string `json:"callback,omitempty" yaml:"callback,omitempty"`
	// Initial state for input buttons.
	State bool `json:"state,omitempty" yaml:"state,omitempty"`
}

// WireDescriptor is one directed connection triple.
type WireDescriptor struct {
	From       string `json:"from" yaml:"from" validate:"required"`
	To         string `json:"to" yaml:"to" validate:"required"`
	InputIndex int    `json:"input_index" yaml:"input_index" validate:"min=0"`
}

// DecodeJSON parses and validates a level document from JSON.
func DecodeJSON(r io.Reader) (Descriptor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Descriptor{}, fmt.Errorf("read level: %w", err)
	}
	var d Descriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return Descriptor{}, fmt.Errorf("decode level: %w", err)
	}
	return finishDecode(d, raw)
}

// DecodeYAML parses and validates a level document from YAML.
func DecodeYAML(r io.Reader) (Descriptor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Descriptor{}, fmt.Errorf("read level: %w", err)
	}
	var d Descriptor
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&d); err != nil {
		return Descriptor{}, fmt.Errorf("decode level: %w", err)
	}
	return finishDecode(d, raw)
}

func finishDecode(d Descriptor, raw []byte) (Descriptor, error) {
	d.digest = xxhash.Sum64(raw)
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// Validate checks struct-tag constraints plus the per-type field rules
// the tags cannot express.
func (d Descriptor) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid level %q: %w", d.Name, err)
	}
	for _, c := range d.Components {
		if err := c.validateShape(); err != nil {
			return fmt.Errorf("invalid level %q: component %q: %w", d.Name, c.ID, err)
		}
	}
	return nil
}

func (c ComponentDescriptor) validateShape() error {
	switch c.Type {
	case TypeInputButton, TypeAnd, TypeOr, TypeNot, TypeMenuButton:
		if len(c.Position) != 2 || len(c.Size) != 2 {
			return fmt.Errorf("type %s requires position and size", c.Type)
		}
	case TypeLED:
		if len(c.Position) != 2 || c.Radius <= 0 {
			return fmt.Errorf("type %s requires position and a positive radius", c.Type)
		}
	case TypeText:
		if len(c.Position) != 2 || c.Text == "" {
			return fmt.Errorf("type %s requires position and text", c.Type)
		}
	case TypeBackground:
		// no geometry: fills the window
	}
	return nil
}
