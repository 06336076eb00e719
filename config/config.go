package config

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the demo application's configuration.
type Config struct {
	// Guard holds defaults applied to fields.
	Guard GuardConfig `toml:"guard"`

	// Fields are the form fields to present, in order.
	Fields []FieldConfig `toml:"field"`
}

// GuardConfig holds guard defaults.
type GuardConfig struct {
	// DefaultMax is the max constraint applied to fields that do not set
	// their own. Empty disables the default.
	DefaultMax string `toml:"default_max"`
}

// FieldConfig describes one form field.
type FieldConfig struct {
	// Name identifies the field; required and unique.
	Name string `toml:"name"`

	// Label is the text shown next to the field; defaults to Name.
	Label string `toml:"label"`

	// Max is the field's max constraint. Empty falls back to the guard
	// default; a malformed value disables enforcement for the field.
	Max string `toml:"max"`

	// Value is the field's initial text.
	Value string `toml:"value"`
}

// EffectiveMax returns the field's constraint attribute after applying
// the guard default.
func (f FieldConfig) EffectiveMax(g GuardConfig) string {
	if f.Max != "" {
		return f.Max
	}
	return g.DefaultMax
}

// Default returns the configuration used when no file is present: two
// unconstrained sample fields.
func Default() Config {
	return Config{
		Fields: []FieldConfig{
			{Name: "amount", Label: "Amount", Max: "999"},
			{Name: "quantity", Label: "Quantity", Max: "100"},
		},
	}
}

// Load reads the configuration from path. A missing file yields the
// default configuration.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFrom reads the configuration from an io.Reader.
func LoadFrom(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading: %w", err)
	}
	return parse("<reader>", data)
}

// parse unmarshals and validates TOML data.
func parse(source string, data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = Default().Fields
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects structurally broken configurations. Malformed max
// values are not errors; they degrade to disabled constraints.
func (c Config) validate() error {
	seen := make(map[string]bool, len(c.Fields))
	for _, f := range c.Fields {
		if f.Name == "" {
			return ErrUnnamedField
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}
