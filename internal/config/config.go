// Package config loads distfield command defaults from a TOML file.
//
// A file sets any subset of the keys below; missing keys keep their
// defaults and command-line flags override both.
//
//	algorithm  = "sweep"
//	spread     = 4.0
//	radius     = 4
//	threshold  = 127
//	invert     = false
//	extra_pass = true
//	border     = true
//	workers    = 0
//	min_weight = 0.0
//	format     = "png"
//
//	[text]
//	font    = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
//	size    = 64.0
//	padding = 8
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/distfield"
	"github.com/gogpu/distfield/internal/imageio"
	"github.com/gogpu/distfield/textmask"
)

// Errors returned by Load and Validate.
var (
	// ErrUnknownKey is returned when a file contains keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is wrapped by every validation error.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds the defaults of the generate and text commands.
type Config struct {
	Algorithm string  `toml:"algorithm"`
	Spread    float64 `toml:"spread"`
	Radius    int     `toml:"radius"`
	Threshold int     `toml:"threshold"`
	Invert    bool    `toml:"invert"`
	ExtraPass bool    `toml:"extra_pass"`
	Border    bool    `toml:"border"`
	Workers   int     `toml:"workers"`
	MinWeight float64 `toml:"min_weight"`

	// Format is the output extension used when the output path has none.
	Format string `toml:"format"`

	Text Text `toml:"text"`
}

// Text holds the defaults of the text command.
type Text struct {
	// Font is a path to a TrueType or OpenType file. Empty selects Go Regular.
	Font    string  `toml:"font"`
	Size    float64 `toml:"size"`
	Padding int     `toml:"padding"`
}

// Default returns the built-in defaults.
func Default() Config {
	opts := distfield.DefaultOptions()
	text := textmask.DefaultOptions()
	return Config{
		Algorithm: distfield.AlgorithmSweep.String(),
		Spread:    4,
		Radius:    opts.Radius,
		Threshold: 127,
		ExtraPass: opts.ExtraPass,
		Border:    opts.BorderObstacles,
		Workers:   opts.Workers,
		Format:    "png",
		Text: Text{
			Size:    text.Size,
			Padding: text.Padding,
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(names, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML data on top of Default and validates the result.
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, keys[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field. An unknown algorithm name is accepted; the
// generate command falls back to the default algorithm for it.
func (c *Config) Validate() error {
	switch {
	case !(c.Spread > 0) || math.IsInf(c.Spread, 0):
		return fmt.Errorf("%w: spread must be positive, got %v", ErrInvalid, c.Spread)
	case c.Radius < 1:
		return fmt.Errorf("%w: radius must be at least 1, got %d", ErrInvalid, c.Radius)
	case c.Threshold < 0 || c.Threshold > 255:
		return fmt.Errorf("%w: threshold must be in [0, 255], got %d", ErrInvalid, c.Threshold)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	case c.MinWeight < 0 || c.MinWeight >= 1:
		return fmt.Errorf("%w: min_weight must be in [0, 1), got %v", ErrInvalid, c.MinWeight)
	case !imageio.Supported("." + c.Format):
		return fmt.Errorf("%w: unsupported format %q", ErrInvalid, c.Format)
	case c.Text.Size < 0:
		return fmt.Errorf("%w: text.size must not be negative, got %v", ErrInvalid, c.Text.Size)
	case c.Text.Padding < 0:
		return fmt.Errorf("%w: text.padding must not be negative, got %d", ErrInvalid, c.Text.Padding)
	}
	return nil
}

// Options converts the config to transform options.
func (c *Config) Options() distfield.Options {
	opts := distfield.DefaultOptions()
	opts.Radius = c.Radius
	opts.Threshold = byte(c.Threshold)
	opts.ExtraPass = c.ExtraPass
	opts.BorderObstacles = c.Border
	opts.Workers = c.Workers
	opts.MinWeight = float32(c.MinWeight)
	return opts
}
