package textmask

import (
	"errors"
	"math"

	"golang.org/x/image/font/gofont/goregular"
)

// Errors returned by Render.
var (
	// ErrEmptyText is returned for an empty string.
	ErrEmptyText = errors.New("textmask: empty text")

	// ErrInvalidSize is returned when the font size is not a positive number.
	ErrInvalidSize = errors.New("textmask: font size must be positive")

	// ErrInvalidPadding is returned for a negative padding.
	ErrInvalidPadding = errors.New("textmask: padding must not be negative")
)

// DefaultSize is the font size, in pixels per em, used when Options.Size is 0.
const DefaultSize = 64

// Options configures Render.
type Options struct {
	// Font is a TrueType or OpenType font file. Nil selects Go Regular.
	Font []byte

	// Size is the font size in pixels per em. 0 selects DefaultSize.
	Size float64

	// Padding is the number of empty cells added on every side.
	// Default: 8
	Padding int

	// Threshold is the coverage above which a cell is occupied.
	// Default: 127
	Threshold byte
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Size:      DefaultSize,
		Padding:   8,
		Threshold: 127,
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	if math.IsNaN(o.Size) || math.IsInf(o.Size, 0) || o.Size < 0 {
		return ErrInvalidSize
	}
	if o.Padding < 0 {
		return ErrInvalidPadding
	}
	return nil
}

// font returns the font data, falling back to Go Regular.
func (o *Options) font() []byte {
	if len(o.Font) == 0 {
		return goregular.TTF
	}
	return o.Font
}

// size returns the font size, falling back to DefaultSize.
func (o *Options) size() float64 {
	if o.Size == 0 {
		return DefaultSize
	}
	return o.Size
}
