package distfield

import (
	"image"
	"math"
)

// Kind identifies the contract followed by the values of a Field.
// Fields of different kinds are not interchangeable.
type Kind int

const (
	// KindSigned values are distances, negative inside and positive outside.
	KindSigned Kind = iota

	// KindUnsigned values are non-negative distances.
	KindUnsigned

	// KindSquared values are non-negative squared distances.
	KindSquared

	// KindWeight values are membership weights in [0, 1], not distances.
	KindWeight
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindSquared:
		return "squared"
	case KindWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// Closest point markers used in Field.Closest.
const (
	// ClosestBorder marks a nearest obstacle that lies just outside the grid.
	ClosestBorder = -1

	// ClosestNone marks a cell for which no obstacle was found.
	ClosestNone = -2
)

// Field is the output of a transform.
type Field struct {
	Grid

	// Kind tells how Values must be interpreted.
	Kind Kind

	// Values holds one value per cell in row-major order.
	Values []float32

	// Closest holds the flat index of the nearest source cell of every cell,
	// or nil when it was not requested or the transform does not track it.
	Closest []int
}

// newField allocates a field for g.
func newField(g Grid, kind Kind) *Field {
	return &Field{Grid: g, Kind: kind, Values: make([]float32, g.Len())}
}

// At returns the value at (x, y), or NaN outside the grid.
func (f *Field) At(x, y int) float32 {
	if !f.InBounds(x, y) {
		return float32(math.NaN())
	}
	return f.Values[f.Index(x, y)]
}

// Gray quantizes the field to an 8-bit image. See Quantize.
func (f *Field) Gray(spread float32) (*image.Gray, error) {
	pix, err := Quantize(f, spread)
	if err != nil {
		return nil, err
	}
	return &image.Gray{
		Pix:    pix,
		Stride: f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}, nil
}
