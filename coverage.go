package distfield

import (
	"image"
	"math"
)

// DefaultCoverageWidth is the half width, in cells, of the anti-aliased
// transition used by Field.Coverage.
const DefaultCoverageWidth = 0.7

// Coverage renders a signed field back to anti-aliased coverage: cells at
// distance <= -width are fully covered, cells at >= width are empty, and a
// Hermite smoothstep blends in between. width <= 0 selects
// DefaultCoverageWidth.
//
// Only KindSigned fields have a zero level; other kinds return
// ErrNotSigned.
func (f *Field) Coverage(width float32) (*image.Alpha, error) {
	if f.Kind != KindSigned {
		return nil, ErrNotSigned
	}
	if !(width > 0) {
		width = DefaultCoverageWidth
	}

	img := image.NewAlpha(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Values {
		img.Pix[i] = byte(smoothstepCoverage(v, width) * 255)
	}
	return img, nil
}

// smoothstepCoverage maps a signed distance to coverage in [0, 1].
// NaN maps to 0.
func smoothstepCoverage(d, width float32) float32 {
	if math.IsNaN(float64(d)) || d >= width {
		return 0
	}
	if d <= -width {
		return 1
	}
	t := (d + width) / (2 * width)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
