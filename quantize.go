package distfield

import "math"

// Quantize maps a field to 8-bit values for display or storage.
//
// spread is the distance, in cells, that maps to the ends of the range:
//   - KindSigned: v/spread clamped to [-1, 1], then mapped to [0, 255] with
//     the zero level at 127
//   - KindUnsigned: v/spread clamped to [0, 1]
//   - KindSquared: sqrt(v)/spread clamped to [0, 1]
//   - KindWeight: v clamped to [0, 1]; spread is ignored
func Quantize(f *Field, spread float32) ([]byte, error) {
	if !(spread > 0) {
		return nil, ErrInvalidSpread
	}

	out := make([]byte, len(f.Values))
	for i, v := range f.Values {
		var n float32
		switch f.Kind {
		case KindSigned:
			n = clamp32(v/spread, -1, 1)*0.5 + 0.5
		case KindUnsigned:
			n = clamp32(v/spread, 0, 1)
		case KindSquared:
			n = clamp32(float32(math.Sqrt(float64(v)))/spread, 0, 1)
		case KindWeight:
			n = clamp32(v, 0, 1)
		}
		out[i] = byte(n * 255)
	}
	return out, nil
}

// clamp32 limits v to [lo, hi]. NaN maps to lo.
func clamp32(v, lo, hi float32) float32 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
