package distfield

import (
	"errors"
	"image"
	"math"
	"testing"
)

// mustMask creates a w×h mask with the given cells occupied.
func mustMask(t *testing.T, w, h int, occupied ...image.Point) *Mask {
	t.Helper()
	m, err := NewMask(w, h)
	if err != nil {
		t.Fatalf("NewMask(%d, %d) error: %v", w, h, err)
	}
	for _, p := range occupied {
		m.Set(p.X, p.Y, true)
	}
	return m
}

// patternMask creates a deterministic irregular mask.
func patternMask(t *testing.T, w, h int) *Mask {
	t.Helper()
	m := mustMask(t, w, h)
	for y := range h {
		for x := range w {
			if (x*7+y*13)%11 == 0 || (x > w/3 && x < w/2 && y > h/4 && y < h/2) {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

// wantOptionsError fails unless err is an *OptionsError for field.
func wantOptionsError(t *testing.T, err error, field string) {
	t.Helper()
	var oe *OptionsError
	if !errors.As(err, &oe) {
		t.Fatalf("error = %v, want *OptionsError", err)
	}
	if oe.Field != field {
		t.Errorf("OptionsError.Field = %q, want %q", oe.Field, field)
	}
}

// approxEqual reports whether a and b differ by at most tol.
func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// hypot is the Euclidean distance between two cells.
func hypot(x0, y0, x1, y1 int) float64 {
	return math.Hypot(float64(x0-x1), float64(y0-y1))
}
