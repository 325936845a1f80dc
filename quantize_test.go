package distfield

import (
	"errors"
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name   string
		kind   Kind
		spread float32
		values []float32
		want   []byte
	}{
		{"signed", KindSigned, 4, []float32{0, -4, 4, -100, 100, 2, nan}, []byte{127, 0, 255, 0, 255, 191, 0}},
		{"unsigned", KindUnsigned, 4, []float32{0, 2, 4, 9}, []byte{0, 127, 255, 255}},
		{"squared", KindSquared, 4, []float32{0, 4, 16, 100}, []byte{0, 127, 255, 255}},
		{"weight ignores spread", KindWeight, 100, []float32{0, 0.5, 1, 2}, []byte{0, 127, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Field{Grid: Grid{Width: len(tt.values), Height: 1}, Kind: tt.kind, Values: tt.values}
			got, err := Quantize(f, tt.spread)
			if err != nil {
				t.Fatalf("Quantize error: %v", err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Quantize(%v)[%d] = %d, want %d", tt.values[i], i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestQuantizeInvalidSpread(t *testing.T) {
	f := &Field{Grid: Grid{Width: 1, Height: 1}, Values: []float32{0}}
	for _, s := range []float32{0, -1, float32(math.NaN())} {
		if _, err := Quantize(f, s); !errors.Is(err, ErrInvalidSpread) {
			t.Errorf("Quantize(spread=%v) error = %v, want ErrInvalidSpread", s, err)
		}
	}
}

func TestFieldGray(t *testing.T) {
	f := &Field{
		Grid:   Grid{Width: 2, Height: 2},
		Kind:   KindSigned,
		Values: []float32{-4, 0, 0, 4},
	}
	img, err := f.Gray(4)
	if err != nil {
		t.Fatalf("Gray error: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", img.Bounds())
	}
	if c := img.GrayAt(0, 0).Y; c != 0 {
		t.Errorf("GrayAt(0, 0) = %d, want 0", c)
	}
	if c := img.GrayAt(1, 1).Y; c != 255 {
		t.Errorf("GrayAt(1, 1) = %d, want 255", c)
	}
}

func TestFieldAtOutOfRange(t *testing.T) {
	f := newField(Grid{Width: 2, Height: 2}, KindSigned)
	if v := f.At(-1, 0); !math.IsNaN(float64(v)) {
		t.Errorf("At(-1, 0) = %v, want NaN", v)
	}
	if v := f.At(2, 1); !math.IsNaN(float64(v)) {
		t.Errorf("At(2, 1) = %v, want NaN", v)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindSigned, "signed"},
		{KindUnsigned, "unsigned"},
		{KindSquared, "squared"},
		{KindWeight, "weight"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}
