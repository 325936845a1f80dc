package distfield

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestWeightKernel(t *testing.T) {
	for _, r := range []int{1, 2, 4, 8} {
		k := weightKernel(r, 0)
		var sum float64
		for _, e := range k {
			if e.dx*e.dx+e.dy*e.dy > r*r {
				t.Errorf("r=%d: entry %+v beyond radius", r, e)
			}
			sum += float64(e.w)
		}
		if !approxEqual(sum, 1, 1e-5) {
			t.Errorf("r=%d: kernel sum = %v, want 1", r, sum)
		}
	}

	// The centre is the heaviest entry and its four neighbors weigh as much.
	k := weightKernel(1, 0)
	if len(k) != 5 {
		t.Fatalf("r=1: len = %d, want 5", len(k))
	}
	for _, e := range k {
		if !approxEqual(float64(e.w), 0.2, 1e-6) {
			t.Errorf("r=1: weight of %+v = %v, want 0.2", e, e.w)
		}
	}
}

func TestWeightKernelMinWeight(t *testing.T) {
	full := weightKernel(4, 0)
	pruned := weightKernel(4, 0.01)
	if len(pruned) >= len(full) {
		t.Errorf("pruned kernel len = %d, want < %d", len(pruned), len(full))
	}
	for _, e := range pruned {
		if e.w < 0.01 {
			t.Errorf("pruned kernel kept %+v", e)
		}
	}
}

func TestSignedWeightFieldAllEmpty(t *testing.T) {
	m := mustMask(t, 8, 5)
	f, err := SignedWeightField(m, DefaultOptions())
	if err != nil {
		t.Fatalf("SignedWeightField error: %v", err)
	}
	if f.Kind != KindWeight {
		t.Errorf("Kind = %v, want weight", f.Kind)
	}
	for i, v := range f.Values {
		if v != 0 {
			t.Errorf("Values[%d] = %v, want 0", i, v)
		}
	}
}

func TestSignedWeightFieldAllOccupied(t *testing.T) {
	m := mustMask(t, 13, 13)
	m.Fill(true)

	opts := DefaultOptions()
	opts.Radius = 2
	f, err := SignedWeightField(m, opts)
	if err != nil {
		t.Fatalf("SignedWeightField error: %v", err)
	}
	if v := f.At(6, 6); !approxEqual(float64(v), 1, 1e-5) {
		t.Errorf("centre = %v, want 1", v)
	}
	if v := f.At(0, 0); v >= f.At(6, 6) {
		t.Errorf("corner = %v, want less than centre", v)
	}
}

func TestSignedWeightFieldRange(t *testing.T) {
	m := patternMask(t, 33, 21)
	f, err := SignedWeightField(m, DefaultOptions())
	if err != nil {
		t.Fatalf("SignedWeightField error: %v", err)
	}
	for i, v := range f.Values {
		if v < 0 || v > 1 {
			t.Errorf("Values[%d] = %v, want in [0, 1]", i, v)
		}
	}
	// An occupied cell always weighs at least its own kernel centre.
	var centre float32
	for _, e := range weightKernel(DefaultOptions().Radius, 0) {
		if e.dx == 0 && e.dy == 0 {
			centre = e.w
		}
	}
	for i, v := range f.Values {
		if m.Occupied(i) && v < centre-1e-6 {
			t.Errorf("occupied Values[%d] = %v, want >= %v", i, v, centre)
		}
	}
}

func TestSignedWeightFieldWorkersDeterministic(t *testing.T) {
	m := patternMask(t, 40, 27)
	opts := DefaultOptions()
	opts.Workers = 1
	serial, err := SignedWeightField(m, opts)
	if err != nil {
		t.Fatalf("SignedWeightField error: %v", err)
	}
	opts.Workers = 5
	par, err := SignedWeightField(m, opts)
	if err != nil {
		t.Fatalf("SignedWeightField error: %v", err)
	}
	for i := range serial.Values {
		if serial.Values[i] != par.Values[i] {
			t.Fatalf("Values[%d] = %v, want %v", i, par.Values[i], serial.Values[i])
		}
	}
}

func TestSignedWeightFieldErrors(t *testing.T) {
	if _, err := SignedWeightField(nil, DefaultOptions()); !errors.Is(err, ErrNilMask) {
		t.Errorf("nil mask error = %v, want ErrNilMask", err)
	}
	opts := DefaultOptions()
	opts.Radius = -2
	if _, err := SignedWeightField(mustMask(t, 2, 2, image.Pt(0, 0)), opts); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("negative radius error = %v, want ErrInvalidRadius", err)
	}
}

func TestSignedWeightFieldRejectsInvalidOptions(t *testing.T) {
	m := mustMask(t, 9, 9)
	m.FillRect(image.Rect(0, 0, 9, 9))

	tests := []struct {
		name  string
		edit  func(*Options)
		field string
	}{
		{"min weight above one", func(o *Options) { o.MinWeight = 2 }, "MinWeight"},
		{"negative min weight", func(o *Options) { o.MinWeight = -0.5 }, "MinWeight"},
		{"NaN min weight", func(o *Options) { o.MinWeight = float32(math.NaN()) }, "MinWeight"},
		{"negative workers", func(o *Options) { o.Workers = -3 }, "Workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.edit(&opts)
			f, err := SignedWeightField(m, opts)
			if f != nil {
				t.Error("got a field, want nil")
			}
			wantOptionsError(t, err, tt.field)
		})
	}
}
