package distfield

import (
	"github.com/gogpu/distfield/internal/parallel"
)

// weightEntry is one non-zero entry of the weight kernel.
type weightEntry struct {
	dx, dy int
	w      float32
}

// weightKernel returns the inverse squared distance kernel of radius r,
// normalized to sum 1. The center weighs 1 before normalization and offsets
// beyond r are left out. Entries whose normalized weight is below minWeight
// are dropped after normalization.
func weightKernel(r int, minWeight float32) []weightEntry {
	maxD := r * r
	var (
		offsets []offset
		weights []float64
		sum     float64
	)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d > maxD {
				continue
			}
			w := 1.0
			if d != 0 {
				w = 1 / float64(d)
			}
			offsets = append(offsets, offset{dx, dy})
			weights = append(weights, w)
			sum += w
		}
	}

	kernel := make([]weightEntry, 0, len(offsets))
	for i, o := range offsets {
		w := float32(weights[i] / sum)
		if w < minWeight {
			continue
		}
		kernel = append(kernel, weightEntry{dx: o.dx, dy: o.dy, w: w})
	}
	return kernel
}

// SignedWeightField computes an anti-aliasing weight per cell: the sum of
// the kernel weights of the occupied cells within opts.Radius.
//
// The values are membership weights in [0, 1] (KindWeight), not distances:
// cells deep inside a shape approach 1, isolated empty cells 0. Neighbors
// outside the grid contribute nothing. Entries below opts.MinWeight are
// ignored.
//
// Rows are independent and run on opts.Workers goroutines. opts.Radius,
// opts.Workers and opts.MinWeight are validated; an invalid value returns an
// *OptionsError.
func SignedWeightField(m *Mask, opts Options) (*Field, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	if err := opts.check(fieldRadius | fieldWorkers | fieldMinWeight); err != nil {
		return nil, err
	}

	kernel := weightKernel(opts.Radius, opts.MinWeight)
	f := newField(m.grid, KindWeight)
	g := m.grid

	parallel.Rows(g.Height, opts.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range g.Width {
				var sum float32
				for _, k := range kernel {
					nx, ny := x+k.dx, y+k.dy
					if m.At(nx, ny) {
						sum += k.w
					}
				}
				f.Values[g.Index(x, y)] = min(sum, 1)
			}
		}
	})

	Logger().Debug("distfield: signed weight field",
		"width", g.Width, "height", g.Height, "radius", opts.Radius, "kernel", len(kernel))
	return f, nil
}
