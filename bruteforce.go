package distfield

import (
	"math"
	"slices"

	"github.com/gogpu/distfield/internal/parallel"
)

// kernelEntry is one offset of the brute force search kernel.
type kernelEntry struct {
	dx, dy int
	d      int // squared distance, clamped to radius²
}

// searchKernel returns the offsets of the (2r+1)×(2r+1) neighborhood sorted
// by squared distance. Distances beyond r² are clamped to r². The sort is
// stable so equal distances keep row-major order.
func searchKernel(r int) []kernelEntry {
	maxD := r * r
	kernel := make([]kernelEntry, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			kernel = append(kernel, kernelEntry{dx: dx, dy: dy, d: min(dx*dx+dy*dy, maxD)})
		}
	}
	slices.SortStableFunc(kernel, func(a, b kernelEntry) int {
		return a.d - b.d
	})
	return kernel
}

// BruteForce computes, for every cell, the distance to the nearest cell of
// different occupancy within opts.Radius.
//
// The kernel is scanned in increasing distance order and the scan stops at
// the first in-grid neighbor whose occupancy differs. Distances are exact up
// to the radius; cells with no differing neighbor, and neighbors in the
// kernel corners beyond the radius, report opts.Radius. The whole field is
// exact only when opts.Radius is at least the grid diagonal; a radius equal
// to the larger dimension still clamps along diagonals. Values are unsigned
// (KindUnsigned).
//
// opts.Radius and opts.Workers are validated; an invalid value returns an
// *OptionsError.
//
// Rows are independent and run on opts.Workers goroutines; the result does
// not depend on the worker count.
func BruteForce(m *Mask, opts Options) (*Field, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	if err := opts.check(fieldRadius | fieldWorkers); err != nil {
		return nil, err
	}

	kernel := searchKernel(opts.Radius)
	f := newField(m.grid, KindUnsigned)
	g := m.grid

	parallel.Rows(g.Height, opts.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range g.Width {
				i := g.Index(x, y)
				f.Values[i] = nearestDifferent(m, kernel, x, y, opts.Radius)
			}
		}
	})

	Logger().Debug("distfield: brute force",
		"width", g.Width, "height", g.Height, "radius", opts.Radius, "kernel", len(kernel))
	return f, nil
}

// SignedBruteForce runs BruteForce and negates the values of occupied cells.
func SignedBruteForce(m *Mask, opts Options) (*Field, error) {
	f, err := BruteForce(m, opts)
	if err != nil {
		return nil, err
	}
	for i, occ := range m.data {
		if occ {
			f.Values[i] = -f.Values[i]
		}
	}
	f.Kind = KindSigned
	return f, nil
}

// nearestDifferent scans the kernel around (x, y).
func nearestDifferent(m *Mask, kernel []kernelEntry, x, y, radius int) float32 {
	self := m.data[m.grid.Index(x, y)]
	for _, k := range kernel {
		nx, ny := x+k.dx, y+k.dy
		if !m.grid.InBounds(nx, ny) {
			continue
		}
		if m.data[m.grid.Index(nx, ny)] != self {
			return float32(math.Sqrt(float64(k.d)))
		}
	}
	return float32(radius)
}
