package distfield

import (
	"math"
)

// drOffsets are the neighbors visited by the forward pass. The backward pass
// visits their point mirror in reverse order.
var drOffsets = [4]offset{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}}

// drSteps are the lengths of drOffsets.
var drSteps = [4]float32{math.Sqrt2, 1, math.Sqrt2, 1}

// deadReckoning holds the working buffers of one DeadReckoning call.
type deadReckoning struct {
	grid    Grid
	mask    *Mask
	dist    []float32
	nearest []int // flat index of the nearest boundary cell
}

// DeadReckoning computes a signed Euclidean distance field with the two-pass
// dead reckoning algorithm (Grevera 2004).
//
// Boundary cells are occupied cells with at least one 4-neighbor of
// different occupancy; cells outside the grid count as empty. Every cell
// starts with itself as nearest point, at distance 0 on the boundary and
// opts.Background elsewhere. A forward and a backward pass then propagate
// nearest points: a cell adopts the nearest point of a neighbor when the
// neighbor's distance plus the step length beats its own, and recomputes its
// distance exactly from the adopted point. Occupied cells are negated at the
// end.
//
// A mask without boundary cells (all empty) keeps opts.Background everywhere.
// A negative or NaN opts.Background returns an *OptionsError.
//
// When opts.Closest is set it receives the flat index of the nearest
// boundary cell of every cell.
func DeadReckoning(m *Mask, opts Options) (*Field, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	if err := opts.check(fieldBackground); err != nil {
		return nil, err
	}
	closest, err := opts.closestBuffer(m.grid)
	if err != nil {
		return nil, err
	}

	dr := &deadReckoning{
		grid:    m.grid,
		mask:    m,
		dist:    make([]float32, m.grid.Len()),
		nearest: make([]int, m.grid.Len()),
	}
	boundary := dr.init(opts.background())

	w, h := m.grid.Width, m.grid.Height
	for y := range h {
		for x := range w {
			for i := range drOffsets {
				dr.relax(x, y, drOffsets[i], drSteps[i])
			}
		}
	}
	for y := h - 1; y >= 0; y-- {
		for x := w - 1; x >= 0; x-- {
			for i := len(drOffsets) - 1; i >= 0; i-- {
				o := drOffsets[i]
				dr.relax(x, y, offset{-o.dx, -o.dy}, drSteps[i])
			}
		}
	}

	f := newField(m.grid, KindSigned)
	for i, d := range dr.dist {
		if m.data[i] {
			d = -d
		}
		f.Values[i] = d
	}
	if closest != nil {
		copy(closest, dr.nearest)
		f.Closest = closest
	}

	Logger().Debug("distfield: dead reckoning",
		"width", w, "height", h, "boundary", boundary)
	return f, nil
}

// init seeds every cell with itself as nearest point and returns the number
// of boundary cells.
func (dr *deadReckoning) init(background float32) int {
	boundary := 0
	for y := range dr.grid.Height {
		for x := range dr.grid.Width {
			i := dr.grid.Index(x, y)
			dr.nearest[i] = i
			if dr.isBoundary(x, y) {
				dr.dist[i] = 0
				boundary++
			} else {
				dr.dist[i] = background
			}
		}
	}
	return boundary
}

// isBoundary reports whether an occupied cell has a 4-neighbor of different
// occupancy.
func (dr *deadReckoning) isBoundary(x, y int) bool {
	c := dr.mask.At(x, y)
	if !c {
		return false
	}
	return dr.mask.At(x-1, y) != c || dr.mask.At(x+1, y) != c ||
		dr.mask.At(x, y-1) != c || dr.mask.At(x, y+1) != c
}

// relax lets (x, y) adopt the nearest point of its neighbor at o.
func (dr *deadReckoning) relax(x, y int, o offset, step float32) {
	nx, ny := x+o.dx, y+o.dy
	if !dr.grid.InBounds(nx, ny) {
		return
	}
	i := dr.grid.Index(x, y)
	n := dr.grid.Index(nx, ny)
	if dr.dist[n]+step >= dr.dist[i] {
		return
	}
	p := dr.nearest[n]
	px, py := dr.grid.Coord(p)
	dr.nearest[i] = p
	dr.dist[i] = float32(math.Hypot(float64(x-px), float64(y-py)))
}
