package distfield

import (
	"math"
)

// eikonalFar is the magnitude given to non-edge cells before sweeping.
const eikonalFar = 99999

// eikonalCell is one cell of the Eikonal working buffer.
type eikonalCell struct {
	dist float32
	edge bool // edge cells are fixed points of the sweep
}

// eikonal holds the working buffer of one EikonalSweep call.
type eikonal struct {
	grid  Grid
	cells []eikonalCell
}

// EikonalSweep approximates the solution of |∇d| = 1 with d fixed on the
// boundary between outer and inner cells.
//
// seed maps a linear index to a signed starting value: values > 0 mark outer
// cells, values <= 0 inner cells. A cell is an edge cell when one of its
// eight neighbors, with cells outside the grid counting as outer, is on the
// other side. Edge cells keep their seed value. All other cells restart at
// ±99999 and are relaxed by four sweeps (x ascending then descending, each
// with y ascending and descending).
//
// The result is an approximation from a fixed number of sweeps, not an exact
// Euclidean transform. Outer values are positive, inner values negative.
func EikonalSweep(g Grid, seed func(i int) float32) ([]float32, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, ErrNilPredicate
	}

	e := &eikonal{grid: g, cells: make([]eikonalCell, g.Len())}
	outer := 0
	for i := range e.cells {
		v := seed(i)
		if v > 0 {
			outer++
		}
		e.cells[i].dist = v
	}

	edges := e.markEdges()
	e.sweep()

	out := make([]float32, len(e.cells))
	for i, c := range e.cells {
		out[i] = c.dist
	}

	Logger().Debug("distfield: eikonal sweep",
		"width", g.Width, "height", g.Height, "outer", outer, "edges", edges)
	return out, nil
}

// Eikonal runs EikonalSweep on a mask, seeding occupied cells with -0.5 and
// empty cells with +0.5.
func Eikonal(m *Mask) (*Field, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	values, err := EikonalSweep(m.grid, func(i int) float32 {
		if m.data[i] {
			return -0.5
		}
		return 0.5
	})
	if err != nil {
		return nil, err
	}
	f := newField(m.grid, KindSigned)
	f.Values = values
	return f, nil
}

// isOuter reports whether (x, y) is outside the shape. Cells outside the
// grid are outer.
func (e *eikonal) isOuter(x, y int) bool {
	if !e.grid.InBounds(x, y) {
		return true
	}
	return e.cells[e.grid.Index(x, y)].dist > 0
}

// isEdge reports whether one of the eight neighbors of (x, y) is on the
// other side of the boundary.
func (e *eikonal) isEdge(x, y int) bool {
	outer := e.isOuter(x, y)
	for _, o := range neighbors8 {
		if e.isOuter(x+o.dx, y+o.dy) != outer {
			return true
		}
	}
	return false
}

// markEdges flags edge cells and resets every other cell to ±eikonalFar.
// Classification reads the seeds only, so it is done before any reset.
func (e *eikonal) markEdges() int {
	edges := 0
	for y := range e.grid.Height {
		for x := range e.grid.Width {
			if e.isEdge(x, y) {
				e.cells[e.grid.Index(x, y)].edge = true
				edges++
			}
		}
	}
	for i := range e.cells {
		c := &e.cells[i]
		if c.edge {
			continue
		}
		if c.dist > 0 {
			c.dist = eikonalFar
		} else {
			c.dist = -eikonalFar
		}
	}
	return edges
}

// sweep runs the four monotone sweeps.
func (e *eikonal) sweep() {
	w, h := e.grid.Width, e.grid.Height
	for x := range w {
		for y := range h {
			e.solve(x, y)
		}
		for y := h - 1; y >= 0; y-- {
			e.solve(x, y)
		}
	}
	for x := w - 1; x >= 0; x-- {
		for y := range h {
			e.solve(x, y)
		}
		for y := h - 1; y >= 0; y-- {
			e.solve(x, y)
		}
	}
}

// solve updates a non-edge cell from its four axis neighbors.
func (e *eikonal) solve(x, y int) {
	c := &e.cells[e.grid.Index(x, y)]
	if c.edge {
		return
	}

	// Work on magnitudes, restore the sign at the end.
	sign := float32(1)
	if c.dist < 0 {
		sign = -1
	}
	current := sign * c.dist

	horizontal := float32(math.MaxFloat32)
	if x > 0 {
		horizontal = min(horizontal, sign*e.cells[e.grid.Index(x-1, y)].dist)
	}
	if x < e.grid.Width-1 {
		horizontal = min(horizontal, sign*e.cells[e.grid.Index(x+1, y)].dist)
	}
	vertical := float32(math.MaxFloat32)
	if y > 0 {
		vertical = min(vertical, sign*e.cells[e.grid.Index(x, y-1)].dist)
	}
	if y < e.grid.Height-1 {
		vertical = min(vertical, sign*e.cells[e.grid.Index(x, y+1)].dist)
	}
	if horizontal == math.MaxFloat32 && vertical == math.MaxFloat32 {
		return
	}

	c.dist = sign * min(current, solveEikonal2D(horizontal, vertical))
}

// solveEikonal1D is the update along a single axis.
func solveEikonal1D(horizontal, vertical float32) float32 {
	return min(horizontal, vertical) + 1
}

// solveEikonal2D solves (d-h)² + (d-v)² = 1 for the larger root when the
// neighbors are less than one cell apart, and falls back to the 1D update
// otherwise.
//
// Under |h-v| < 1 the discriminant equals 2-(h-v)² > 1; it is computed in
// float64 and clamped so that rounding near float32 limits cannot yield NaN.
func solveEikonal2D(horizontal, vertical float32) float32 {
	if math.Abs(float64(horizontal-vertical)) >= 1 {
		return solveEikonal1D(horizontal, vertical)
	}
	h, v := float64(horizontal), float64(vertical)
	sum := h + v
	disc := sum*sum - 2*(h*h+v*v-1)
	if disc < 0 {
		disc = 0
	}
	return float32(0.5 * (sum + math.Sqrt(disc)))
}
