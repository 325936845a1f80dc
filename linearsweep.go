package distfield

import (
	"math"
)

// noCandidate is the squared distance of a cell that has not seen an
// obstacle yet.
const noCandidate = math.MaxInt

// candidate is the best obstacle known for a cell: its position, which may
// lie just outside the grid, and its squared distance.
type candidate struct {
	x, y int
	d    int
}

// none is the seed of a cell without a candidate.
var none = candidate{x: -1, y: -1, d: noCandidate}

// resolved reports whether the candidate cannot be improved: the obstacle is
// the cell itself or one of its 4-neighbors.
func (c candidate) resolved() bool {
	return c.d <= 1
}

// propose returns cand re-measured from (x, y) when it is strictly closer
// than cur, and cur otherwise.
func propose(cur candidate, x, y int, cand candidate) candidate {
	if cur.resolved() || cand.d == noCandidate {
		return cur
	}
	dx, dy := x-cand.x, y-cand.y
	d := dx*dx + dy*dy
	if d < cur.d {
		return candidate{x: cand.x, y: cand.y, d: d}
	}
	return cur
}

// Neighbor sets of the sweep passes, in visiting order.
var (
	sweepForward  = [4]offset{{-1, 0}, {0, -1}, {-1, -1}, {1, -1}}
	sweepBackward = [4]offset{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
	sweepAll      = [8]offset{{-1, 0}, {0, -1}, {-1, -1}, {1, -1}, {1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// linearSweep holds the working buffer of one LinearSweep call.
type linearSweep struct {
	grid   Grid
	points []candidate
	border bool
}

// LinearSweep computes, for every cell, the distance to the nearest occupied
// cell. occupied classifies the elements of pix, which is a row-major buffer
// of g.Len() elements.
//
// Occupied cells start at distance 0 with themselves as candidate. With
// opts.BorderObstacles, empty cells on the grid border start with an
// obstacle just outside the grid at distance 1, so the border acts as an
// obstacle, and the passes only visit interior cells. Otherwise empty cells
// start without a candidate and the passes visit the whole grid.
//
// A forward pass (top-left to bottom-right) relaxes each cell against its
// left and upper neighbors, a backward pass against its right and lower
// neighbors. opts.ExtraPass adds a third pass over all eight neighbors,
// which repairs most errors two sweeps leave near diagonal obstacles;
// without it only the grid corners are patched up. Cells at squared
// distance <= 1 are final and skipped.
//
// Values are Euclidean distances (KindUnsigned) when opts.Normalize is set,
// squared distances (KindSquared) otherwise. Cells that never saw an
// obstacle hold math.MaxFloat32.
//
// When opts.Closest is set it receives the flat index of each cell's
// obstacle, ClosestBorder for obstacles outside the grid or ClosestNone.
func LinearSweep[T any](pix []T, g Grid, occupied func(T) bool, opts Options) (*Field, error) {
	if occupied == nil {
		return nil, ErrNilPredicate
	}
	if err := g.checkLen(len(pix)); err != nil {
		return nil, err
	}
	closest, err := opts.closestBuffer(g)
	if err != nil {
		return nil, err
	}

	s := &linearSweep{
		grid:   g,
		points: make([]candidate, g.Len()),
		border: opts.BorderObstacles,
	}
	obstacles := 0
	for i, p := range pix {
		occ := occupied(p)
		if occ {
			obstacles++
		}
		x, y := g.Coord(i)
		s.points[i] = s.seed(occ, x, y)
	}

	passes := 2
	s.pass(sweepForward[:], false)
	s.pass(sweepBackward[:], true)
	if opts.ExtraPass {
		s.pass(sweepAll[:], false)
		passes++
	} else {
		s.patchCorners()
	}

	kind := KindSquared
	if opts.Normalize {
		kind = KindUnsigned
	}
	f := newField(g, kind)
	for i, c := range s.points {
		switch {
		case c.d == noCandidate:
			f.Values[i] = math.MaxFloat32
		case opts.Normalize:
			f.Values[i] = float32(math.Sqrt(float64(c.d)))
		default:
			f.Values[i] = float32(c.d)
		}
	}
	if closest != nil {
		for i, c := range s.points {
			closest[i] = s.closestIndex(c)
		}
		f.Closest = closest
	}

	Logger().Debug("distfield: linear sweep",
		"width", g.Width, "height", g.Height, "obstacles", obstacles,
		"passes", passes, "border", s.border)
	return f, nil
}

// LinearSweepGray runs LinearSweep on an 8-bit buffer; a pixel is an
// obstacle when it is greater than opts.Threshold.
func LinearSweepGray(pix []byte, g Grid, opts Options) (*Field, error) {
	threshold := opts.Threshold
	return LinearSweep(pix, g, func(p byte) bool { return p > threshold }, opts)
}

// LinearSweepMask runs LinearSweep with the occupied cells of m as obstacles.
func LinearSweepMask(m *Mask, opts Options) (*Field, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	return LinearSweep(m.data, m.grid, func(occ bool) bool { return occ }, opts)
}

// SignedLinearSweep combines two sweeps into a signed field: occupied cells
// get the negated distance to the nearest empty cell, empty cells the
// distance to the nearest occupied cell, both shifted by half a cell so the
// zero level lies between cell centers.
//
// The inside sweep follows opts.BorderObstacles, so with the default the
// area outside the grid counts as empty. The outside sweep never treats the
// border as an obstacle. Cells that saw no obstacle keep ±math.MaxFloat32.
func SignedLinearSweep(m *Mask, opts Options) (*Field, error) {
	if m == nil {
		return nil, ErrNilMask
	}
	closest, err := opts.closestBuffer(m.grid)
	if err != nil {
		return nil, err
	}

	inOpts, outOpts := opts, opts
	inOpts.Normalize, outOpts.Normalize = true, true
	outOpts.BorderObstacles = false
	inOpts.Closest, outOpts.Closest = nil, nil
	if closest != nil {
		inOpts.Closest = make([]int, m.grid.Len())
		outOpts.Closest = make([]int, m.grid.Len())
	}

	inside, err := LinearSweepMask(m.Invert(), inOpts)
	if err != nil {
		return nil, err
	}
	outside, err := LinearSweepMask(m, outOpts)
	if err != nil {
		return nil, err
	}

	f := newField(m.grid, KindSigned)
	for i, occ := range m.data {
		if occ {
			f.Values[i] = -halfShift(inside.Values[i])
		} else {
			f.Values[i] = halfShift(outside.Values[i])
		}
	}
	if closest != nil {
		for i, occ := range m.data {
			if occ {
				closest[i] = inOpts.Closest[i]
			} else {
				closest[i] = outOpts.Closest[i]
			}
		}
		f.Closest = closest
	}
	return f, nil
}

// halfShift moves a distance half a cell towards the obstacle, leaving the
// no-obstacle marker alone.
func halfShift(d float32) float32 {
	if d == math.MaxFloat32 {
		return d
	}
	return d - 0.5
}

// seed returns the starting candidate of (x, y).
func (s *linearSweep) seed(occupied bool, x, y int) candidate {
	if occupied {
		return candidate{x: x, y: y, d: 0}
	}
	if !s.border {
		return none
	}
	switch {
	case x == 0:
		return candidate{x: -1, y: y, d: 1}
	case y == 0:
		return candidate{x: x, y: -1, d: 1}
	case x == s.grid.Width-1:
		return candidate{x: s.grid.Width, y: y, d: 1}
	case y == s.grid.Height-1:
		return candidate{x: x, y: s.grid.Height, d: 1}
	}
	return none
}

// pass relaxes every unresolved cell against the given neighbors, scanning
// rows top to bottom, or bottom to top when reverse is set.
func (s *linearSweep) pass(neighbors []offset, reverse bool) {
	// Border cells are already resolved in the border variant.
	lo := 0
	if s.border {
		lo = 1
	}
	xEnd, yEnd := s.grid.Width-1-lo, s.grid.Height-1-lo
	if reverse {
		for y := yEnd; y >= lo; y-- {
			for x := xEnd; x >= lo; x-- {
				s.relax(x, y, neighbors)
			}
		}
		return
	}
	for y := lo; y <= yEnd; y++ {
		for x := lo; x <= xEnd; x++ {
			s.relax(x, y, neighbors)
		}
	}
}

// patchCorners relaxes the four grid corners against all their neighbors.
func (s *linearSweep) patchCorners() {
	w, h := s.grid.Width, s.grid.Height
	for _, c := range [4][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		s.relax(c[0], c[1], sweepAll[:])
	}
}

// relax proposes the candidates of the in-grid neighbors of (x, y).
func (s *linearSweep) relax(x, y int, neighbors []offset) {
	i := s.grid.Index(x, y)
	cur := s.points[i]
	if cur.resolved() {
		return
	}
	for _, o := range neighbors {
		nx, ny := x+o.dx, y+o.dy
		if !s.grid.InBounds(nx, ny) {
			continue
		}
		cur = propose(cur, x, y, s.points[s.grid.Index(nx, ny)])
	}
	s.points[i] = cur
}

// closestIndex encodes a candidate for Field.Closest.
func (s *linearSweep) closestIndex(c candidate) int {
	switch {
	case c.d == noCandidate:
		return ClosestNone
	case !s.grid.InBounds(c.x, c.y):
		return ClosestBorder
	default:
		return s.grid.Index(c.x, c.y)
	}
}
