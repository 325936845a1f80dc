package distfield

import "fmt"

// Grid describes the dimensions of a row-major raster.
// Cell (x, y) is stored at linear index y*Width + x.
type Grid struct {
	Width  int
	Height int
}

// Validate reports ErrInvalidSize when either dimension is less than 1.
func (g Grid) Validate() error {
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, g.Width, g.Height)
	}
	return nil
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return g.Width * g.Height
}

// Index returns the linear index of (x, y). The coordinate is not checked.
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coord converts a linear index back to (x, y).
func (g Grid) Coord(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// checkLen validates the grid and a buffer length against it.
func (g Grid) checkLen(n int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if n != g.Len() {
		return fmt.Errorf("%w: len %d, want %d", ErrSizeMismatch, n, g.Len())
	}
	return nil
}

// offset is a relative neighbor position.
type offset struct {
	dx, dy int
}

// neighbors8 lists all eight neighbor offsets, row by row.
var neighbors8 = [8]offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
