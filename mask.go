package distfield

import (
	"image"

	"github.com/gogpu/distfield/internal/imageio"
)

// Mask is a binary occupancy mask. Occupied cells are the foreground (inside
// a shape), empty cells the background.
//
// The transforms never modify a Mask.
type Mask struct {
	grid Grid
	data []bool
}

// NewMask creates an empty mask with the given dimensions.
func NewMask(width, height int) (*Mask, error) {
	g := Grid{Width: width, Height: height}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &Mask{grid: g, data: make([]bool, g.Len())}, nil
}

// MaskFromBytes thresholds an 8-bit buffer: a cell is occupied when its
// value is greater than threshold.
func MaskFromBytes(pix []byte, width, height int, threshold byte) (*Mask, error) {
	return MaskFromFunc(pix, width, height, func(p byte) bool { return p > threshold })
}

// MaskFromFunc builds a mask from an arbitrary pixel buffer and an occupancy
// predicate.
func MaskFromFunc[T any](pix []T, width, height int, occupied func(T) bool) (*Mask, error) {
	if occupied == nil {
		return nil, ErrNilPredicate
	}
	g := Grid{Width: width, Height: height}
	if err := g.checkLen(len(pix)); err != nil {
		return nil, err
	}
	m := &Mask{grid: g, data: make([]bool, len(pix))}
	for i, p := range pix {
		m.data[i] = occupied(p)
	}
	return m, nil
}

// MaskFromImage thresholds the luminance of img: a cell is occupied when its
// 8-bit gray value is greater than threshold.
func MaskFromImage(img image.Image, threshold byte) (*Mask, error) {
	pix, w, h := imageio.Gray(img)
	return MaskFromBytes(pix, w, h, threshold)
}

// Grid returns the mask dimensions.
func (m *Mask) Grid() Grid { return m.grid }

// Width returns the mask width.
func (m *Mask) Width() int { return m.grid.Width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.grid.Height }

// At reports whether (x, y) is occupied.
// Coordinates outside the mask read as empty.
func (m *Mask) At(x, y int) bool {
	if !m.grid.InBounds(x, y) {
		return false
	}
	return m.data[m.grid.Index(x, y)]
}

// Occupied reports whether the cell at linear index i is occupied.
func (m *Mask) Occupied(i int) bool {
	return m.data[i]
}

// Set sets the occupancy of (x, y).
// Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, occupied bool) {
	if !m.grid.InBounds(x, y) {
		return
	}
	m.data[m.grid.Index(x, y)] = occupied
}

// Fill sets every cell to occupied.
func (m *Mask) Fill(occupied bool) {
	for i := range m.data {
		m.data[i] = occupied
	}
}

// FillRect marks the cells of r (clipped to the mask) as occupied.
func (m *Mask) FillRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, m.grid.Width, m.grid.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.data[m.grid.Index(x, y)] = true
		}
	}
}

// Count returns the number of occupied cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Invert returns a new mask with occupied and empty cells swapped.
func (m *Mask) Invert() *Mask {
	inv := &Mask{grid: m.grid, data: make([]bool, len(m.data))}
	for i, v := range m.data {
		inv.data[i] = !v
	}
	return inv
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := &Mask{grid: m.grid, data: make([]bool, len(m.data))}
	copy(c.data, m.data)
	return c
}
