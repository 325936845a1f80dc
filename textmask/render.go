package textmask

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"

	"github.com/gogpu/distfield"
)

// point is a position in pixels, y down.
type point struct{ x, y float32 }

// Render rasterizes text and returns a mask where cells with coverage
// greater than opts.Threshold are occupied.
//
// The mask covers the ink of every glyph and the line box (total advance by
// ascent plus descent), with opts.Padding empty cells on every side.
func Render(text string, opts Options) (*distfield.Mask, error) {
	img, err := RenderAlpha(text, opts)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return distfield.MaskFromBytes(img.Pix, b.Dx(), b.Dy(), opts.Threshold)
}

// RenderAlpha rasterizes text into an 8-bit coverage image. See Render.
func RenderAlpha(text string, opts Options) (*image.Alpha, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	data, size := opts.font(), opts.size()

	pf, err := loadFont(data)
	if err != nil {
		return nil, err
	}
	f := pf.outlines

	glyphs, advance := newShaper(pf.shaping, size).layout(text)

	var buf sfnt.Buffer
	ppem := floatToFixed(size)
	metrics, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("textmask: font metrics: %w", err)
	}

	// Start from the line box and grow it to the ink.
	minX, minY := 0.0, -fixedToFloat(metrics.Ascent)
	maxX, maxY := advance, fixedToFloat(metrics.Descent)

	outlines := make([]sfnt.Segments, 0, len(glyphs))
	for _, g := range glyphs {
		segs, err := f.LoadGlyph(&buf, sfnt.GlyphIndex(g.gid), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("textmask: load glyph %d: %w", g.gid, err)
		}
		// LoadGlyph reuses buf, keep a copy.
		segs = append(sfnt.Segments(nil), segs...)
		outlines = append(outlines, segs)
		for _, seg := range segs {
			for _, a := range seg.Args[:argCount(seg.Op)] {
				x, y := g.x+fixedToFloat(a.X), g.y+fixedToFloat(a.Y)
				minX, maxX = math.Min(minX, x), math.Max(maxX, x)
				minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			}
		}
	}

	pad := float64(opts.Padding)
	originX := pad - math.Floor(minX)
	originY := pad - math.Floor(minY)
	w := int(math.Ceil(maxX)-math.Floor(minX)) + 2*opts.Padding
	h := int(math.Ceil(maxY)-math.Floor(minY)) + 2*opts.Padding
	w, h = max(w, 1), max(h, 1)

	r := vector.NewRasterizer(w, h)
	for i, g := range glyphs {
		drawSegments(r, outlines[i], point{float32(originX + g.x), float32(originY + g.y)})
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	stats := fonts.Stats()
	distfield.Logger().Debug("textmask: render",
		"runes", len([]rune(text)), "glyphs", len(glyphs), "size", size,
		"width", w, "height", h,
		"font_cache_hits", stats.Hits, "font_cache_misses", stats.Misses)
	return dst, nil
}

// argCount is the number of points used by a segment op.
func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// drawSegments adds a glyph outline at origin to r, closing every contour.
func drawSegments(r *vector.Rasterizer, segs sfnt.Segments, origin point) {
	at := func(p int, seg sfnt.Segment) (float32, float32) {
		a := seg.Args[p]
		return origin.x + float32(a.X)/64, origin.y + float32(a.Y)/64
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(at(0, seg))
			open = true
		case sfnt.SegmentOpLineTo:
			r.LineTo(at(0, seg))
		case sfnt.SegmentOpQuadTo:
			bx, by := at(0, seg)
			cx, cy := at(1, seg)
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := at(0, seg)
			cx, cy := at(1, seg)
			dx, dy := at(2, seg)
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		r.ClosePath()
	}
}
