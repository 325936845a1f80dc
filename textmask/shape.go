package textmask

import (
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// placedGlyph is a shaped glyph with its pen position in pixels, y down,
// relative to the start of the baseline.
type placedGlyph struct {
	gid  uint16
	x, y float64
}

// run is a maximal substring with a single direction.
type run struct {
	text string
	dir  di.Direction
}

// splitRuns returns the bidi runs of s in visual order. A string the bidi
// package cannot order is returned as one left-to-right run.
func splitRuns(s string) []run {
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return []run{{text: s, dir: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []run{{text: s, dir: di.DirectionLTR}}
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := range ordering.NumRuns() {
		r := ordering.Run(i)
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{text: r.String(), dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// shaper lays out text with HarfBuzz shaping.
type shaper struct {
	font *gotext.Font
	hb   shaping.HarfbuzzShaper
	size fixed.Int26_6
}

// newShaper creates a shaper for f at the given size in pixels per em.
func newShaper(f *gotext.Font, size float64) *shaper {
	return &shaper{font: f, size: floatToFixed(size)}
}

// layout shapes every run of s and places the glyphs left to right. It
// returns the glyphs and the total advance in pixels.
func (s *shaper) layout(text string) ([]placedGlyph, float64) {
	var (
		glyphs []placedGlyph
		pen    float64
	)
	for _, r := range splitRuns(text) {
		runes := []rune(r.text)
		if len(runes) == 0 {
			continue
		}
		out := s.hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: r.dir,
			Face:      gotext.NewFace(s.font),
			Size:      s.size,
			Script:    detectScript(runes),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			glyphs = append(glyphs, placedGlyph{
				gid: uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16 bit
				x:   pen + fixedToFloat(g.XOffset),
				y:   -fixedToFloat(g.YOffset),
			})
			pen += fixedToFloat(g.Advance)
		}
	}
	return glyphs, pen
}

// floatToFixed converts a size in pixels to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
