// Package textmask renders a string into a distfield.Mask.
//
// Text is split into bidirectional runs with golang.org/x/text/unicode/bidi,
// each run is shaped with the HarfBuzz port of go-text/typesetting, glyph
// outlines are loaded with golang.org/x/image/font/sfnt and the coverage is
// rasterized with golang.org/x/image/vector. The coverage is thresholded
// into a mask suitable for any distfield transform.
//
//	m, err := textmask.Render("Hello", textmask.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	f, err := distfield.SignedLinearSweep(m, distfield.DefaultOptions())
package textmask
