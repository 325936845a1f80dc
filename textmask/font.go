package textmask

import (
	"bytes"
	"fmt"
	"hash/maphash"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/distfield/internal/cache"
)

// fontCacheSize is the number of parsed fonts kept between Render calls.
const fontCacheSize = 16

// parsedFont holds one font file parsed for shaping and for outlines.
// Both parsed forms are read-only and safe for concurrent use.
type parsedFont struct {
	data     []byte
	shaping  *gotext.Font
	outlines *sfnt.Font
}

var (
	fontSeed = maphash.MakeSeed()
	fonts    = cache.New[uint64, *parsedFont](fontCacheSize)
)

// loadFont returns data parsed, reusing an earlier parse of the same bytes.
func loadFont(data []byte) (*parsedFont, error) {
	key := maphash.Bytes(fontSeed, data)
	f, err := fonts.GetOrCreate(key, func() (*parsedFont, error) {
		return parseFont(data)
	})
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(f.data, data) {
		// Hash collision.
		return parseFont(data)
	}
	return f, nil
}

// parseFont parses data with both font libraries.
func parseFont(data []byte) (*parsedFont, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmask: parse font for shaping: %w", err)
	}
	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textmask: parse font: %w", err)
	}
	return &parsedFont{data: data, shaping: face.Font, outlines: outlines}, nil
}
