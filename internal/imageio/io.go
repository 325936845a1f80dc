// Package imageio loads source images and writes distance field images.
//
// Decoding registers PNG, JPEG and GIF from the standard library and BMP,
// TIFF and WebP from golang.org/x/image. Encoding is chosen by file
// extension.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when no encoder matches the file extension.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// jpegQuality is used for .jpg and .jpeg outputs.
const jpegQuality = 95

// Load decodes the image at path, detecting the format from its content.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadBytes decodes an image from a byte slice.
func LoadBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from r, detecting the format from its content.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

// Save writes img to path with the encoder matching the file extension:
// .png, .bmp, .tif, .tiff, .jpg or .jpeg.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, img, ext); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Supported reports whether Save can write files with the given extension.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".bmp", ".tif", ".tiff", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Encode writes img to w in the format named by ext.
func Encode(w io.Writer, img image.Image, ext string) error {
	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(w, img)
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", strings.TrimPrefix(ext, "."), err)
	}
	return nil
}

// Gray flattens img to row-major 8-bit luminance.
func Gray(img image.Image) (pix []byte, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pix = make([]byte, width*height)

	// Fast path for gray images
	if g, ok := img.(*image.Gray); ok {
		for y := range height {
			src := g.Pix[y*g.Stride : y*g.Stride+width]
			copy(pix[y*width:], src)
		}
		return pix, width, height
	}

	for y := range height {
		for x := range width {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			pix[y*width+x] = c.Y
		}
	}
	return pix, width, height
}
