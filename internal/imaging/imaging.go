// Package imaging converts between image files and binary ink grids. It
// decodes PNG, JPEG, GIF and BMP, binarizes by luminance, and prepares
// message images (resize + threshold) for the share encoder.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/ageron/visual-crypto/internal/grid"
)

// DefaultCutoff is the luminance below which a pixel counts as ink.
const DefaultCutoff = 128

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img to path. The format is chosen by file extension:
// .png, .bmp, .jpg/.jpeg.
func Save(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	case ".jpg", ".jpeg":
		encode = func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }
	default:
		return fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// ToGrid binarizes img into an ink grid: pixels whose luminance falls below
// cutoff become set bits. Fully transparent pixels count as blank.
func ToGrid(img image.Image, cutoff uint8) (*grid.Grid, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	g, err := grid.New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if luminance(c) < cutoff {
				g.SetBit(x, y, true)
			}
		}
	}
	return g, nil
}

// luminance converts a color to 8-bit grayscale using the 306/601/117
// integer approximation of the ITU-R 601 weights.
func luminance(c color.Color) uint8 {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0xFF
	}
	return uint8((306*(r>>8) + 601*(g>>8) + 117*(b>>8) + 0x200) >> 10)
}

// ToImage renders g as a grayscale image, set bits drawn black on white.
func ToImage(g *grid.Grid) *image.Gray {
	w, h := g.Width(), g.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0xFF)
			if g.Bit(x, y) {
				v = 0x00
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}
