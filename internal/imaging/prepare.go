package imaging

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"

	"github.com/ageron/visual-crypto/internal/grid"
)

// PrepareMessage resizes img to width×height when its size differs and
// binarizes it into an ink grid. threshold is the black/white split point as
// a percentage of full brightness (50 splits at mid-gray). Width or height
// below 1 yields grid.ErrInvalidSize.
func PrepareMessage(img image.Image, width, height int, threshold float32) (*grid.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, grid.ErrInvalidSize
	}
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		img = resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
	}

	flt := gift.New(
		gift.Grayscale(),
		gift.Threshold(threshold),
	)
	bw := image.NewGray(flt.Bounds(img.Bounds()))
	flt.Draw(bw, img)

	return ToGrid(bw, DefaultCutoff)
}
