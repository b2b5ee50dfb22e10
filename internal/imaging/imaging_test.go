package imaging_test

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/ageron/visual-crypto/internal/grid"
	"github.com/ageron/visual-crypto/internal/imaging"
)

// checker builds a w×h grayscale image whose pixel (x,y) is black when
// on(x,y) is true, white otherwise.
func checker(w, h int, on func(x, y int) bool) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0xFF)
			if on(x, y) {
				v = 0x00
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestToGridPolarity(t *testing.T) {
	img := checker(4, 2, func(x, y int) bool { return x == y })
	g, err := imaging.ToGrid(img, imaging.DefaultCutoff)
	if err != nil {
		t.Fatalf("ToGrid() error: %v", err)
	}
	if g.Width() != 4 || g.Height() != 2 {
		t.Fatalf("grid size = %dx%d, want 4x2", g.Width(), g.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if g.Bit(x, y) != (x == y) {
				t.Errorf("bit (%d,%d) = %v, want %v (black pixels are ink)", x, y, g.Bit(x, y), x == y)
			}
		}
	}
}

func TestToImageRoundTrip(t *testing.T) {
	g, _ := grid.New(5, 3)
	g.SetBit(0, 0, true)
	g.SetBit(4, 2, true)
	g.SetBit(2, 1, true)

	back, err := imaging.ToGrid(imaging.ToImage(g), imaging.DefaultCutoff)
	if err != nil {
		t.Fatalf("ToGrid() error: %v", err)
	}
	if !g.Equals(back) {
		t.Error("grid should survive a ToImage/ToGrid round trip")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g, _ := grid.New(6, 4)
	g.SetBit(1, 1, true)
	g.SetBit(5, 3, true)

	for _, name := range []string{"share.png", "share.bmp"} {
		path := filepath.Join(t.TempDir(), name)
		if err := imaging.Save(path, imaging.ToImage(g)); err != nil {
			t.Fatalf("Save(%s) error: %v", name, err)
		}
		img, err := imaging.Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error: %v", name, err)
		}
		back, err := imaging.ToGrid(img, imaging.DefaultCutoff)
		if err != nil {
			t.Fatalf("ToGrid() error: %v", err)
		}
		if !g.Equals(back) {
			t.Errorf("%s: grid should survive a save/load round trip", name)
		}
	}
}

func TestSaveUnsupportedExtension(t *testing.T) {
	g, _ := grid.New(2, 2)
	path := filepath.Join(t.TempDir(), "share.webp")
	if err := imaging.Save(path, imaging.ToImage(g)); err == nil {
		t.Error("Save() should fail for an unsupported extension")
	}
}

func TestPrepareMessageKeepsSize(t *testing.T) {
	img := checker(8, 6, func(x, y int) bool { return x < 4 })
	g, err := imaging.PrepareMessage(img, 8, 6, 50)
	if err != nil {
		t.Fatalf("PrepareMessage() error: %v", err)
	}
	if g.Width() != 8 || g.Height() != 6 {
		t.Fatalf("prepared size = %dx%d, want 8x6", g.Width(), g.Height())
	}
	// No resampling happened, so the halves must be exact.
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if g.Bit(x, y) != (x < 4) {
				t.Errorf("bit (%d,%d) = %v, want %v", x, y, g.Bit(x, y), x < 4)
			}
		}
	}
}

func TestPrepareMessageResizes(t *testing.T) {
	black := checker(9, 9, func(x, y int) bool { return true })
	g, err := imaging.PrepareMessage(black, 3, 4, 50)
	if err != nil {
		t.Fatalf("PrepareMessage() error: %v", err)
	}
	if g.Width() != 3 || g.Height() != 4 {
		t.Fatalf("prepared size = %dx%d, want 3x4", g.Width(), g.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			if !g.Bit(x, y) {
				t.Errorf("bit (%d,%d) should stay inked after resizing a black image", x, y)
			}
		}
	}

	white := checker(9, 9, func(x, y int) bool { return false })
	g, err = imaging.PrepareMessage(white, 3, 4, 50)
	if err != nil {
		t.Fatalf("PrepareMessage() error: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			if g.Bit(x, y) {
				t.Errorf("bit (%d,%d) should stay blank after resizing a white image", x, y)
			}
		}
	}
}

func TestPrepareMessageInvalidSize(t *testing.T) {
	img := checker(4, 4, func(x, y int) bool { return false })
	if _, err := imaging.PrepareMessage(img, 0, 4, 50); err == nil {
		t.Error("PrepareMessage() should reject a zero width")
	}
	if _, err := imaging.PrepareMessage(img, 4, -1, 50); err == nil {
		t.Error("PrepareMessage() should reject a negative height")
	}
}
