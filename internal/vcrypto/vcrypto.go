// Package vcrypto implements (2,2) visual secret sharing: a message grid is
// split into a secret share and a ciphered share, each of which alone is
// indistinguishable from noise, while physically overlaying the two
// reconstructs the message at twice the linear resolution.
//
// Every message pixel becomes a 2×2 block of sub-pixels in each share. A
// secret block encodes one random key bit k as the pattern
//
//	k  ¬k
//	¬k k
//
// so every block holds exactly two set and two clear sub-pixels regardless
// of k. The ciphered share encodes k XOR m per block, where m is the
// message's ink bit: clear message pixels reproduce the secret's block,
// set message pixels its complement. ORing the shares therefore yields a
// solid block exactly where the message had ink, and the secret's own
// half-set texture everywhere else.
package vcrypto

import (
	"errors"

	"github.com/ageron/visual-crypto/internal/grid"
)

// ErrMalformedShare is returned when an existing secret share's dimensions
// are not an exact doubling of integral message dimensions.
var ErrMalformedShare = errors.New("malformed share")

// GenerateSecret builds a secret share for a width×height message, reusing
// key bits from existing where its blocks overlap the target and drawing
// fresh bits from src for the rest. existing may be nil; it is read-only and
// must hold even dimensions, else ErrMalformedShare. The returned grid is
// (2*width)×(2*height). Width or height below 1 yields grid.ErrInvalidSize.
//
// Blocks that exist in both grids keep their exact sub-pixel pattern, so a
// previously distributed secret share stays valid after the canvas grows.
// When existing covers the entire target no random bits are consumed and the
// result is a plain crop.
func GenerateSecret(width, height int, existing *grid.Grid, src BitSource) (*grid.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, grid.ErrInvalidSize
	}
	oldW, oldH := 0, 0
	if existing != nil {
		if existing.Width()%2 != 0 || existing.Height()%2 != 0 {
			return nil, ErrMalformedShare
		}
		oldW = existing.Width() / 2
		oldH = existing.Height() / 2
	}
	out, err := grid.New(2*width, 2*height)
	if err != nil {
		return nil, err
	}
	for my := 0; my < height; my++ {
		for mx := 0; mx < width; mx++ {
			var k bool
			if mx < oldW && my < oldH {
				// The top-left sub-pixel is the key bit by construction.
				k = existing.Bit(2*mx, 2*my)
			} else {
				k = src.Bit()
			}
			writeBlock(out, mx, my, k)
		}
	}
	return out, nil
}

// writeBlock encodes one key bit as the 2×2 block at message position (mx, my).
func writeBlock(g *grid.Grid, mx, my int, k bool) {
	x, y := 2*mx, 2*my
	g.SetBit(x, y, k)
	g.SetBit(x+1, y, !k)
	g.SetBit(x, y+1, !k)
	g.SetBit(x+1, y+1, k)
}

// Overlay returns the cell-wise boolean OR of two grids, modeling the
// physical stacking of two printed transparencies (ink accumulates).
// Returns grid.ErrSizeMismatch if the grids differ in size.
func Overlay(a, b *grid.Grid) (*grid.Grid, error) {
	return a.Or(b)
}
