package vcrypto

import (
	"runtime"
	"sync"

	"github.com/ageron/visual-crypto/internal/grid"
)

// GenerateCiphered combines a secret share with a prepared message grid into
// the ciphered share. secret must be exactly twice the message's size in
// both dimensions, else grid.ErrSizeMismatch. The inputs are read-only; the
// result is always freshly allocated.
//
// Blocks are mutually independent, so rows are processed in parallel bands.
// The output does not depend on scheduling: each position is a pure function
// of the two inputs.
func GenerateCiphered(secret, message *grid.Grid) (*grid.Grid, error) {
	w, h := message.Width(), message.Height()
	if secret.Width() != 2*w || secret.Height() != 2*h {
		return nil, grid.ErrSizeMismatch
	}
	out, err := grid.New(2*w, 2*h)
	if err != nil {
		return nil, err
	}

	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}

	// Workers own disjoint row bands, so they never write the same word.
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * h / workers
		hi := (i + 1) * h / workers
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			cipherRows(out, secret, message, w, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
	return out, nil
}

// cipherRows encodes message rows [lo, hi) into out.
func cipherRows(out, secret, message *grid.Grid, width, lo, hi int) {
	for my := lo; my < hi; my++ {
		for mx := 0; mx < width; mx++ {
			k := secret.Bit(2*mx, 2*my)
			m := message.Bit(mx, my)
			// Clear message pixel: mirror the secret's block, so the
			// overlay stays textured. Set pixel: complement it, so the
			// overlay goes solid.
			writeBlock(out, mx, my, k != m)
		}
	}
}
