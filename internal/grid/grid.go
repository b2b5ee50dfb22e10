// Package grid provides a compact two-dimensional grid of single-bit pixels,
// addressed by column x and row y with the origin at the top-left. A set bit
// represents ink (dark); a clear bit is blank (light).
package grid

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSize is returned when a grid dimension is negative or a
	// requested target size is not positive.
	ErrInvalidSize = errors.New("invalid size")

	// ErrOutOfBounds is returned when a cell access lies outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrSizeMismatch is returned when two grids passed to a combining
	// operation disagree in size.
	ErrSizeMismatch = errors.New("size mismatch")
)

// Grid is a rectangular bit grid backed by packed uint32 rows.
// The zero value is an empty 0×0 grid.
type Grid struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// New creates a grid of the given size with every bit clear.
func New(width, height int) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidSize
	}
	rowSize := (width + 31) / 32
	return &Grid{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}, nil
}

// NewFilled creates a grid of the given size with every bit set to fill.
func NewFilled(width, height int, fill bool) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if fill {
		full := ^uint32(0)
		// Keep bits past the row end clear so word-wise Equals stays exact.
		last := full
		if width%32 != 0 {
			last = (1 << uint(width%32)) - 1
		}
		for y := 0; y < height; y++ {
			row := g.data[y*g.rowSize : (y+1)*g.rowSize]
			for i := range row {
				row[i] = full
			}
			if len(row) > 0 {
				row[len(row)-1] = last
			}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the bit at (x, y), or ErrOutOfBounds if the cell lies outside
// the grid.
func (g *Grid) At(x, y int) (bool, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false, ErrOutOfBounds
	}
	return g.Bit(x, y), nil
}

// Set writes the bit at (x, y), or returns ErrOutOfBounds if the cell lies
// outside the grid.
func (g *Grid) Set(x, y int, v bool) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return ErrOutOfBounds
	}
	g.SetBit(x, y, v)
	return nil
}

// Bit returns the bit at (x, y) without bounds checking. Callers must
// guarantee 0 <= x < Width and 0 <= y < Height.
func (g *Grid) Bit(x, y int) bool {
	offset := y*g.rowSize + x/32
	return (g.data[offset]>>uint(x&0x1f))&1 != 0
}

// SetBit writes the bit at (x, y) without bounds checking. Callers must
// guarantee 0 <= x < Width and 0 <= y < Height.
func (g *Grid) SetBit(x, y int, v bool) {
	offset := y*g.rowSize + x/32
	if v {
		g.data[offset] |= 1 << uint(x&0x1f)
	} else {
		g.data[offset] &^= 1 << uint(x&0x1f)
	}
}

// Or returns a new grid holding the cell-wise boolean OR of g and other.
// Returns ErrSizeMismatch if the grids differ in size.
func (g *Grid) Or(other *Grid) (*Grid, error) {
	if g.width != other.width || g.height != other.height {
		return nil, ErrSizeMismatch
	}
	out := g.Clone()
	for i := range out.data {
		out.data[i] |= other.data[i]
	}
	return out, nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	d := make([]uint32, len(g.data))
	copy(d, g.data)
	return &Grid{width: g.width, height: g.height, rowSize: g.rowSize, data: d}
}

// Equals reports whether g and other have identical size and contents.
func (g *Grid) Equals(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	// Bits past the row end are never set, so word comparison is exact.
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String returns a textual rendering using "#" for set and "." for clear.
func (g *Grid) String() string {
	return g.StringWithChars("#", ".")
}

// StringWithChars returns a textual rendering using the given set and clear
// strings, one grid row per line.
func (g *Grid) StringWithChars(set, clear string) string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Bit(x, y) {
				sb.WriteString(set)
			} else {
				sb.WriteString(clear)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
