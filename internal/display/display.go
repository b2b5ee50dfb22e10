// Package display renders binary ink grids in a terminal using Unicode
// half-block characters. Each pair of grid rows is combined into one
// terminal line and every cell is printed two characters wide, so a grid
// appears roughly square in a standard character cell.
package display

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ageron/visual-crypto/internal/grid"
)

// Render writes g to w. Set bits (ink) are drawn as solid blocks:
//
//	top set, bottom set   → ██
//	top set, bottom clear → ▀▀
//	top clear, bottom set → ▄▄
//	both clear            → two spaces
func Render(w io.Writer, g *grid.Grid) {
	for y := 0; y < g.Height(); y += 2 {
		for x := 0; x < g.Width(); x++ {
			top := g.Bit(x, y)
			bot := false
			if y+1 < g.Height() {
				bot = g.Bit(x, y+1)
			}
			switch {
			case top && bot:
				fmt.Fprint(w, "██")
			case top:
				fmt.Fprint(w, "▀▀")
			case bot:
				fmt.Fprint(w, "▄▄")
			default:
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}
}

// Fits reports whether g would fit the terminal attached to stdout, and the
// terminal's size in character cells. It returns fits=true when stdout is
// not a terminal (output is being piped).
func Fits(g *grid.Grid) (fits bool, cols, rows int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return true, 0, 0
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return true, 0, 0
	}
	needCols := g.Width() * 2
	needRows := (g.Height() + 1) / 2
	return needCols <= cols && needRows <= rows, cols, rows
}
