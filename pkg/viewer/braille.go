package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a character grid where every cell holds a 2x4 dot matrix.
// Each cell also remembers the style of the last line drawn through it.
type brailleBuf struct {
	w, h   int       // in cells
	m      [][]uint8 // per-cell 8-bit mask
	styles [][]int   // per-cell style index, -1 when unset
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	styles := make([][]int, h)
	for i := range m {
		m[i] = make([]uint8, w)
		styles[i] = make([]int, w)
		for j := range styles[i] {
			styles[i][j] = -1
		}
	}
	return &brailleBuf{w: w, h: h, m: m, styles: styles}
}

// dot bits indexed by [column][row] within a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my, style int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.styles[cy][cx] = style
}

// drawLine draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLine(x0, y0, x1, y1, style int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, style)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lines renders the grid, colouring runs of cells that share a style.
// A nil styles slice renders plain text.
func (b *brailleBuf) lines(styles []lipgloss.Style) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		run := make([]rune, 0, b.w)
		current := -1

		flush := func() {
			if len(run) == 0 {
				return
			}
			if current >= 0 && current < len(styles) {
				sb.WriteString(styles[current].Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			style := -1
			r := ' '
			if mask != 0 {
				r = rune(0x2800 + int(mask))
				style = b.styles[y][x]
			}
			if style != current {
				flush()
				current = style
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
