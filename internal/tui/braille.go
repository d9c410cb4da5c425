package tui

import (
	"strings"

	"mandelview/internal/geom"
)

// dotBit maps a micro pixel's position inside its cell, [row][col], to the
// Unicode braille dot it lights.
var dotBit = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// dotGrid is a frame folded into braille cells, 2 micro pixels wide and 4 tall.
type dotGrid struct {
	cols, rows int
	d          geom.Dims // micro pixel size
	cells      []uint8
}

// newDotGrid lights every pixel of buf whose intensity is at most threshold.
func newDotGrid(buf []byte, d geom.Dims, threshold byte) dotGrid {
	g := dotGrid{cols: (d.W + 1) / 2, rows: (d.H + 3) / 4, d: d}
	g.cells = make([]uint8, g.cols*g.rows)
	for y := 0; y < d.H; y++ {
		for x, v := range buf[y*d.W : (y+1)*d.W] {
			if v <= threshold {
				g.set(x, y)
			}
		}
	}
	return g
}

func (g dotGrid) set(x, y int) {
	if x < 0 || y < 0 || x >= g.d.W || y >= g.d.H {
		return
	}
	g.cells[(y/4)*g.cols+x/2] |= dotBit[y%4][x%2]
}

// crosshair lights the full row y and column x.
func (g dotGrid) crosshair(x, y int) {
	for i := 0; i < g.d.W; i++ {
		g.set(i, y)
	}
	for j := 0; j < g.d.H; j++ {
		g.set(x, j)
	}
}

// lines renders one string per cell row; empty cells are spaces.
func (g dotGrid) lines() []string {
	out := make([]string, g.rows)
	var sb strings.Builder
	for r := range out {
		sb.Reset()
		for _, mask := range g.cells[r*g.cols : (r+1)*g.cols] {
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(0x2800 + rune(mask))
		}
		out[r] = sb.String()
	}
	return out
}
