package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	style *lipgloss.Style
	cont  bool
}

// canvas is a terminal cell grid that maps the logical viewport onto
// cols x rows cells.
type canvas struct {
	cols   int
	rows   int
	scaleX float64
	scaleY float64
	cells  [][]cell
}

func newCanvas(cols, rows int, width, height float64) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]cell, rows)}
	if width > 0 {
		c.scaleX = float64(cols) / width
	}
	if height > 0 {
		c.scaleY = float64(rows) / height
	}
	for i := range c.cells {
		c.cells[i] = make([]cell, cols)
	}
	return c
}

// toCell converts logical coordinates to a cell position.
func (c *canvas) toCell(x, y float64) (int, int) {
	return int(math.Floor(x * c.scaleX)), int(math.Floor(y * c.scaleY))
}

func (c *canvas) inside(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

func (c *canvas) put(col, row int, r rune, style *lipgloss.Style) {
	if !c.inside(col, row) {
		return
	}
	c.cells[row][col] = cell{r: r, style: style}
}

// text writes s starting at col and returns the column after it. Wide runes
// take two cells and are dropped when they do not fit.
func (c *canvas) text(col, row int, s string, style *lipgloss.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		if w == 2 && !c.inside(col+1, row) {
			return col + w
		}
		c.put(col, row, r, style)
		if w == 2 && c.inside(col+1, row) {
			c.cells[row][col+1] = cell{cont: true}
		}
		col += w
	}
	return col
}

// line plots a dotted segment between two logical points.
func (c *canvas) line(x1, y1, x2, y2 float64, r rune, style *lipgloss.Style) {
	c1, r1 := c.toCell(x1, y1)
	c2, r2 := c.toCell(x2, y2)
	steps := max(abs(c2-c1), abs(r2-r1))
	if steps == 0 {
		c.put(c1, r1, r, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := c1 + int(math.Round(t*float64(c2-c1)))
		row := r1 + int(math.Round(t*float64(r2-r1)))
		c.put(col, row, r, style)
	}
}

func (c *canvas) render() string {
	lines := make([]string, c.rows)
	var b strings.Builder
	for i, row := range c.cells {
		b.Reset()
		for _, cl := range row {
			switch {
			case cl.cont:
			case cl.r == 0:
				b.WriteByte(' ')
			case cl.style == nil:
				b.WriteRune(cl.r)
			default:
				b.WriteString(cl.style.Render(string(cl.r)))
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
