package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of braille cells. Each cell carries the color of the last
// dot set in it, and an optional text rune that is drawn instead of the dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	colors        [][]color.RGBA
	text          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		colors: make([][]color.RGBA, h),
		text:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.colors[i] = make([]color.RGBA, w)
		c.text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight give the canvas size in dots.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set sets a dot at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	c.colors[row][cx] = col
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.colors[i][j] = color.RGBA{}
			c.text[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws an outline with the midpoint algorithm.
func (c *Canvas) DrawCircle(cx, cy, r int, col color.RGBA) {
	if r <= 0 {
		c.Set(cx, cy, col)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y, col)
		c.Set(cx+y, cy+x, col)
		c.Set(cx-y, cy+x, col)
		c.Set(cx-x, cy+y, col)
		c.Set(cx-x, cy-y, col)
		c.Set(cx-y, cy-x, col)
		c.Set(cx+y, cy-x, col)
		c.Set(cx+x, cy-y, col)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle sets every dot within r of the center. A radius below one dot
// still marks the center.
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if r <= 0 {
		c.Set(cx, cy, col)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, col)
		}
	}
}

// PutText writes s into the text layer starting at cell (col, row), clipped
// to the canvas.
func (c *Canvas) PutText(col, row int, s string, fg color.RGBA) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			return
		}
		if col >= 0 {
			c.text[row][col] = r
			c.colors[row][col] = fg
		}
		col++
	}
}

// Render returns the canvas with per-cell foreground colors over bg. Runs of
// equally colored cells share one style.
func (c *Canvas) Render(bg color.RGBA) string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(hex(bg)))
	var b strings.Builder
	for i, row := range c.Grid {
		var run strings.Builder
		runColor := c.colors[i][0]
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(base.Foreground(lipgloss.Color(hex(runColor))).Render(run.String()))
			run.Reset()
		}
		for j, r := range row {
			if c.colors[i][j] != runColor {
				flush()
				runColor = c.colors[i][j]
			}
			run.WriteRune(c.cell(i, j, r))
		}
		flush()
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) cell(row, col int, dots rune) rune {
	if t := c.text[row][col]; t != 0 {
		return t
	}
	return dots
}

func hex(col color.RGBA) string {
	return colorful.Color{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
	}.Hex()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
