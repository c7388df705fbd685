package viz

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/atomviz/internal/surface"
)

// Surface maps a virtual window of width x height pixels onto a braille
// canvas. The virtual space is scaled uniformly and centered, so circles stay
// round in the terminal. Text goes into the canvas text layer, one rune per
// cell regardless of the requested size.
type Surface struct {
	canvas        *Canvas
	width, height int
	scale         float64
	offX, offY    float64
	bg            color.RGBA
	pointerX      float64
	pointerY      float64
	events        []surface.Event
	fps           int
	frame         string
}

var _ surface.Surface = (*Surface)(nil)

func NewSurface(width, height, cols, rows int) *Surface {
	s := &Surface{width: width, height: height, pointerX: -1e6, pointerY: -1e6}
	s.Resize(cols, rows)
	return s
}

// Resize replaces the canvas with one of cols x rows cells.
func (s *Surface) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	s.canvas = NewCanvas(cols, rows)
	sw, sh := float64(s.canvas.SubWidth()), float64(s.canvas.SubHeight())
	s.scale = math.Min(sw/float64(s.width), sh/float64(s.height))
	s.offX = (sw - float64(s.width)*s.scale) / 2
	s.offY = (sh - float64(s.height)*s.scale) / 2
}

func (s *Surface) Canvas() *Canvas { return s.canvas }

// FPS is the rate last requested by the render loop.
func (s *Surface) FPS() int { return s.fps }

// Frame is the colored canvas as of the last Present.
func (s *Surface) Frame() string { return s.frame }

// Push queues an event for the next PollEvents.
func (s *Surface) Push(e surface.Event) { s.events = append(s.events, e) }

// PointAt converts a terminal cell to virtual coordinates, using the center
// of the cell.
func (s *Surface) PointAt(col, row int) (x, y float64) {
	sx := float64(col*2) + 1
	sy := float64(row*4) + 2
	return (sx - s.offX) / s.scale, (sy - s.offY) / s.scale
}

// MoveTo records the pointer over cell (col, row).
func (s *Surface) MoveTo(col, row int) {
	s.pointerX, s.pointerY = s.PointAt(col, row)
}

func (s *Surface) dot(x, y float64) (int, int) {
	return int(math.Round(x*s.scale + s.offX)), int(math.Round(y*s.scale + s.offY))
}

func (s *Surface) cellAt(x, y float64) (int, int) {
	dx, dy := s.dot(x, y)
	return dx / 2, dy / 4
}

func (s *Surface) dots(r float64) int {
	return int(math.Round(r * s.scale))
}

// blend flattens a translucent color onto the current background.
func (s *Surface) blend(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	bg := colorful.Color{R: float64(s.bg.R) / 255, G: float64(s.bg.G) / 255, B: float64(s.bg.B) / 255}
	r, g, b := bg.BlendRgb(fg, float64(c.A)/255).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) Clear(c color.RGBA) {
	s.bg = c
	s.canvas.Clear()
}

func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	cx, cy := s.dot(x, y)
	s.canvas.FillCircle(cx, cy, s.dots(r), s.blend(c))
}

func (s *Surface) StrokeCircle(x, y, r, _ float64, c color.RGBA) {
	cx, cy := s.dot(x, y)
	s.canvas.DrawCircle(cx, cy, s.dots(r), s.blend(c))
}

func (s *Surface) FillRect(r surface.Rect, c color.RGBA) {
	x0, y0 := s.dot(r.X, r.Y)
	x1, y1 := s.dot(r.X+r.W, r.Y+r.H)
	s.canvas.FillRect(x0, y0, x1, y1, s.blend(c))
}

func (s *Surface) StrokeRect(r surface.Rect, _ float64, c color.RGBA) {
	x0, y0 := s.dot(r.X, r.Y)
	x1, y1 := s.dot(r.X+r.W, r.Y+r.H)
	col := s.blend(c)
	s.canvas.DrawLine(x0, y0, x1, y0, col)
	s.canvas.DrawLine(x1, y0, x1, y1, col)
	s.canvas.DrawLine(x1, y1, x0, y1, col)
	s.canvas.DrawLine(x0, y1, x0, y0, col)
}

func (s *Surface) DrawText(text string, x, y float64, _ int, c color.RGBA) {
	col, row := s.cellAt(x, y)
	s.canvas.PutText(col, row, text, s.blend(c))
}

// MeasureText returns the virtual width covered by one cell per rune.
func (s *Surface) MeasureText(text string, _ int) float64 {
	return float64(utf8.RuneCountInString(text)) * 2 / s.scale
}

func (s *Surface) Pointer() (float64, float64) { return s.pointerX, s.pointerY }

func (s *Surface) PollEvents() []surface.Event {
	events := s.events
	s.events = nil
	return events
}

func (s *Surface) SetTargetFPS(fps int) { s.fps = fps }

func (s *Surface) Present() {
	s.frame = s.canvas.Render(s.bg)
}
