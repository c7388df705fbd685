package app

import (
	"image/color"

	"github.com/san-kum/atomviz/internal/surface"
)

type circle struct {
	x, y, r float64
	c       color.RGBA
	filled  bool
}

type text struct {
	s    string
	x, y float64
	c    color.RGBA
}

// fakeSurface records one frame of draw calls and replays scripted event
// batches, one batch per PollEvents call.
type fakeSurface struct {
	width, height int
	pointerX      float64
	pointerY      float64
	batches       [][]surface.Event
	fps           []int
	presents      int
	circles       []circle
	texts         []text
	rects         []surface.Rect
	rectColors    []color.RGBA
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{width: 1400, height: 1000, pointerX: -1000, pointerY: -1000}
}

func (f *fakeSurface) queue(events ...surface.Event) {
	f.batches = append(f.batches, events)
}

func (f *fakeSurface) Size() (int, int) { return f.width, f.height }

func (f *fakeSurface) Clear(color.RGBA) {
	f.circles, f.texts, f.rects, f.rectColors = nil, nil, nil, nil
}

func (f *fakeSurface) FillCircle(x, y, r float64, c color.RGBA) {
	f.circles = append(f.circles, circle{x, y, r, c, true})
}

func (f *fakeSurface) StrokeCircle(x, y, r, _ float64, c color.RGBA) {
	f.circles = append(f.circles, circle{x, y, r, c, false})
}

func (f *fakeSurface) FillRect(r surface.Rect, c color.RGBA) {
	f.rects = append(f.rects, r)
	f.rectColors = append(f.rectColors, c)
}

func (f *fakeSurface) StrokeRect(r surface.Rect, _ float64, c color.RGBA) {
	f.rects = append(f.rects, r)
	f.rectColors = append(f.rectColors, c)
}

func (f *fakeSurface) DrawText(s string, x, y float64, _ int, c color.RGBA) {
	f.texts = append(f.texts, text{s, x, y, c})
}

func (f *fakeSurface) MeasureText(s string, size int) float64 {
	return float64(len(s)*size) * 0.5
}

func (f *fakeSurface) Pointer() (float64, float64) { return f.pointerX, f.pointerY }

func (f *fakeSurface) PollEvents() []surface.Event {
	if len(f.batches) == 0 {
		return nil
	}
	b := f.batches[0]
	f.batches = f.batches[1:]
	return b
}

func (f *fakeSurface) SetTargetFPS(fps int) { f.fps = append(f.fps, fps) }

func (f *fakeSurface) Present() { f.presents++ }

func (f *fakeSurface) hasText(s string) bool {
	for _, t := range f.texts {
		if t.s == s {
			return true
		}
	}
	return false
}

func (f *fakeSurface) circlesWith(r float64) []circle {
	var out []circle
	for _, c := range f.circles {
		if c.filled && c.r == r {
			out = append(out, c)
		}
	}
	return out
}

func typeText(s string) []surface.Event {
	events := make([]surface.Event, 0, len(s)+1)
	for _, c := range s {
		events = append(events, surface.CharPress(c))
	}
	return append(events, surface.KeyPress(surface.KeyEnter))
}
