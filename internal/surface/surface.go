// Package surface defines the drawing and input collaborator the render
// loop is written against. Front-ends (raylib window, terminal, SVG) each
// provide one implementation.
package surface

import "image/color"

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventMouseDown
)

type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyEscape
)

// Event is one entry of the input queue. Char is set for printable key
// presses; X and Y for mouse presses.
type Event struct {
	Kind EventKind
	Key  Key
	Char rune
	X, Y float64
}

func Quit() Event { return Event{Kind: EventQuit} }

func KeyPress(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

func CharPress(c rune) Event { return Event{Kind: EventKeyDown, Char: c} }

func Click(x, y float64) Event { return Event{Kind: EventMouseDown, X: x, Y: y} }

type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Surface is a fixed-size canvas with an input queue. Clear starts a frame
// and Present finishes it, pacing to the target frame rate.
type Surface interface {
	Size() (width, height int)
	Clear(c color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	StrokeCircle(x, y, r, width float64, c color.RGBA)
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, width float64, c color.RGBA)
	DrawText(text string, x, y float64, size int, c color.RGBA)
	MeasureText(text string, size int) float64
	Pointer() (x, y float64)
	PollEvents() []Event
	SetTargetFPS(fps int)
	Present()
}
