package app

import (
	"github.com/san-kum/atomviz/internal/element"
	"github.com/san-kum/atomviz/internal/surface"
)

// InputBox is the atomic-number text field.
type InputBox struct {
	Text   string
	Active bool
	Rect   surface.Rect
}

func NewInputBox(r surface.Rect) InputBox {
	return InputBox{Rect: r, Active: true}
}

// HandleEvent applies one input event. It returns the atomic number and true
// only when Enter was pressed on a valid entry; a rejected entry empties
// the field.
func (b *InputBox) HandleEvent(e surface.Event) (int, bool) {
	switch e.Kind {
	case surface.EventMouseDown:
		b.Active = b.Rect.Contains(e.X, e.Y)
	case surface.EventKeyDown:
		if !b.Active {
			return 0, false
		}
		switch {
		case e.Key == surface.KeyEnter:
			z, err := element.ParseAtomicNumber(b.Text)
			if err != nil {
				b.Text = ""
				return 0, false
			}
			return z, true
		case e.Key == surface.KeyBackspace:
			if n := len(b.Text); n > 0 {
				b.Text = b.Text[:n-1]
			}
		case e.Char >= '0' && e.Char <= '9':
			b.Text += string(e.Char)
		}
	}
	return 0, false
}

func (b *InputBox) Reset() {
	b.Text = ""
	b.Active = true
}
