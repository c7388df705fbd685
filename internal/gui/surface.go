package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/surface"
)

const (
	textSpacing  = 1
	ringSegments = 96
)

// Surface draws through raylib's immediate-mode API. It must be created
// after the window is open and used only from the goroutine that opened it.
type Surface struct {
	width, height int
	font          rl.Font
	ownsFont      bool
	fps           int
}

var _ surface.Surface = (*Surface)(nil)

func NewSurface(w config.WindowConfig) *Surface {
	font, owned := loadFont(w.Font, w.FontSize)
	return &Surface{
		width:    w.Width,
		height:   w.Height,
		font:     font,
		ownsFont: owned,
	}
}

func (s *Surface) Close() {
	if s.ownsFont {
		rl.UnloadFont(s.font)
	}
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) Clear(c color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(c)
}

func (s *Surface) FillCircle(x, y, r float64, c color.RGBA) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), c)
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c color.RGBA) {
	half := float32(width / 2)
	rl.DrawRing(rl.NewVector2(float32(x), float32(y)), float32(r)-half, float32(r)+half, 0, 360, ringSegments, c)
}

func (s *Surface) FillRect(r surface.Rect, c color.RGBA) {
	rl.DrawRectangleRec(toRectangle(r), c)
}

func (s *Surface) StrokeRect(r surface.Rect, width float64, c color.RGBA) {
	rl.DrawRectangleLinesEx(toRectangle(r), float32(width), c)
}

func (s *Surface) DrawText(text string, x, y float64, size int, c color.RGBA) {
	rl.DrawTextEx(s.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), textSpacing, c)
}

func (s *Surface) MeasureText(text string, size int) float64 {
	return float64(rl.MeasureTextEx(s.font, text, float32(size), textSpacing).X)
}

func (s *Surface) Pointer() (float64, float64) {
	p := rl.GetMousePosition()
	return float64(p.X), float64(p.Y)
}

// PollEvents drains raylib's character and key queues for the frame that
// was just presented. Characters come first so that digits typed in the same
// frame as Enter are part of the submission.
func (s *Surface) PollEvents() []surface.Event {
	var events []surface.Event
	if rl.WindowShouldClose() {
		events = append(events, surface.Quit())
	}
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		events = append(events, surface.CharPress(rune(ch)))
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		switch k {
		case rl.KeyEnter, rl.KeyKpEnter:
			events = append(events, surface.KeyPress(surface.KeyEnter))
		case rl.KeyBackspace:
			events = append(events, surface.KeyPress(surface.KeyBackspace))
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		p := rl.GetMousePosition()
		events = append(events, surface.Click(float64(p.X), float64(p.Y)))
	}
	return events
}

func (s *Surface) SetTargetFPS(fps int) {
	if fps != s.fps {
		s.fps = fps
		rl.SetTargetFPS(int32(fps))
	}
}

// Present ends the frame; raylib waits here to hold the target frame rate.
func (s *Surface) Present() {
	rl.EndDrawing()
}

func toRectangle(r surface.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}
