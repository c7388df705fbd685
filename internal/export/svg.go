package export

import (
	"errors"
	"fmt"
	"html"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/atomviz/internal/app"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/surface"
)

// ErrNoFrames is returned when a snapshot is asked to render nothing.
var ErrNoFrames = errors.New("export: frame count must be at least 1")

// SVG records one frame of drawing calls as an SVG document. Clear starts a
// new document; it never produces input events.
type SVG struct {
	width, height int
	body          strings.Builder
	doc           string
	fps           int
}

var _ surface.Surface = (*SVG)(nil)

func NewSVG(width, height int) *SVG {
	return &SVG{width: width, height: height}
}

func (s *SVG) Size() (int, int) { return s.width, s.height }

func (s *SVG) Clear(c color.RGBA) {
	s.body.Reset()
	fmt.Fprintf(&s.body, `<rect width="100%%" height="100%%" %s/>`+"\n", fill(c))
}

func (s *SVG) FillCircle(x, y, r float64, c color.RGBA) {
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" %s/>`+"\n", x, y, r, fill(c))
}

func (s *SVG) StrokeCircle(x, y, r, width float64, c color.RGBA) {
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" %s/>`+"\n", x, y, r, stroke(c, width))
}

func (s *SVG) FillRect(r surface.Rect, c color.RGBA) {
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", r.X, r.Y, r.W, r.H, fill(c))
}

func (s *SVG) StrokeRect(r surface.Rect, width float64, c color.RGBA) {
	fmt.Fprintf(&s.body, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" %s/>`+"\n", r.X, r.Y, r.W, r.H, stroke(c, width))
}

// DrawText anchors text at its top-left corner like the window front-end.
func (s *SVG) DrawText(text string, x, y float64, size int, c color.RGBA) {
	fmt.Fprintf(&s.body, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" dominant-baseline="hanging" %s>%s</text>`+"\n",
		x, y, size, fill(c), html.EscapeString(text))
}

// MeasureText estimates an average glyph at 0.55 em.
func (s *SVG) MeasureText(text string, size int) float64 {
	return float64(len([]rune(text))) * float64(size) * 0.55
}

// Pointer sits far outside the picture so no hover labels are drawn.
func (s *SVG) Pointer() (float64, float64) { return -1e6, -1e6 }

func (s *SVG) PollEvents() []surface.Event { return nil }

func (s *SVG) SetTargetFPS(fps int) { s.fps = fps }

func (s *SVG) Present() {
	s.doc = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
%s</svg>
`, s.width, s.height, s.width, s.height, s.body.String())
}

// String returns the last presented frame, or "" before the first Present.
func (s *SVG) String() string { return s.doc }

// Snapshot animates atomicNumber for frames frames and returns the last one
// as SVG.
func Snapshot(cfg *config.Config, atomicNumber, frames int) (string, error) {
	if frames < 1 {
		return "", ErrNoFrames
	}
	a, err := app.New(cfg)
	if err != nil {
		return "", err
	}
	if err := a.Select(atomicNumber); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	s := NewSVG(cfg.Window.Width, cfg.Window.Height)
	a.Start(s)
	for i := 0; i < frames; i++ {
		a.Frame(s)
	}
	return s.String(), nil
}

func fill(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf(`fill="%s"`, hex(c))
	}
	return fmt.Sprintf(`fill="%s" fill-opacity="%.3f"`, hex(c), float64(c.A)/255)
}

func stroke(c color.RGBA, width float64) string {
	if c.A == 255 {
		return fmt.Sprintf(`stroke="%s" stroke-width="%.1f"`, hex(c), width)
	}
	return fmt.Sprintf(`stroke="%s" stroke-width="%.1f" stroke-opacity="%.3f"`, hex(c), width, float64(c.A)/255)
}

func hex(c color.RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
