package viz

import (
	"image/color"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/atomviz/internal/app"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/surface"
)

func newTestModel(t *testing.T) (Model, *app.App, *Surface) {
	t.Helper()
	cfg := config.DefaultConfig()
	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	colors, err := cfg.Palette.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	s := NewSurface(cfg.Window.Width, cfg.Window.Height, defaultCols, defaultRows)
	a.Start(s)
	return NewModel(a, s, colors, ThemeClassic), a, s
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m Model) (Model, tea.Cmd) {
	return send(m, TickMsg(time.Now()))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSurface_Scaling(t *testing.T) {
	s := NewSurface(1400, 1000, 100, 40)
	if w, h := s.Size(); w != 1400 || h != 1000 {
		t.Fatalf("Size() = %d,%d", w, h)
	}

	x, y := s.PointAt(50, 20)
	cell := 2 / s.scale
	if math.Abs(x-700) > cell || math.Abs(y-500) > 2*cell {
		t.Errorf("center cell maps to (%.1f, %.1f)", x, y)
	}

	if got, want := s.MeasureText("abc", 36), 6/s.scale; math.Abs(got-want) > 1e-9 {
		t.Errorf("MeasureText = %v, want %v", got, want)
	}
}

func TestSurface_Blend(t *testing.T) {
	s := NewSurface(100, 100, 10, 10)
	s.Clear(color.RGBA{0, 0, 0, 255})

	opaque := color.RGBA{10, 20, 30, 255}
	if s.blend(opaque) != opaque {
		t.Errorf("opaque color changed")
	}
	got := s.blend(color.RGBA{255, 0, 0, 128})
	if got.A != 255 || got.R < 127 || got.R > 129 || got.G != 0 {
		t.Errorf("blend = %v", got)
	}
}

func TestSurface_Events(t *testing.T) {
	s := NewSurface(100, 100, 10, 10)
	s.Push(surface.Quit())
	if got := s.PollEvents(); len(got) != 1 {
		t.Fatalf("got %d events", len(got))
	}
	if got := s.PollEvents(); len(got) != 0 {
		t.Errorf("queue not drained")
	}
}

func TestModel_SelectAndRun(t *testing.T) {
	m, a, s := newTestModel(t)
	if s.FPS() != config.DefaultPromptFPS {
		t.Fatalf("prompt fps = %d", s.FPS())
	}

	m, _ = tick(m)
	if !strings.Contains(s.Frame(), "Enter Atomic Number") {
		t.Errorf("prompt not rendered")
	}

	m, _ = send(m, runes("6"))
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = tick(m)
	if a.Mode() != app.Running {
		t.Fatalf("mode = %v, want running", a.Mode())
	}
	if s.FPS() != config.DefaultFPS {
		t.Errorf("running fps = %d", s.FPS())
	}

	m, _ = tick(m)
	frame := s.Frame()
	if !strings.Contains(frame, "Carbon (C)") {
		t.Errorf("info line missing from frame")
	}
	if !strings.Contains(frame, app.ButtonLabel) {
		t.Errorf("button label missing from frame")
	}
	if !strings.Contains(m.View(), "ATOMVIZ") {
		t.Errorf("panel missing from view")
	}
}

func TestModel_ButtonClick(t *testing.T) {
	m, a, _ := newTestModel(t)
	if err := a.Select(8); err != nil {
		t.Fatal(err)
	}

	m, _ = send(m, tea.MouseMsg{X: 90, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = tick(m)
	if a.Mode() != app.Selecting {
		t.Errorf("click on button should return to the prompt")
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyCtrlC},
		tea.KeyMsg{Type: tea.KeyEsc},
		runes("q"),
	} {
		m, _, _ := newTestModel(t)
		m, _ = send(m, msg)
		if _, cmd := tick(m); !isQuit(cmd) {
			t.Errorf("%v did not quit", msg)
		}
	}
}

func TestModel_ThemeCycle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(m, runes("t"))
	if m.theme.Name != "mono" {
		t.Errorf("theme = %s, want mono", m.theme.Name)
	}
}

func TestModel_Resize(t *testing.T) {
	m, _, s := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 140, Height: 41})
	if c := s.Canvas(); c.Width != 140-panelWidth || c.Height != 40 {
		t.Errorf("canvas = %dx%d", c.Width, c.Height)
	}
}

func TestThemes_CoverPresets(t *testing.T) {
	for _, name := range config.ListPresets() {
		if GetTheme(name).Name != name {
			t.Errorf("preset %q has no panel theme", name)
		}
	}
}
