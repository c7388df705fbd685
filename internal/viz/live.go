package viz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/atomviz/internal/app"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/element"
	"github.com/san-kum/atomviz/internal/surface"
)

const (
	defaultCols = 100
	defaultRows = 40
)

type TickMsg time.Time

// Model hosts an app.App inside a Bubble Tea program. Key and mouse messages
// are queued on the terminal Surface and consumed by the next frame, so the
// App stays the only owner of the animation state.
type Model struct {
	app    *app.App
	surf   *Surface
	shells []color.RGBA
	theme  Theme
}

func NewModel(a *app.App, s *Surface, colors config.Colors, theme Theme) Model {
	return Model{app: a, surf: s, shells: colors.Shells, theme: theme}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	fps := m.surf.FPS()
	if fps <= 0 {
		fps = config.DefaultPromptFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update translates terminal input into surface events and runs one App
// frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.surf.Push(surface.Quit())
		case tea.KeyEnter:
			m.surf.Push(surface.KeyPress(surface.KeyEnter))
		case tea.KeyBackspace:
			m.surf.Push(surface.KeyPress(surface.KeyBackspace))
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				switch r {
				case 'q':
					m.surf.Push(surface.Quit())
				case 't':
					m.theme = NextTheme(m.theme)
				default:
					m.surf.Push(surface.CharPress(r))
				}
			}
		}
	case tea.MouseMsg:
		m.surf.MoveTo(msg.X, msg.Y)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x, y := m.surf.PointAt(msg.X, msg.Y)
			m.surf.Push(surface.Click(x, y))
		}
	case tea.WindowSizeMsg:
		m.surf.Resize(msg.Width-panelWidth, msg.Height-1)
	case TickMsg:
		if !m.app.Frame(m.surf) {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.surf.Frame(), m.panel())
}

func (m Model) panel() string {
	st := m.theme.styles()
	var s strings.Builder
	s.WriteString(st.header.Render("ATOMVIZ") + "\n\n")
	s.WriteString(st.status.Render(strings.ToUpper(m.app.Mode().String())) + "\n\n")

	if a := m.app.State(); a != nil {
		r := a.Record
		s.WriteString(st.label.Render("Element") + st.value.Render(fmt.Sprintf("%s (%s)", r.Name, r.Symbol)) + "\n")
		s.WriteString(st.label.Render("Z") + st.value.Render(fmt.Sprint(r.AtomicNumber)) + "\n")
		s.WriteString(st.label.Render("Mass") + st.value.Render(fmt.Sprint(r.Mass)) + "\n")
		s.WriteString(st.label.Render("Protons") + st.value.Render(fmt.Sprint(a.Protons())) + "\n")
		s.WriteString(st.label.Render("Neutrons") + st.value.Render(fmt.Sprint(a.Neutrons())) + "\n")
		s.WriteString(st.label.Render("Frames") + st.value.Render(fmt.Sprint(a.Frames)) + "\n\n")

		for i, n := range a.Occupancy() {
			name := fmt.Sprintf("Shell %c", shellLetter(i))
			bar := OccupancyBar(n, element.ShellCapacity(i), 10)
			if len(m.shells) > 0 {
				bar = lipgloss.NewStyle().Foreground(lipgloss.Color(hex(m.shells[i%len(m.shells)]))).Render(bar)
			}
			s.WriteString(st.label.Render(name) + bar + st.value.Render(fmt.Sprintf(" %d", n)) + "\n")
		}
	} else {
		s.WriteString(st.hint.Render("no element selected") + "\n")
	}

	s.WriteString("\n" + st.separator(panelWidth-8) + "\n")
	if m.app.Mode() == app.Selecting {
		s.WriteString(st.hint.Render("0-9 type  ⌫ erase  ⏎ submit\nT theme  Q/Esc quit"))
	} else {
		s.WriteString(st.hint.Render("C / click button: change\nT theme  Q/Esc quit"))
	}
	return st.panel.Render(s.String())
}

func shellLetter(i int) rune {
	return rune('K' + i)
}

// RunTUI runs the visualizer in the terminal until the user quits. A positive
// startZ skips the prompt.
func RunTUI(cfg *config.Config, startZ int, themeName string) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	if startZ > 0 {
		if err := a.Select(startZ); err != nil {
			return err
		}
	}
	colors, err := cfg.Palette.Resolve()
	if err != nil {
		return err
	}

	s := NewSurface(cfg.Window.Width, cfg.Window.Height, defaultCols, defaultRows)
	a.Start(s)

	p := tea.NewProgram(NewModel(a, s, colors, GetTheme(themeName)), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}
