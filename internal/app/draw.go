package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/atomviz/internal/atom"
	"github.com/san-kum/atomviz/internal/surface"
)

func (a *App) drawPrompt(s surface.Surface) {
	w, h := s.Size()
	size := a.cfg.Window.FontSize

	s.Clear(a.colors.Background)

	tw := s.MeasureText(PromptText, size)
	s.DrawText(PromptText, float64(w)/2-tw/2, float64(h)/2-90, size, a.colors.Text)

	box := &a.input.Rect
	box.W = math.Max(a.cfg.Layout.InputWidth, s.MeasureText(a.input.Text, size)+10)
	s.DrawText(a.input.Text, box.X+10, box.Y+15, size, a.colors.Text)

	col := a.colors.InputInactive
	if a.input.Active {
		col = a.colors.InputActive
	}
	s.StrokeRect(*box, 3, col)
}

func (a *App) center(s surface.Surface) atom.Point {
	w, h := s.Size()
	return atom.Point{X: float64(w / 2), Y: float64(h/2) + a.cfg.Layout.CenterOffsetY}
}

func (a *App) drawAtom(s surface.Surface) {
	s.Clear(a.colors.Background)
	c := a.center(s)
	a.drawNucleus(s, c)
	a.drawShells(s, c)
	a.drawInfo(s)
	a.drawButton(s)
	a.state.Step()
}

func (a *App) drawNucleus(s surface.Surface, c atom.Point) {
	l := a.cfg.Layout
	s.FillCircle(c.X, c.Y, l.NucleusRadius*1.2, a.colors.NucleusGlow)
	s.FillCircle(c.X, c.Y, l.NucleusRadius, a.colors.Nucleus)

	protons := a.state.Protons()
	total := protons + a.state.Neutrons()
	for i := 0; i < total; i++ {
		p := atom.NucleonPosition(c, l.NucleusDotRing, i, total)
		col := a.colors.Neutron
		if i < protons {
			col = a.colors.Proton
		}
		s.FillCircle(p.X, p.Y, l.NucleusDotRadius, col)
	}
}

func (a *App) drawShells(s surface.Surface, c atom.Point) {
	l := a.cfg.Layout
	visible := a.cfg.Motion.TrailVisible
	mx, my := s.Pointer()
	size := a.cfg.Window.FontSize

	for i := range a.state.Shells {
		sh := &a.state.Shells[i]
		radius := l.BaseRadius + float64(i)*l.RingSpacing
		s.StrokeCircle(c.X, c.Y, radius, l.RingWidth, a.colors.Shells[i%len(a.colors.Shells)])

		for j := 0; j < sh.Electrons; j++ {
			p := atom.Project(c, radius, sh.ElectronAngle(j), sh.Tilt)
			sh.Trail.Push(p)

			for k, tp := range sh.Trail.Recent(visible) {
				col := a.colors.Electron
				col.A = atom.TrailAlpha(k, visible)
				s.FillCircle(tp.X, tp.Y, l.TrailDotRadius, col)
			}

			s.FillCircle(p.X, p.Y, l.ElectronRadius, a.colors.Electron)

			if math.Hypot(mx-p.X, my-p.Y) < l.HoverDistance {
				s.DrawText(fmt.Sprintf("Electron in shell %d", i+1), mx+15, my, size, a.colors.HoverLabel)
			}
		}
	}
}

func (a *App) drawInfo(s surface.Surface) {
	size := a.cfg.Window.FontSize
	s.DrawText(InfoLine(a.state), 10, 10, size, a.colors.Text)
	s.DrawText(ConfigLine(a.state), 10, 50, size, a.colors.Text)
}

func (a *App) drawButton(s surface.Surface) {
	mx, my := s.Pointer()
	col := a.colors.Button
	if a.button.Contains(mx, my) {
		col = a.colors.ButtonHover
	}
	s.FillRect(a.button, col)
	s.DrawText(ButtonLabel, a.button.X+20, a.button.Y+15, a.cfg.Window.FontSize, a.colors.Text)
}

// InfoLine is the element heading shown above the atom.
func InfoLine(st *atom.State) string {
	r := st.Record
	return fmt.Sprintf("%s (%s)  |  Atomic Number: %d  |  Mass: %d", r.Name, r.Symbol, r.AtomicNumber, r.Mass)
}

// ConfigLine lists the shell occupancy, innermost first.
func ConfigLine(st *atom.State) string {
	parts := make([]string, len(st.Shells))
	for i, sh := range st.Shells {
		parts[i] = strconv.Itoa(sh.Electrons)
	}
	return "Electron configuration (K,L,M,...): " + strings.Join(parts, " ")
}
