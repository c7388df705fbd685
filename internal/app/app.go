package app

import (
	"fmt"

	"github.com/san-kum/atomviz/internal/atom"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/surface"
)

type Mode int

const (
	Selecting Mode = iota
	Running
)

func (m Mode) String() string {
	switch m {
	case Selecting:
		return "selecting"
	case Running:
		return "running"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

const (
	PromptText  = "Enter Atomic Number (1-30) and press Enter:"
	ButtonLabel = "Change Element"
)

type App struct {
	cfg    *config.Config
	colors config.Colors
	params atom.Params
	mode   Mode
	input  InputBox
	state  *atom.State
	button surface.Rect
}

// New validates cfg and returns an App waiting for the first atomic number.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	colors, err := cfg.Palette.Resolve()
	if err != nil {
		return nil, err
	}
	l := cfg.Layout
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	b := l.Button.Rect(cfg.Window.Width)
	return &App{
		cfg:    cfg,
		colors: colors,
		params: atom.Params{
			BaseSpeed:        cfg.Motion.BaseSpeed,
			Tilts:            cfg.Motion.Tilts,
			TrailPerElectron: cfg.Motion.TrailPerElectron,
		},
		mode: Selecting,
		input: NewInputBox(surface.Rect{
			X: w/2 - l.InputWidth/2,
			Y: h/2 - l.InputHeight/2,
			W: l.InputWidth,
			H: l.InputHeight,
		}),
		button: surface.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H},
	}, nil
}

// Select skips the prompt and starts animating atomicNumber.
func (a *App) Select(atomicNumber int) error {
	st, err := atom.Build(atomicNumber, a.params)
	if err != nil {
		return err
	}
	a.state = st
	a.mode = Running
	return nil
}

func (a *App) Mode() Mode { return a.mode }

// State is nil until the first element has been chosen.
func (a *App) State() *atom.State { return a.state }

func (a *App) Input() *InputBox { return &a.input }

func (a *App) Button() surface.Rect { return a.button }

// Start paces s for the current mode. Hosts that own their event loop call
// it once before the first Frame.
func (a *App) Start(s surface.Surface) {
	s.SetTargetFPS(a.targetFPS())
}

// Run drives Frame until a quit event arrives.
func (a *App) Run(s surface.Surface) {
	a.Start(s)
	for a.Frame(s) {
	}
}

// Frame runs one cycle of the current mode and reports whether the program
// should keep going.
func (a *App) Frame(s surface.Surface) bool {
	if a.mode == Selecting {
		return a.frameSelecting(s)
	}
	return a.frameRunning(s)
}

func (a *App) frameSelecting(s surface.Surface) bool {
	for _, e := range s.PollEvents() {
		if e.Kind == surface.EventQuit {
			return false
		}
		if z, ok := a.input.HandleEvent(e); ok {
			a.state = atom.New(z, a.params)
			a.setMode(s, Running)
			return true
		}
	}
	a.drawPrompt(s)
	s.Present()
	return true
}

func (a *App) frameRunning(s surface.Surface) bool {
	a.drawAtom(s)
	s.Present()

	for _, e := range s.PollEvents() {
		switch e.Kind {
		case surface.EventQuit:
			return false
		case surface.EventMouseDown:
			if a.button.Contains(e.X, e.Y) {
				a.beginSelecting(s)
				return true
			}
		case surface.EventKeyDown:
			if e.Char == 'c' || e.Char == 'C' {
				a.beginSelecting(s)
				return true
			}
		}
	}
	return true
}

func (a *App) beginSelecting(s surface.Surface) {
	a.input.Reset()
	a.setMode(s, Selecting)
}

func (a *App) setMode(s surface.Surface, m Mode) {
	a.mode = m
	s.SetTargetFPS(a.targetFPS())
}

func (a *App) targetFPS() int {
	if a.mode == Selecting {
		return a.cfg.Window.PromptFPS
	}
	return a.cfg.Window.FPS
}
