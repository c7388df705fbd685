package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1400
	DefaultHeight    = 1000
	DefaultFPS       = 60
	DefaultPromptFPS = 30
	DefaultBaseSpeed = 0.04
	DefaultTrail     = 25
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Layout  LayoutConfig  `yaml:"layout"`
	Motion  MotionConfig  `yaml:"motion"`
	Palette PaletteConfig `yaml:"palette"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	FPS       int    `yaml:"fps"`
	PromptFPS int    `yaml:"prompt_fps"`
	Font      string `yaml:"font"`
	FontSize  int    `yaml:"font_size"`
}

type LayoutConfig struct {
	CenterOffsetY    float64      `yaml:"center_offset_y"`
	BaseRadius       float64      `yaml:"base_radius"`
	RingSpacing      float64      `yaml:"ring_spacing"`
	RingWidth        float64      `yaml:"ring_width"`
	NucleusRadius    float64      `yaml:"nucleus_radius"`
	NucleusDotRing   float64      `yaml:"nucleus_dot_ring"`
	NucleusDotRadius float64      `yaml:"nucleus_dot_radius"`
	ElectronRadius   float64      `yaml:"electron_radius"`
	TrailDotRadius   float64      `yaml:"trail_dot_radius"`
	HoverDistance    float64      `yaml:"hover_distance"`
	Button           ButtonConfig `yaml:"button"`
	InputWidth       float64      `yaml:"input_width"`
	InputHeight      float64      `yaml:"input_height"`
}

// ButtonConfig places the "Change Element" control relative to the top-right
// corner of the window, so it follows the configured width.
type ButtonConfig struct {
	Right float64 `yaml:"right"` // distance from the right edge to the left side of the button
	Top   float64 `yaml:"top"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

type RectConfig struct {
	X, Y, W, H float64
}

// Rect resolves the button against a window of the given width.
func (b ButtonConfig) Rect(windowWidth int) RectConfig {
	return RectConfig{X: float64(windowWidth) - b.Right, Y: b.Top, W: b.W, H: b.H}
}

type MotionConfig struct {
	BaseSpeed        float64   `yaml:"base_speed"`
	Tilts            []float64 `yaml:"tilts"` // degrees, cycled by shell index
	TrailPerElectron int       `yaml:"trail_per_electron"`
	TrailVisible     int       `yaml:"trail_visible"`
}

// PaletteConfig holds hex colors ("#rrggbb").
type PaletteConfig struct {
	Background    string   `yaml:"background"`
	Text          string   `yaml:"text"`
	Nucleus       string   `yaml:"nucleus"`
	NucleusGlow   uint8    `yaml:"nucleus_glow_alpha"`
	Proton        string   `yaml:"proton"`
	Neutron       string   `yaml:"neutron"`
	Electron      string   `yaml:"electron"`
	Shells        []string `yaml:"shells"`
	Button        string   `yaml:"button"`
	ButtonHover   string   `yaml:"button_hover"`
	HoverLabel    string   `yaml:"hover_label"`
	InputActive   string   `yaml:"input_active"`
	InputInactive string   `yaml:"input_inactive"`
}

// Colors is a PaletteConfig with every entry parsed.
type Colors struct {
	Background    color.RGBA
	Text          color.RGBA
	Nucleus       color.RGBA
	NucleusGlow   color.RGBA
	Proton        color.RGBA
	Neutron       color.RGBA
	Electron      color.RGBA
	Shells        []color.RGBA
	Button        color.RGBA
	ButtonHover   color.RGBA
	HoverLabel    color.RGBA
	InputActive   color.RGBA
	InputInactive color.RGBA
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Atomic Structure Visualizer",
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			FPS:       DefaultFPS,
			PromptFPS: DefaultPromptFPS,
			FontSize:  36,
		},
		Layout: LayoutConfig{
			CenterOffsetY:    50,
			BaseRadius:       140,
			RingSpacing:      100,
			RingWidth:        3,
			NucleusRadius:    100,
			NucleusDotRing:   50,
			NucleusDotRadius: 10,
			ElectronRadius:   12,
			TrailDotRadius:   7,
			HoverDistance:    12,
			Button:           ButtonConfig{Right: 260, Top: 20, W: 240, H: 60},
			InputWidth:       300,
			InputHeight:      60,
		},
		Motion: MotionConfig{
			BaseSpeed:        DefaultBaseSpeed,
			Tilts:            []float64{0, 25, 50, 75},
			TrailPerElectron: DefaultTrail,
			TrailVisible:     DefaultTrail,
		},
		Palette: classicPalette(),
	}
}

// LoadWith overlays the YAML file at path on base. Fields absent from the
// file keep the values of base.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Motion.Tilts = append([]float64(nil), c.Motion.Tilts...)
	out.Palette.Shells = append([]string(nil), c.Palette.Shells...)
	return &out
}

func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, w.Width, w.Height)
	}
	if w.FPS <= 0 || w.PromptFPS <= 0 {
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	}
	l := c.Layout
	if l.BaseRadius <= 0 || l.RingSpacing <= 0 || l.NucleusRadius <= 0 {
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	}
	if l.Button.W <= 0 || l.Button.H <= 0 || l.InputWidth <= 0 || l.InputHeight <= 0 {
		return fmt.Errorf("%w: controls need a positive size", ErrInvalidConfig)
	}
	if b := l.Button.Rect(w.Width); b.X < 0 || b.X+b.W > float64(w.Width) || b.Y < 0 || b.Y+b.H > float64(w.Height) {
		return fmt.Errorf("%w: button %.0fx%.0f at (%.0f,%.0f) outside %dx%d window", ErrInvalidConfig, b.W, b.H, b.X, b.Y, w.Width, w.Height)
	}
	m := c.Motion
	if m.BaseSpeed <= 0 {
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalidConfig)
	}
	if len(m.Tilts) == 0 {
		return fmt.Errorf("%w: at least one tilt is required", ErrInvalidConfig)
	}
	if m.TrailPerElectron <= 0 || m.TrailVisible <= 0 {
		return fmt.Errorf("%w: trail lengths must be positive", ErrInvalidConfig)
	}
	if _, err := c.Palette.Resolve(); err != nil {
		return err
	}
	return nil
}

// Resolve parses every color of the palette.
func (p PaletteConfig) Resolve() (Colors, error) {
	var (
		out Colors
		err error
	)
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", p.Background, &out.Background},
		{"text", p.Text, &out.Text},
		{"nucleus", p.Nucleus, &out.Nucleus},
		{"proton", p.Proton, &out.Proton},
		{"neutron", p.Neutron, &out.Neutron},
		{"electron", p.Electron, &out.Electron},
		{"button", p.Button, &out.Button},
		{"button_hover", p.ButtonHover, &out.ButtonHover},
		{"hover_label", p.HoverLabel, &out.HoverLabel},
		{"input_active", p.InputActive, &out.InputActive},
		{"input_inactive", p.InputInactive, &out.InputInactive},
	}
	for _, f := range fields {
		if *f.dst, err = ParseColor(f.hex); err != nil {
			return Colors{}, fmt.Errorf("%w: palette.%s: %v", ErrInvalidConfig, f.name, err)
		}
	}
	if len(p.Shells) == 0 {
		return Colors{}, fmt.Errorf("%w: palette.shells is empty", ErrInvalidConfig)
	}
	out.Shells = make([]color.RGBA, len(p.Shells))
	for i, hex := range p.Shells {
		if out.Shells[i], err = ParseColor(hex); err != nil {
			return Colors{}, fmt.Errorf("%w: palette.shells[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	out.NucleusGlow = out.Nucleus
	out.NucleusGlow.A = p.NucleusGlow
	return out, nil
}

// ParseColor converts "#rrggbb" or "#rgb" into an opaque RGBA.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
