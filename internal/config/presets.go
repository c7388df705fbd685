package config

import "sort"

func classicPalette() PaletteConfig {
	return PaletteConfig{
		Background:    "#0a0a1e",
		Text:          "#ffffff",
		Nucleus:       "#ffd700",
		NucleusGlow:   50,
		Proton:        "#ff0000",
		Neutron:       "#969696",
		Electron:      "#00ffff",
		Shells:        []string{"#ff3232", "#ffa500", "#00ff00", "#0000ff"},
		Button:        "#4682b4",
		ButtonHover:   "#64a0d2",
		HoverLabel:    "#ffff00",
		InputActive:   "#1c86ee",
		InputInactive: "#8db6cd",
	}
}

var Presets = map[string]PaletteConfig{
	"classic": classicPalette(),
	"mono": {
		Background:    "#0a0a0a",
		Text:          "#b4b4b4",
		Nucleus:       "#3c3c3c",
		NucleusGlow:   40,
		Proton:        "#ffffff",
		Neutron:       "#787878",
		Electron:      "#ffffff",
		Shells:        []string{"#8c8c8c", "#6e6e6e", "#505050", "#3c3c3c"},
		Button:        "#1e1e1e",
		ButtonHover:   "#3c3c3c",
		HoverLabel:    "#ffffff",
		InputActive:   "#ffffff",
		InputInactive: "#3c3c3c",
	},
	"neon": {
		Background:    "#0a0a0a",
		Text:          "#ffffff",
		Nucleus:       "#ff00ff",
		NucleusGlow:   70,
		Proton:        "#ffff00",
		Neutron:       "#00ffff",
		Electron:      "#00ff88",
		Shells:        []string{"#ff00ff", "#00ffff", "#ffff00", "#ff8800"},
		Button:        "#1a001a",
		ButtonHover:   "#440044",
		HoverLabel:    "#ffff00",
		InputActive:   "#ff00ff",
		InputInactive: "#666666",
	},
}

// GetPreset returns the default configuration with the named palette
// applied, or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Palette = p
	cfg.Palette.Shells = append([]string(nil), p.Shells...)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
