package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 38

type panelStyles struct {
	panel  lipgloss.Style
	header lipgloss.Style
	status lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	hint   lipgloss.Style
	subtle lipgloss.Style
}

func (t Theme) styles() panelStyles {
	return panelStyles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(panelWidth - 2),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		status: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(11),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		subtle: lipgloss.NewStyle().Foreground(t.Border),
	}
}

// separator draws a decorated rule of the given width.
func (st panelStyles) separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return st.subtle.Render(left + " ◆ " + right)
}

// OccupancyBar renders n filled slots out of capacity as a small gauge.
func OccupancyBar(n, capacity, width int) string {
	if capacity <= 0 || width <= 0 {
		return ""
	}
	filled := n * width / capacity
	if n > 0 && filled == 0 {
		filled = 1
	}
	filled = min(filled, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
