package tui

import (
	"worthit/internal/core/session"

	"github.com/charmbracelet/lipgloss"
)

// palette is one theme's colors
type palette struct {
	fg, muted, accent, good, bad, border lipgloss.Color
}

var (
	lightPalette = palette{
		fg:     lipgloss.Color("#101F38"),
		muted:  lipgloss.Color("#6b7280"),
		accent: lipgloss.Color("#2563eb"),
		good:   lipgloss.Color("#15803d"),
		bad:    lipgloss.Color("#b91c1c"),
		border: lipgloss.Color("#d6dae0"),
	}
	darkPalette = palette{
		fg:     lipgloss.Color("#f2f2f2"),
		muted:  lipgloss.Color("#9ca3af"),
		accent: lipgloss.Color("#8BC34A"),
		good:   lipgloss.Color("#4ade80"),
		bad:    lipgloss.Color("#f87171"),
		border: lipgloss.Color("#2a3850"),
	}
)

// Styles are the rendered pieces of the calculator view
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Issue    lipgloss.Style
	Worth    lipgloss.Style
	NotWorth lipgloss.Style
	Box      lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// StylesFor builds the styles for a theme
func StylesFor(t session.Theme) Styles {
	p := lightPalette
	if t == session.Dark {
		p = darkPalette
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.fg),
		Subtle:   lipgloss.NewStyle().Foreground(p.muted),
		Label:    lipgloss.NewStyle().Foreground(p.fg),
		Focused:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Issue:    lipgloss.NewStyle().Foreground(p.bad),
		Worth:    lipgloss.NewStyle().Bold(true).Foreground(p.good),
		NotWorth: lipgloss.NewStyle().Bold(true).Foreground(p.bad),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		Status:   lipgloss.NewStyle().Foreground(p.accent),
		Help:     lipgloss.NewStyle().Foreground(p.muted).Italic(true),
	}
}
