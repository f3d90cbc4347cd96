package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/anuloma/internal/breath"
	"github.com/ayoisaiah/anuloma/internal/config"
)

const (
	padding  = 2
	maxWidth = 60
)

// Style is the set of styles used by the practice screen.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Quote     lipgloss.Style
	Inhale    lipgloss.Style
	Hold      lipgloss.Style
	Exhale    lipgloss.Style
	Rest      lipgloss.Style
}

type palette struct {
	main, secondary, hint, inhale, hold, exhale, rest lipgloss.AdaptiveColor
}

var defaultPalette = palette{
	main:      lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"},
	secondary: lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#D1D5DB"},
	hint:      lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
	inhale:    lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#67E8F9"},
	hold:      lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#C4B5FD"},
	exhale:    lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"},
	rest:      lipgloss.AdaptiveColor{Light: "#047857", Dark: "#6EE7B7"},
}

var highContrastPalette = palette{
	main:      lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	secondary: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	hint:      lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#E5E5E5"},
	inhale:    lipgloss.AdaptiveColor{Light: "#0000AA", Dark: "#00FFFF"},
	hold:      lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	exhale:    lipgloss.AdaptiveColor{Light: "#AA0000", Dark: "#FFFF00"},
	rest:      lipgloss.AdaptiveColor{Light: "#005500", Dark: "#00FF00"},
}

// NewStyle derives the screen styles from the visual and accessibility
// preferences.
func NewStyle(v config.VisualSettings, a config.AccessibilitySettings) Style {
	p := defaultPalette
	if a.HighContrastMode {
		p = highContrastPalette
	}

	switch v.ColorTheme {
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}

	phase := lipgloss.NewStyle().Bold(true)
	if a.LargeFontMode {
		phase = phase.Padding(1, 2).Border(lipgloss.ThickBorder())
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(p.main),
		Secondary: lipgloss.NewStyle().Foreground(p.secondary),
		Hint:      lipgloss.NewStyle().Foreground(p.hint),
		Quote:     lipgloss.NewStyle().Italic(true).Foreground(p.secondary),
		Inhale:    phase.Foreground(p.inhale).BorderForeground(p.inhale),
		Hold:      phase.Foreground(p.hold).BorderForeground(p.hold),
		Exhale:    phase.Foreground(p.exhale).BorderForeground(p.exhale),
		Rest:      phase.Foreground(p.rest).BorderForeground(p.rest),
	}
}

func (s Style) phase(t breath.Type) lipgloss.Style {
	switch t {
	case breath.Inhale:
		return s.Inhale
	case breath.Exhale:
		return s.Exhale
	default:
		return s.Hold
	}
}
