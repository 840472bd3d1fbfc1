package components

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrsinham/healthforge/internal/prefs"
	"github.com/mrsinham/healthforge/internal/risk"
)

// Palette is the set of colors a theme resolves to.
type Palette struct {
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Faint   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Chip    lipgloss.Color
}

var (
	darkPalette = Palette{
		Accent:  lipgloss.Color("63"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("244"),
		Faint:   lipgloss.Color("240"),
		Success: lipgloss.Color("42"),
		Warning: lipgloss.Color("214"),
		Danger:  lipgloss.Color("196"),
		Chip:    lipgloss.Color("236"),
	}

	lightPalette = Palette{
		Accent:  lipgloss.Color("57"),
		Text:    lipgloss.Color("235"),
		Muted:   lipgloss.Color("242"),
		Faint:   lipgloss.Color("248"),
		Success: lipgloss.Color("28"),
		Warning: lipgloss.Color("166"),
		Danger:  lipgloss.Color("160"),
		Chip:    lipgloss.Color("254"),
	}
)

// PaletteFor returns the palette of theme.
func PaletteFor(theme prefs.Theme) Palette {
	if theme == prefs.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// Styles holds every style used by the screens for one theme.
type Styles struct {
	Theme   prefs.Theme
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Hint     lipgloss.Style
	Invalid  lipgloss.Style
	Panel    lipgloss.Style
	Pill     lipgloss.Style
	Command  lipgloss.Style
	Bold     lipgloss.Style
}

// NewStyles builds the styles of theme.
func NewStyles(theme prefs.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Theme:   theme,
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginBottom(1),

		Text:  lipgloss.NewStyle().Foreground(p.Text),
		Muted: lipgloss.NewStyle().Foreground(p.Muted),

		Hint: lipgloss.NewStyle().
			Foreground(p.Faint).
			Italic(true),

		Invalid: lipgloss.NewStyle().
			Foreground(p.Danger).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(1, 2),

		Pill: lipgloss.NewStyle().
			Background(p.Chip).
			Foreground(p.Success).
			Padding(0, 1),

		Command: lipgloss.NewStyle().
			Background(p.Chip).
			Foreground(p.Text).
			Padding(0, 1),

		Bold: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
	}
}

// Tone returns the foreground color of a tier color token.
func (s Styles) Tone(token risk.ColorToken) lipgloss.Color {
	switch token {
	case risk.ColorDanger:
		return s.Palette.Danger
	case risk.ColorWarning:
		return s.Palette.Warning
	default:
		return s.Palette.Success
	}
}

// ToneStyle returns a bold style in the color of token.
func (s Styles) ToneStyle(token risk.ColorToken) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.Tone(token)).Bold(true)
}

// FormTheme returns the huh theme matching the styles.
func (s Styles) FormTheme() *huh.Theme {
	if s.Theme == prefs.ThemeLight {
		return huh.ThemeBase()
	}
	return huh.ThemeCharm()
}
