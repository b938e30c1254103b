package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/botguide/internal/guide"
)

// Catppuccin Mocha, the subset the guide uses.
const (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorBorder   lipgloss.Color = "#585b70"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorSurface1 lipgloss.Color = "#45475a"
	ColorMantle   lipgloss.Color = "#181825"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorSuccess  lipgloss.Color = "#a6e3a1"
	ColorWarning  lipgloss.Color = "#f9e2af"
	ColorError    lipgloss.Color = "#f38ba8"
	ColorInfo     lipgloss.Color = "#94e2d5"
	ColorMauve    lipgloss.Color = "#cba6f7"
	ColorTabOff   lipgloss.Color = "#7f849c"
)

// ToneColor maps a section tone to its accent colour.
func ToneColor(t guide.Tone) lipgloss.Color {
	switch t {
	case guide.ToneSuccess:
		return ColorSuccess
	case guide.ToneWarning:
		return ColorWarning
	case guide.ToneDanger:
		return ColorError
	case guide.ToneInfo:
		return ColorInfo
	case guide.ToneAccent:
		return ColorMauve
	default:
		return ColorText
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	boldStyle     = lipgloss.NewStyle().Bold(true)
	inlineCode    = lipgloss.NewStyle().Foreground(ColorWarning)
	mutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	stageStyle    = lipgloss.NewStyle().Foreground(ColorText).Background(ColorSurface1).Padding(0, 1)
	arrowStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	checkStyle    = lipgloss.NewStyle().Foreground(ColorSuccess)
	codeBoxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorSuccess).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Background(ColorSurface0).
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(ColorMantle).
				Foreground(ColorTabOff).
				Padding(0, 1)
)
