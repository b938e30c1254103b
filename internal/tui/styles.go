package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/botguide/internal/render"
)

var (
	appStyle    = lipgloss.NewStyle().Foreground(render.ColorText)
	tabBarStyle = lipgloss.NewStyle().
			Background(render.ColorMantle).
			Foreground(render.ColorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(render.ColorBorder).
			Background(render.ColorMantle)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(render.ColorSuccess).
			Background(render.ColorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(render.ColorError).
				Background(render.ColorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(render.ColorMantle)
)

func renderHelp(bindings []key.Binding) string {
	bg := render.ColorMantle
	keyStyle := lipgloss.NewStyle().Foreground(render.ColorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(render.ColorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || (h.Key == "" && h.Desc == "") {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, sep)
}

// renderBar pads or truncates text to exactly width cells.
func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
