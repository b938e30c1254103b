// Package render turns guide content into styled terminal text.
//
// Every function here is pure: the same content and width always produce
// the same string.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/botguide/internal/guide"
)

const (
	DefaultWidth  = 80
	minWidth      = 20
	sectionIndent = 2
)

var glyphs = map[guide.Icon]string{
	guide.IconActivity:   "∿",
	guide.IconZap:        "⚡",
	guide.IconDatabase:   "◫",
	guide.IconShield:     "⛨",
	guide.IconSettings:   "⚙",
	guide.IconTrendingUp: "↗",
	guide.IconCheck:      "✔",
	guide.IconAlert:      "⚠",
	guide.IconClock:      "◷",
	guide.IconChart:      "▥",
}

// Icon returns the glyph for i, or "" for IconNone.
func Icon(i guide.Icon) string {
	return glyphs[i]
}

// TabLabel renders one entry of the tab row. pos is 1-based.
func TabLabel(pos int, t guide.Tab, active bool) string {
	label := fmt.Sprintf("%d %s", pos, t.Label)
	if g := Icon(t.Icon); g != "" {
		label = fmt.Sprintf("%d %s %s", pos, g, t.Label)
	}
	if active {
		return activeTabStyle.Render(label)
	}
	return inactiveTabStyle.Render(label)
}

// Header renders the guide title and subtitle.
func Header(title, subtitle string, width int) string {
	width = clampWidth(width)
	lines := []string{}
	if title != "" {
		heading := Icon(guide.IconTrendingUp) + " " + title
		lines = append(lines, titleStyle.Render(ansi.Wrap(heading, width, "")))
	}
	if subtitle != "" {
		lines = append(lines, subtitleStyle.Render(ansi.Wrap(subtitle, width, "")))
	}
	return strings.Join(lines, "\n")
}

// Content renders a whole content block at the given width. Zero content
// renders as the empty string.
func Content(c guide.Content, width int) string {
	if c.IsZero() {
		return ""
	}
	width = clampWidth(width)
	parts := make([]string, 0, len(c.Sections)+1)
	if c.Title != "" {
		parts = append(parts, titleStyle.Render(ansi.Wrap(c.Title, width, "")))
	}
	for _, s := range c.Sections {
		parts = append(parts, section(s, width))
	}
	return strings.Join(parts, "\n\n")
}

func section(s guide.Section, width int) string {
	color := ToneColor(s.Tone)
	heading := strings.TrimSpace(s.Heading)
	if g := Icon(s.Icon); g != "" {
		heading = g + " " + heading
	}
	lines := make([]string, 0, len(s.Blocks)+1)
	if heading != "" {
		style := lipgloss.NewStyle().Foreground(color).Bold(true)
		lines = append(lines, style.Render(ansi.Wrap(heading, width, "")))
	}
	inner := max(1, width-sectionIndent)
	for _, b := range s.Blocks {
		lines = append(lines, indent(block(b, inner, color), sectionIndent))
	}
	return strings.Join(lines, "\n")
}

func block(b guide.Block, width int, color lipgloss.Color) string {
	switch b.Kind {
	case guide.BlockParagraph:
		return ansi.Wrap(inline(b.Text), width, "")
	case guide.BlockBullets:
		return bullets(b, width, color)
	case guide.BlockPipeline:
		return pipeline(b.Items, width)
	case guide.BlockFacts:
		return facts(b.Facts, width, color)
	case guide.BlockCode:
		return code(b, width)
	case guide.BlockChecklist:
		return checklist(b.Items, width)
	default:
		return ""
	}
}

func bullets(b guide.Block, width int, color lipgloss.Color) string {
	marker := b.Marker
	if marker == "" {
		marker = "•"
	}
	prefix := lipgloss.NewStyle().Foreground(color).Render(marker) + " "
	prefixW := ansi.StringWidth(marker) + 1

	lines := make([]string, 0, len(b.Items)+1)
	if b.Text != "" {
		lines = append(lines, ansi.Wrap(inline(b.Text), width, ""))
	}
	for _, item := range b.Items {
		lines = append(lines, hanging(prefix, prefixW, inline(item), width)...)
	}
	return strings.Join(lines, "\n")
}

func checklist(items []string, width int) string {
	prefix := checkStyle.Render(Icon(guide.IconCheck)) + " "
	prefixW := ansi.StringWidth(Icon(guide.IconCheck)) + 1
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, hanging(prefix, prefixW, inline(item), width)...)
	}
	return strings.Join(lines, "\n")
}

// pipeline joins stages with arrows and starts a new row when the next
// stage would overflow width.
func pipeline(items []string, width int) string {
	const arrowW = 3
	arrow := arrowStyle.Render(" → ")
	var rows []string
	var cur strings.Builder
	curW := 0
	for _, item := range items {
		stage := stageStyle.Render(item)
		w := ansi.StringWidth(stage)
		if curW > 0 && curW+arrowW+w > width {
			rows = append(rows, cur.String())
			cur.Reset()
			cur.WriteString(arrowStyle.Render("→ "))
			curW = 2
		} else if curW > 0 {
			cur.WriteString(arrow)
			curW += arrowW
		}
		cur.WriteString(stage)
		curW += w
	}
	rows = append(rows, cur.String())
	return strings.Join(rows, "\n")
}

func facts(rows []guide.Fact, width int, color lipgloss.Color) string {
	keyW := 0
	for _, f := range rows {
		keyW = max(keyW, ansi.StringWidth(f.Key)+1)
	}
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	lines := make([]string, 0, len(rows))
	for _, f := range rows {
		key := padRight(f.Key+":", keyW)
		lines = append(lines, hanging(keyStyle.Render(key)+" ", keyW+1, inline(f.Value), width)...)
	}
	return strings.Join(lines, "\n")
}

// code draws source in a box. Lines are never re-wrapped; lines wider
// than the box are cut with an ellipsis.
func code(b guide.Block, width int) string {
	inner := max(1, width-codeBoxStyle.GetHorizontalFrameSize())
	src := strings.ReplaceAll(strings.TrimRight(b.Source, "\n"), "\t", "    ")
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "…")
	}
	box := codeBoxStyle.Render(strings.Join(lines, "\n"))
	if b.Language == "" {
		return box
	}
	return mutedStyle.Render(b.Language) + "\n" + box
}

// hanging wraps text after prefix and indents continuation lines under
// the first character of text.
func hanging(prefix string, prefixW int, text string, width int) []string {
	wrapped := strings.Split(ansi.Wrap(text, max(1, width-prefixW), ""), "\n")
	pad := strings.Repeat(" ", prefixW)
	for i, l := range wrapped {
		if i == 0 {
			wrapped[i] = prefix + l
			continue
		}
		wrapped[i] = pad + l
	}
	return wrapped
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func clampWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	return max(minWidth, width)
}
