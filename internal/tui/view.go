package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/botguide/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := strings.Join([]string{
		m.headerView(),
		m.tabsView(),
		m.viewport.View(),
		m.statusView(),
		m.footerView(),
	}, "\n")
	return appStyle.MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) headerView() string {
	return render.Header(m.reg.Title(), m.reg.Subtitle(), m.width)
}

func (m Model) tabsView() string {
	tabs := m.reg.Tabs()
	labels := make([]string, 0, len(tabs))
	for i, t := range tabs {
		labels = append(labels, render.TabLabel(i+1, t, i == m.sel.Index()))
	}
	line := strings.Join(labels, tabSepStyle.Render("│"))
	return renderBar(tabBarStyle, max(1, m.width), line)
}

func (m Model) statusView() string {
	msg := strings.TrimSpace(m.status)
	style := statusBarStyle
	if m.statusErr {
		style = statusErrBarStyle
	}
	width := max(1, m.width)
	scroll := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	gap := width - ansi.StringWidth(msg) - ansi.StringWidth(scroll) - 2
	if gap > 0 {
		msg = " " + msg + strings.Repeat(" ", gap) + scroll
	}
	return renderBar(style, width, msg)
}

func (m Model) footerView() string {
	line := renderHelp(m.keys.ShortHelp())
	return renderBar(footerStyle, max(1, m.width), line)
}
