// Package tui is the interactive shell around the guide: a row of tabs,
// a scrollable content panel, a status bar and a key-help footer.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/jask/botguide/internal/guide"
	"github.com/jask/botguide/internal/logx"
	"github.com/jask/botguide/internal/render"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
)

// SelectTabMsg asks the shell to show the tab with the given identifier.
// Unknown identifiers are reported in the status bar and change nothing.
type SelectTabMsg struct {
	ID string
}

// SelectTab returns a command that emits SelectTabMsg.
func SelectTab(id string) tea.Cmd {
	return func() tea.Msg { return SelectTabMsg{ID: id} }
}

// Model is the Bubble Tea model for the guide.
type Model struct {
	reg       *guide.Registry
	sel       guide.Selection
	log       *logrus.Entry
	keys      keyMap
	viewport  viewport.Model
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

// New builds the shell on the first registered tab.
func New(reg *guide.Registry, log *logrus.Entry) Model {
	if log == nil {
		log = logx.Discard()
	}
	m := Model{
		reg:      reg,
		sel:      *guide.NewSelection(reg),
		log:      log,
		keys:     newKeyMap(reg.Len()),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.setStatus(m.activeStatus())
	m.layout()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// ActiveTab returns the tab currently shown.
func (m Model) ActiveTab() guide.Tab { return m.sel.Active() }

// Status returns the status bar text and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// Panel returns the full rendered content of the active tab, before
// the viewport clips it.
func (m Model) Panel() string {
	return render.Content(m.sel.Content(), m.contentWidth())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case SelectTabMsg:
		m.selectID(msg.ID)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.afterSelect(m.sel.Next())
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.afterSelect(m.sel.Prev())
		return m, nil
	case key.Matches(msg, m.keys.Jump):
		pos := int(msg.Runes[0] - '0')
		changed, err := m.sel.SelectIndex(pos - 1)
		if err != nil {
			m.reject(err)
			return m, nil
		}
		m.afterSelect(changed)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}
	return m, nil
}

func (m *Model) selectID(id string) {
	changed, err := m.sel.Select(id)
	if err != nil {
		m.reject(err)
		return
	}
	m.afterSelect(changed)
}

func (m *Model) afterSelect(changed bool) {
	m.setStatus(m.activeStatus())
	if !changed {
		return
	}
	logx.WithTab(m.log, m.sel.ActiveID()).Debug("tab selected")
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) reject(err error) {
	m.log.WithError(err).Warn("tab selection rejected")
	m.setError(err)
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) activeStatus() string {
	return fmt.Sprintf("Selected tab: %s", m.sel.Active().Label)
}

// layout sizes the viewport to what the chrome leaves free and re-renders
// the panel at the new width.
func (m *Model) layout() {
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.tabsView()) + 2
	m.viewport.Width = max(1, m.width)
	m.viewport.Height = max(1, m.height-chrome)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.Panel())
}

func (m Model) contentWidth() int {
	return max(1, m.width-2)
}
