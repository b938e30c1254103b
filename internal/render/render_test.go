package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/botguide/internal/guide"
)

func plain(s string) string { return ansi.Strip(s) }

func TestContentZeroRendersNothing(t *testing.T) {
	require.Equal(t, "", Content(guide.Content{}, 80))
}

func TestContentPerTab(t *testing.T) {
	reg := guide.MustDefault()
	markers := map[string]string{
		"architecture": "Broker WebSocket",
		"code":         "class TradingBot:",
		"broker":       "pip install ib_insync",
		"risk":         "Max Daily Loss:",
		"deployment":   "Kill switch testé et fonctionnel",
	}
	titles := map[string]string{}
	for _, tab := range reg.Tabs() {
		titles[tab.ID] = reg.Content(tab.ID).Title
	}
	for id, marker := range markers {
		t.Run(id, func(t *testing.T) {
			out := plain(Content(reg.Content(id), 100))
			require.Contains(t, out, titles[id])
			require.Contains(t, out, marker)
			for other, title := range titles {
				if other == id {
					continue
				}
				require.NotContains(t, out, title)
			}
		})
	}
}

func TestContentIsDeterministic(t *testing.T) {
	c := guide.MustDefault().Content("code")
	require.Equal(t, Content(c, 72), Content(c, 72))
}

func TestContentFitsWidth(t *testing.T) {
	reg := guide.MustDefault()
	const width = 60
	for _, tab := range reg.Tabs() {
		out := plain(Content(reg.Content(tab.ID), width))
		for _, line := range strings.Split(out, "\n") {
			require.LessOrEqual(t, ansi.StringWidth(line), width, "tab %s line %q", tab.ID, line)
		}
	}
}

func TestCodeIsTruncatedNotWrapped(t *testing.T) {
	src := "x = 1\n" + strings.Repeat("y", 200)
	out := plain(code(guide.Block{Kind: guide.BlockCode, Source: src}, 30))
	lines := strings.Split(out, "\n")
	// top border, two source lines, bottom border
	require.Len(t, lines, 4)
	require.Contains(t, lines[2], "…")
}

func TestCodeShowsLanguage(t *testing.T) {
	out := plain(code(guide.Block{Kind: guide.BlockCode, Language: "shell", Source: "ls"}, 40))
	require.True(t, strings.HasPrefix(out, "shell\n"))
}

func TestPipelineWrapsRows(t *testing.T) {
	items := []string{"Broker WebSocket", "Data Parser", "Indicator Engine", "Signal Generator"}
	wide := plain(pipeline(items, 200))
	require.Equal(t, 1, strings.Count(wide, "\n")+1)
	require.Equal(t, 3, strings.Count(wide, "→"))

	narrow := plain(pipeline(items, 40))
	rows := strings.Split(narrow, "\n")
	require.Greater(t, len(rows), 1)
	require.True(t, strings.HasPrefix(rows[1], "→ "))
	require.Equal(t, 3, strings.Count(narrow, "→"))
}

func TestChecklistMarksEveryItem(t *testing.T) {
	out := plain(checklist([]string{"a", "b", "c"}, 40))
	require.Equal(t, 3, strings.Count(out, Icon(guide.IconCheck)))
}

func TestFactsAlignKeys(t *testing.T) {
	out := plain(facts([]guide.Fact{{Key: "A", Value: "one"}, {Key: "Longer", Value: "two"}}, 40, ColorText))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, strings.Index(lines[0], "one"), strings.Index(lines[1], "two"))
}

func TestBulletsUseMarkerAndLeadIn(t *testing.T) {
	b := guide.Block{Kind: guide.BlockBullets, Text: "**Avantages:**", Marker: "🛑", Items: []string{"**Kill Switch:** 24/7"}}
	out := plain(bullets(b, 60, ColorError))
	lines := strings.Split(out, "\n")
	require.Equal(t, "Avantages:", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "🛑 Kill Switch: 24/7"))
}

func TestTabLabelIncludesPositionAndLabel(t *testing.T) {
	tab := guide.Tab{ID: "risk", Label: "Risk Management", Icon: guide.IconShield}
	require.Contains(t, plain(TabLabel(4, tab, true)), "4 ⛨ Risk Management")
	require.Contains(t, plain(TabLabel(4, tab, false)), "Risk Management")
	require.Contains(t, plain(TabLabel(1, guide.Tab{ID: "x", Label: "X"}, false)), "1 X")
}

func TestIconCoversEveryKnownIcon(t *testing.T) {
	for _, i := range guide.Icons() {
		require.NotEmpty(t, Icon(i), "icon %s", i)
	}
	require.Empty(t, Icon(guide.IconNone))
}

func TestHeader(t *testing.T) {
	out := plain(Header("Title", "Sub", 40))
	require.Equal(t, []string{"↗ Title", "Sub"}, strings.Split(out, "\n"))
}
