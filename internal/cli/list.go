package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jask/botguide/internal/guide"
	"github.com/jask/botguide/internal/render"
)

type tabRow struct {
	Position int        `json:"position" yaml:"position"`
	ID       string     `json:"id" yaml:"id"`
	Label    string     `json:"label" yaml:"label"`
	Icon     guide.Icon `json:"icon" yaml:"icon"`
	Title    string     `json:"title" yaml:"title"`
}

func newListCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the guide tabs in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTabs(cmd.OutOrStdout(), a.reg, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json or yaml")
	return cmd
}

func tabRows(reg *guide.Registry) []tabRow {
	tabs := reg.Tabs()
	rows := make([]tabRow, 0, len(tabs))
	for i, t := range tabs {
		rows = append(rows, tabRow{
			Position: i + 1,
			ID:       t.ID,
			Label:    t.Label,
			Icon:     t.Icon,
			Title:    reg.Content(t.ID).Title,
		})
	}
	return rows
}

func writeTabs(w io.Writer, reg *guide.Registry, format string) error {
	rows := tabRows(reg)
	switch format {
	case "table", "":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(render.ColorBorder)).
			Headers("#", "ID", "LABEL", "TITLE")
		for _, r := range rows {
			label := r.Label
			if g := render.Icon(r.Icon); g != "" {
				label = g + " " + label
			}
			t.Row(strconv.Itoa(r.Position), r.ID, label, r.Title)
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
