package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/botguide/internal/guide"
	"github.com/jask/botguide/internal/render"
)

func newShowCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show <tab>",
		Short: "Print the content of one tab",
		Example: `  botguide show risk
  botguide show code --width 120`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			reg := a.reg
			if reg == nil {
				// completion runs without PersistentPreRunE
				var err error
				if reg, err = guide.Default(); err != nil {
					return nil, cobra.ShellCompDirectiveError
				}
			}
			ids := make([]string, 0, reg.Len())
			for _, t := range reg.Tabs() {
				ids = append(ids, t.ID+"\t"+t.Label)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, content, err := a.reg.Lookup(args[0])
			if err != nil {
				return err
			}
			w := width
			if w == 0 {
				w = a.cfg.UI.Width
			}
			a.log.WithField("tab", tab.ID).WithField("width", w).Debug("show tab")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Content(content, w))
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap width (default: ui.width from config, else 80)")
	return cmd
}
