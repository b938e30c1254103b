package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jask/botguide/internal/config"
	"github.com/jask/botguide/internal/guide"
	"github.com/jask/botguide/internal/logx"
	"github.com/jask/botguide/internal/tui"
)

// app is the state shared by all commands once PersistentPreRunE ran.
type app struct {
	configPath string
	cfg        config.Config
	log        *logrus.Entry
	closer     io.Closer
	reg        *guide.Registry
}

// NewRootCmd builds the botguide command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "botguide",
		Short: "Browse the FTSE100 trading bot guide in the terminal",
		Long: `botguide shows a tabbed guide on building an FTSE100 trading bot:
architecture, live code, broker connection, risk management and deployment.

Run without arguments for the interactive view, or use "list" and "show"
to print the guide.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/botguide/config.toml)")
	cmd.AddCommand(newListCmd(a), newShowCmd(a))
	return cmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, closer, err := logx.Setup(cfg.Log)
	if err != nil {
		return err
	}
	a.log, a.closer = log, closer

	reg, err := guide.Default()
	if err != nil {
		return err
	}
	a.reg = reg
	return nil
}

func (a *app) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *app) runTUI(cmd *cobra.Command) error {
	opts := []tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	a.log.WithField("tabs", a.reg.Len()).Info("guide started")
	if _, err := tea.NewProgram(tui.New(a.reg, a.log), opts...).Run(); err != nil {
		a.log.WithError(err).Error("guide stopped")
		return err
	}
	a.log.Info("guide closed")
	return nil
}
