package cmd

import (
	"fmt"
	"os"

	"cmdfolder/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cmdfolder",
		Short: "Organize and copy frequently used terminal commands",
		Long: `cmdfolder keeps terminal commands grouped in categories.
Run it without arguments for the interactive browser, or use the
subcommands to list, add, remove and copy commands from scripts.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			app := ui.NewApp(s.catalog, s.cfg.ToastDuration())
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run app: %w", err)
			}
			return nil
		},
	}

	root.AddCommand(
		newListCmd(),
		newAddCmd(),
		newRmCmd(),
		newCategoriesCmd(),
		newCopyCmd(),
	)
	return root
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
