package root

import (
	"github.com/spf13/cobra"

	"ronin/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(tui.Dashboard{
				Store:    a.store,
				LogPose:  a.logPose,
				Treasury: a.treasury,
				Authed:   a.gate.Authenticated(),
			}, cmd.OutOrStdout())
		},
	}
}
