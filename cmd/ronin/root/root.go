package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ronin/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ronin",
	Short:         "ronin — a digital ronin's local dashboard",
	Long:          "Ronin is a local-first CLI/TUI for the dashboard behind the portfolio: projects, quests, habits, the shelf, and a few small trackers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newProjectCmd(),
		newQuestCmd(),
		newHabitCmd(),
		newShelfCmd(),
		newLogPoseCmd(),
		newOnePieceCmd(),
		newTreasuryCmd(),
		newMemoryCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newAdminCmd(),
		newStatusCmd(),
		newTermCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
