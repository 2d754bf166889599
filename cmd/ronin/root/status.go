package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ronin/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show an overview of the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			doc := a.store.Document()

			fmt.Fprintln(out, ui.Heading(ui.IconBlade, "Ronin Status"))
			fmt.Fprintln(out, ui.LabelValue("Gate", ui.GateBadge(a.gate.Authenticated())))
			if doc.IsAdmin {
				fmt.Fprintln(out, ui.LabelValue("Admin flag", ui.Warn.Render("on")))
			}
			fmt.Fprintln(out, "")

			openQuests := 0
			for _, q := range doc.Quests {
				if !q.Completed {
					openQuests++
				}
			}
			finished := 0
			for _, item := range doc.LibraryItems {
				if item.Status == "finished" {
					finished++
				}
			}

			fmt.Fprintln(out, ui.H2.Render("📊 Counts"))
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Projects:"), len(doc.Projects))
			fmt.Fprintf(out, "- %s %d open / %d total\n", ui.Key.Render("Quests:"), openQuests, len(doc.Quests))
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Habits:"), len(doc.Habits))
			fmt.Fprintf(out, "- %s %d finished / %d total\n", ui.Key.Render("Shelf:"), finished, len(doc.LibraryItems))
			fmt.Fprintln(out, "")

			pose := a.logPose.Get()
			fmt.Fprintln(out, ui.H2.Render(ui.IconCompass+" Log Pose"))
			fmt.Fprintf(out, "- %s ep %d / ch %d\n", ui.Key.Render(pose.Series+":"), pose.Episode, pose.Chapter)
			fmt.Fprintf(out, "- %s ep %d / ch %d\n", ui.Key.Render("One Piece counters:"), doc.OnePieceEpisode, doc.OnePieceChapter)

			items := a.treasury.Items()
			if len(items) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconCoins+" Treasury"))
				for _, item := range items {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(item.Name+":"), progressBar(item.Saved, item.Cost, 14))
				}
			}

			return nil
		},
	}
}
