package root

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ronin/internal/store"
	"ronin/internal/ui"
)

// isoDate is the YYYY-MM-DD layout habit days are stored in.
const isoDate = "2006-01-02"

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track daily habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitListCmd(),
		newHabitDoneCmd(),
		newHabitRmCmd(),
	)
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			h := a.store.AddHabit(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconHabit+" Planted"), h.Name, ui.Muted.Render("("+h.ID+")"))
			return nil
		},
	}
}

func newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with the current week",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			habits := a.store.Habits()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconHabit, "Habits"))
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet)"))
				return nil
			}
			for _, h := range habits {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(h.Name),
					weekStrip(h, time.Now()),
					ui.Muted.Render("("+h.ID+")"))
			}
			return nil
		},
	}
}

// weekStrip renders the last seven days as filled/empty markers, today last.
func weekStrip(h store.Habit, now time.Time) string {
	done := make(map[string]bool, len(h.CompletedDays))
	for _, d := range h.CompletedDays {
		done[d] = true
	}
	var b strings.Builder
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(isoDate)
		if done[day] {
			b.WriteString(ui.Good.Render("●"))
		} else {
			b.WriteString(ui.Dim.Render("○"))
		}
	}
	return b.String()
}

func newHabitDoneCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a habit for a day (default today)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			day := date
			if day == "" {
				day = time.Now().Format(isoDate)
			} else if _, err := time.Parse(isoDate, day); err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if a.store.ToggleHabitDay(args[0], day) == store.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no habit with that id — nothing changed"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Toggled"), ui.Muted.Render(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to toggle (YYYY-MM-DD)")

	return cmd
}

func newHabitRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if a.store.DeleteHabit(args[0]) == store.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no habit with that id — nothing changed"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Removed"))
			return nil
		},
	}
}
