package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ronin/internal/store"
	"ronin/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage the quest log",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestListCmd(),
		newQuestDoneCmd(),
		newQuestRmCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var description string
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := store.QuestCategory(strings.ToLower(category))
			if !cat.IsValid() {
				return fmt.Errorf("invalid category: %q (gaming|learning|fitness|creative)", category)
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			q := a.store.AddQuest(store.QuestInput{
				Title:       args[0],
				Description: description,
				Category:    cat,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconQuest+" Accepted"), q.Title, ui.Muted.Render("("+q.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Quest description")
	cmd.Flags().StringVarP(&category, "category", "c", "learning", "Category (gaming|learning|fitness|creative)")

	return cmd
}

func newQuestListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			quests := a.store.Quests()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconQuest, "Quest Log"))
			shown := 0
			for _, q := range quests {
				if q.Completed && !all {
					continue
				}
				shown++
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
					ui.QuestMark(q.Completed), q.Title,
					ui.Dim.Render("["+string(q.Category)+"]"),
					ui.Muted.Render("("+q.ID+")"))
				if q.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", ui.Muted.Render(q.Description))
				}
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no open quests)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")

	return cmd
}

func newQuestDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a quest's completion",
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

			if a.store.ToggleQuestComplete(args[0]) == store.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no quest with that id — nothing changed"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Toggled"))
			return nil
		},
	}
}

func newQuestRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
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

			if a.store.DeleteQuest(args[0]) == store.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no quest with that id — nothing changed"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Removed"))
			return nil
		},
	}
}
