package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ronin/internal/store"
	"ronin/internal/ui"
)

func newShelfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "Track books and movies",
	}
	cmd.AddCommand(
		newShelfAddCmd(),
		newShelfListCmd(),
		newShelfCycleCmd(),
		newShelfRmCmd(),
	)
	return cmd
}

func newShelfAddCmd() *cobra.Command {
	var itemType string
	var coverURL string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book or movie",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t := store.ItemType(strings.ToLower(itemType))
			if t != store.ItemBook && t != store.ItemMovie {
				return fmt.Errorf("invalid type: %q (book|movie)", itemType)
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			// New items start at the head of their type's cycle, the way
			// the shelf widget seeded them.
			item := a.store.AddLibraryItem(store.LibraryInput{
				Title:    args[0],
				Type:     t,
				Status:   store.StatusCycle(t)[0],
				CoverURL: coverURL,
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.TypeIcon(string(t))+" Shelved"), item.Title, ui.Muted.Render("("+item.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&itemType, "type", "t", "book", "Item type (book|movie)")
	cmd.Flags().StringVar(&coverURL, "cover", "", "Cover image URL")

	return cmd
}

func newShelfListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the shelf",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			items := a.store.LibraryItems()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, "The Shelf"))
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(empty shelf)"))
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %s %s\n",
					ui.TypeIcon(string(item.Type)), item.Title,
					ui.StatusText(string(item.Status)),
					ui.Muted.Render("("+item.ID+")"))
			}
			return nil
		},
	}
}

func newShelfCycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <id>",
		Short: "Advance an item's status (to-read → reading → finished, wraps)",
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
			if err := requireRonin(a); err != nil {
				return err
			}

			var found *store.LibraryItem
			for _, item := range a.store.LibraryItems() {
				if item.ID == args[0] {
					it := item
					found = &it
					break
				}
			}
			if found == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no item with that id — nothing changed"))
				return nil
			}

			next := store.NextStatus(found.Type, found.Status)
			a.store.UpdateLibraryItem(found.ID, store.LibraryPatch{Status: &next})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				ui.Good.Render(ui.IconDone), found.Title, ui.StatusText(string(next)))
			return nil
		},
	}
}

func newShelfRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an item from the shelf",
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

			if a.store.DeleteLibraryItem(args[0]) == store.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("no item with that id — nothing changed"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Removed"))
			return nil
		},
	}
}
