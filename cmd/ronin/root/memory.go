package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ronin/internal/ui"
)

func newMemoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "The single photo+caption memory card",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			m := a.memory.Get()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconMemory, "Visual Memory"))
			if m.Image == "" && m.Caption == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no memory pinned)"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Image", m.Image))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Caption", m.Caption))
			return nil
		},
	}
	cmd.AddCommand(newMemorySetCmd(), newMemoryClearCmd())
	return cmd
}

func newMemorySetCmd() *cobra.Command {
	var caption string

	cmd := &cobra.Command{
		Use:   "set <image-url>",
		Short: "Pin a memory",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("image url is required")
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

			a.memory.Set(args[0], caption)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconMemory+" Pinned"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&caption, "caption", "c", "", "Caption for the memory")

	return cmd
}

func newMemoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the pinned memory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireRonin(a); err != nil {
				return err
			}

			a.memory.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Cleared"))
			return nil
		},
	}
}
