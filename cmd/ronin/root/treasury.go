package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ronin/internal/tracker"
	"ronin/internal/ui"
)

func newTreasuryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Savings goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			printTreasury(cmd, a.treasury.Items())
			return nil
		},
	}
	cmd.AddCommand(
		newTreasuryAddCmd(),
		newTreasurySaveCmd(),
		newTreasuryRmCmd(),
	)
	return cmd
}

func printTreasury(cmd *cobra.Command, items []tracker.TreasuryItem) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCoins, "The Treasury"))
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no goals yet)"))
		return
	}
	for _, item := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
			ui.Key.Render(item.Name),
			progressBar(item.Saved, item.Cost, 20),
			ui.Muted.Render(fmt.Sprintf("%d/%d (%s)", item.Saved, item.Cost, item.ID)))
	}
}

func progressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func newTreasuryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <cost>",
		Short: "Add a savings goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 || strings.TrimSpace(args[0]) == "" {
				return errors.New("name and cost are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("cost must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, _ := strconv.Atoi(args[1])

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			item := a.treasury.Add(args[0], cost)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconCoins+" Added"), item.Name, ui.Muted.Render("("+item.ID+")"))
			return nil
		},
	}
}

func newTreasurySaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <id> <±amount>",
		Short: "Put coins toward (or take from) a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and amount are required")
			}
			if _, err := strconv.Atoi(strings.TrimPrefix(args[1], "+")); err != nil {
				return errors.New("amount must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := strconv.Atoi(strings.TrimPrefix(args[1], "+"))

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			a.treasury.Save(args[0], amount)
			printTreasury(cmd, a.treasury.Items())
			return nil
		},
	}
}

func newTreasuryRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a savings goal",
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

			a.treasury.Delete(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Removed"))
			return nil
		},
	}
}
