package root

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"ronin/internal/term"
	"ronin/internal/ui"
)

func newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term [command...]",
		Short: "The ronin terminal",
		Long:  "Run one fake-terminal command, or start the interactive loop when no arguments are given. Try 'help'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			d := term.NewDispatcher(a.cfg.Identity)

			if len(args) > 0 {
				line := ""
				for i, arg := range args {
					if i > 0 {
						line += " "
					}
					line += arg
				}
				printTermOutput(cmd, d.Execute(line))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(`Type "help" for available commands, "exit" to leave.`))
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.OutOrStdout(), ui.Key.Render("ronin@dojo")+":~$ ")
				if !scanner.Scan() {
					fmt.Fprintln(cmd.OutOrStdout())
					return scanner.Err()
				}
				line := scanner.Text()
				if line == "exit" || line == "quit" {
					return nil
				}
				printTermOutput(cmd, d.Execute(line))
			}
		},
	}
}

func printTermOutput(cmd *cobra.Command, lines []string) {
	for _, line := range lines {
		if line == term.ClearScreen {
			// ANSI clear + home; the closest thing to wiping scrollback.
			fmt.Fprint(cmd.OutOrStdout(), "\033[2J\033[H")
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
