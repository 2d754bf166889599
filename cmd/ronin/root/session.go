package root

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ronin/internal/ui"
)

func newLoginCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open the gate for this machine",
		Long: `Compare a passphrase against the fixed built-in secret and persist the
session flag on match. This is a convenience gate for hiding edit commands,
not access control — the vault is a plain local file either way.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := passphrase
			if secret == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Passphrase: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("read passphrase: %w", err)
				}
				secret = string(raw)
			}

			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if !a.gate.Login(secret) {
				return errors.New("the gate does not open for that phrase")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconUnlocked+" The gate opens. Welcome back, ronin."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "Passphrase (prompted when omitted)")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			a.gate.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconLock+" The gate closes behind you."))
			return nil
		},
	}
}

// newAdminCmd flips the document's isAdmin convenience flag. Separate from
// the session gate on purpose: the flag lives inside the aggregate document
// and only changes what the dashboard shows.
func newAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "Toggle the dashboard's admin flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()
			if err := requireRonin(a); err != nil {
				return err
			}

			if a.store.ToggleAdmin() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("admin flag on"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("admin flag off"))
			}
			return nil
		},
	}
}
