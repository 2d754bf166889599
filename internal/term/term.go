// Package term implements the fake terminal from the site's quake-style
// overlay: a dispatcher over a fixed command table. Execute is a pure
// function from one input line to output lines so the table is testable
// without a tty; the interactive loop lives in the CLI layer.
package term

import (
	"fmt"
	"strings"

	"ronin/internal/config"
)

// ClearScreen is the sentinel output telling the caller to wipe its
// scrollback instead of printing.
const ClearScreen = "CLEAR_SCREEN"

type Dispatcher struct {
	identity config.Identity
}

func NewDispatcher(id config.Identity) *Dispatcher {
	return &Dispatcher{identity: id}
}

// Execute runs one command line and returns its output lines. Unknown
// commands get the shell-flavored not-found reply.
func (d *Dispatcher) Execute(line string) []string {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch cmd {
	case "help":
		return []string{
			"Available commands:",
			"",
			"  whoami          - Display information about the ronin",
			"  contact         - Show contact information",
			"  clear           - Clear the terminal",
			"  sudo rm -rf /   - Try at your own risk...",
			"  help            - Show this help message",
			"",
		}

	case "whoami":
		return []string{
			"",
			fmt.Sprintf("  %s - Digital Ronin", strings.ToUpper(d.identity.Name)),
			"  ----------------------------------------",
			fmt.Sprintf("  Role:        %s", d.identity.Role),
			"  Path:        The Way of the Samurai",
			fmt.Sprintf("  Philosophy:  %q", d.identity.Philosophy),
			"",
			"  Mission:     Master the blade of code,",
			"               guard the digital realm",
			"",
		}

	case "contact":
		return []string{
			"",
			"CONTACT INFORMATION",
			"======================================",
			"",
			fmt.Sprintf("  Email:    %s", d.identity.Email),
			fmt.Sprintf("  GitHub:   %s", d.identity.GitHub),
			fmt.Sprintf("  LinkedIn: %s", d.identity.LinkedIn),
			"",
			"======================================",
			"",
		}

	case "clear":
		return []string{ClearScreen}

	case "sudo rm -rf /", "sudo rm -rf":
		return []string{
			"",
			"CRITICAL ERROR",
			"",
			"rm: cannot remove '/': Permission denied",
			"rm: cannot remove '/bin': Permission denied",
			"rm: cannot remove '/boot': Permission denied",
			"rm: cannot remove '/dev': Permission denied",
			"",
			"YOU HAVE NO POWER HERE, MORTAL!",
			"The Digital Ronin protects this realm.",
			"",
			"[SYSTEM INTEGRITY PROTECTED]",
			"",
		}

	case "":
		return nil

	default:
		return []string{
			fmt.Sprintf("bash: %s: command not found", strings.TrimSpace(line)),
			`Type "help" for available commands.`,
			"",
		}
	}
}
