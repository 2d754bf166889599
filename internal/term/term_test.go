package term

import (
	"strings"
	"testing"

	"ronin/internal/config"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(config.Identity{
		Name:       "Ali Ahmed",
		Role:       "Security Researcher",
		Philosophy: "Seek what they sought.",
		Email:      "ali@example.com",
		GitHub:     "github.com/ali",
		LinkedIn:   "linkedin.com/in/ali",
	})
}

func TestHelpListsCommands(t *testing.T) {
	out := strings.Join(newTestDispatcher().Execute("help"), "\n")
	for _, want := range []string{"whoami", "contact", "clear", "sudo rm -rf /", "help"} {
		if !strings.Contains(out, want) {
			t.Fatalf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestWhoamiUsesIdentity(t *testing.T) {
	out := strings.Join(newTestDispatcher().Execute("whoami"), "\n")
	if !strings.Contains(out, "ALI AHMED") {
		t.Fatalf("whoami missing upper-cased name:\n%s", out)
	}
	if !strings.Contains(out, "Security Researcher") {
		t.Fatalf("whoami missing role:\n%s", out)
	}
}

func TestContactUsesIdentity(t *testing.T) {
	out := strings.Join(newTestDispatcher().Execute("contact"), "\n")
	for _, want := range []string{"ali@example.com", "github.com/ali", "linkedin.com/in/ali"} {
		if !strings.Contains(out, want) {
			t.Fatalf("contact missing %q:\n%s", want, out)
		}
	}
}

func TestClearReturnsSentinel(t *testing.T) {
	out := newTestDispatcher().Execute("clear")
	if len(out) != 1 || out[0] != ClearScreen {
		t.Fatalf("clear output = %v, want single sentinel", out)
	}
}

func TestDispatchIsCaseAndSpaceInsensitive(t *testing.T) {
	d := newTestDispatcher()
	a := d.Execute("  HELP  ")
	b := d.Execute("help")
	if strings.Join(a, "\n") != strings.Join(b, "\n") {
		t.Fatalf("normalized dispatch differs")
	}
}

func TestSudoVariantsAreDenied(t *testing.T) {
	d := newTestDispatcher()
	for _, cmd := range []string{"sudo rm -rf /", "sudo rm -rf"} {
		out := strings.Join(d.Execute(cmd), "\n")
		if !strings.Contains(out, "Permission denied") {
			t.Fatalf("%q output missing denial:\n%s", cmd, out)
		}
	}
}

func TestEmptyLineProducesNothing(t *testing.T) {
	if out := newTestDispatcher().Execute("   "); out != nil {
		t.Fatalf("empty line output = %v, want nil", out)
	}
}

func TestUnknownCommandEchoesShellError(t *testing.T) {
	out := newTestDispatcher().Execute("make me a sandwich")
	if len(out) == 0 || !strings.Contains(out[0], "command not found") {
		t.Fatalf("unknown command output = %v", out)
	}
	if !strings.Contains(out[0], "make me a sandwich") {
		t.Fatalf("unknown command not echoed back: %v", out)
	}
}
