package vault

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	v := Open(filepath.Join(t.TempDir(), "vault.db"), zap.NewNop())
	t.Cleanup(func() { _ = v.Close() })
	return v
}

func TestGetSetDelete(t *testing.T) {
	v := newTestVault(t)

	if _, ok := v.Get("missing"); ok {
		t.Fatalf("expected missing key to report absent")
	}

	v.Set("k", "v1")
	got, ok := v.Get("k")
	if !ok || got != "v1" {
		t.Fatalf("Get after Set = %q, %v; want v1, true", got, ok)
	}

	v.Set("k", "v2")
	got, _ = v.Get("k")
	if got != "v2" {
		t.Fatalf("Get after overwrite = %q, want v2", got)
	}

	v.Delete("k")
	if _, ok := v.Get("k"); ok {
		t.Fatalf("expected deleted key to report absent")
	}
}

func TestValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")

	v := Open(path, zap.NewNop())
	v.Set("k", "persisted")
	if err := v.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	v2 := Open(path, zap.NewNop())
	defer v2.Close()
	got, ok := v2.Get("k")
	if !ok || got != "persisted" {
		t.Fatalf("Get after reopen = %q, %v; want persisted, true", got, ok)
	}
}

func TestMemoryOnlyVaultSwallowsEverything(t *testing.T) {
	// A directory path cannot be opened as a database, so the vault must
	// degrade to memory-only without failing construction.
	v := Open(t.TempDir(), zap.NewNop())
	defer v.Close()

	v.Set("k", "v")
	if _, ok := v.Get("k"); ok {
		t.Fatalf("memory-only vault has no backend; raw Get should report absent")
	}
	v.Delete("k")
}
