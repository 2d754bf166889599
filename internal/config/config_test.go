package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Identity.Name == "" {
		t.Fatalf("defaults missing identity name")
	}
	if cfg.VaultPath != "" {
		t.Fatalf("defaults should not pin a vault path")
	}
}

func TestLoadPartialFileOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "identity:\n  name: Musashi\n  email: musashi@example.com\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Identity.Name != "Musashi" || cfg.Identity.Email != "musashi@example.com" {
		t.Fatalf("overrides not applied: %+v", cfg.Identity)
	}
	if cfg.Identity.Role != Default().Identity.Role {
		t.Fatalf("unnamed field lost its default: %+v", cfg.Identity)
	}
}

func TestLoadVaultPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("vault_path: /tmp/elsewhere.db\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.VaultPath != "/tmp/elsewhere.db" {
		t.Fatalf("vault path = %q", cfg.VaultPath)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("identity: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("malformed config should error")
	}
}
