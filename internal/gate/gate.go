// Package gate holds the session gate: a boolean authenticated flag mirrored
// to the vault, flipped by comparing a submitted passphrase against one fixed
// constant. It is a convenience gate for hiding edit commands, not a security
// boundary — there is no hashing, no lockout, and the secret ships in the
// binary, exactly as the site it replaces did.
package gate

import "ronin/internal/vault"

// Key is the vault key the flag is stored under; the persisted value is the
// literal string "true" when authenticated, anything else counts as not.
const Key = "ronin-auth"

const passphrase = "vagabond2024"

type Gate struct {
	vault  *vault.Vault
	loaded bool
	authed bool
}

func New(v *vault.Vault) *Gate {
	return &Gate{vault: v}
}

func (g *Gate) load() {
	if g.loaded {
		return
	}
	raw, ok := g.vault.Get(Key)
	g.authed = ok && raw == "true"
	g.loaded = true
}

// Loaded reports whether the stored flag has been read yet. Callers that
// render protected content check this first to avoid acting on the default.
func (g *Gate) Loaded() bool { return g.loaded }

// Authenticated reports the current session state, reading the stored flag
// on first use.
func (g *Gate) Authenticated() bool {
	g.load()
	return g.authed
}

// Login compares secret to the fixed passphrase. On match the state flips to
// authenticated and the flag is persisted; on mismatch nothing changes. The
// boolean result is the whole failure story — a wrong secret is a normal
// outcome, not an error.
func (g *Gate) Login(secret string) bool {
	g.load()
	if secret != passphrase {
		return false
	}
	g.authed = true
	g.vault.Set(Key, "true")
	return true
}

// Logout clears the session state and the persisted flag.
func (g *Gate) Logout() {
	g.authed = false
	g.loaded = true
	g.vault.Delete(Key)
}
