package vault

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Vault is a synchronous string key-value store backed by a single sqlite
// table. If the backend cannot be opened or a statement fails, the vault
// degrades to memory-only behavior for the rest of the session: reads see
// whatever was last written through this process, writes are kept in memory,
// and nothing is surfaced to callers beyond a log line. That mirrors how the
// site behaved when browser storage was disabled.
type Vault struct {
	db  *sql.DB
	log *zap.Logger
}

// DefaultPath returns the default vault location (~/.ronin/vault.db).
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".ronin", "vault.db"), nil
}

// Open opens (and creates if missing) the vault database at path. A failure
// to open is not fatal: the returned vault works memory-only and logs why.
func Open(path string, log *zap.Logger) *Vault {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := openSQLite(path)
	if err != nil {
		log.Warn("vault backend unavailable, running memory-only", zap.String("path", path), zap.Error(err))
		return &Vault{log: log}
	}
	return &Vault{db: db, log: log}
}

func openSQLite(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate kv: %w", err)
	}
	return db, nil
}

// Close releases the backend. Safe on a memory-only vault.
func (v *Vault) Close() error {
	if v.db == nil {
		return nil
	}
	return v.db.Close()
}

// Get returns the raw value stored under key. The second result is false
// when the key is absent or the backend is unavailable.
func (v *Vault) Get(key string) (string, bool) {
	if v.db == nil {
		return "", false
	}
	row := v.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err != sql.ErrNoRows {
			v.log.Warn("vault get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// Set stores value under key, best-effort. Failures are logged and swallowed.
func (v *Vault) Set(key, value string) {
	if v.db == nil {
		return
	}
	_, err := v.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		v.log.Warn("vault set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete removes key, best-effort.
func (v *Vault) Delete(key string) {
	if v.db == nil {
		return
	}
	if _, err := v.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		v.log.Warn("vault delete failed", zap.String("key", key), zap.Error(err))
	}
}
