package vault

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Slot binds one JSON-serializable value to one vault key, with an in-memory
// cache so reads stay synchronous between writes. The cache is authoritative
// once touched: after the first Read or Write a slot answers from memory and
// only pushes to the backend, so a slot keeps working when persistence is
// gone mid-session.
//
// Two slots bound to the same key do not observe each other's writes. There
// is no subscription mechanism, same as the original per-hook localStorage
// binding — an accepted limitation, not one to paper over here.
type Slot[T any] struct {
	vault  *Vault
	key    string
	loaded bool
	value  T
}

// NewSlot binds key in v. The value is not read until the first Read.
func NewSlot[T any](v *Vault, key string) *Slot[T] {
	return &Slot[T]{vault: v, key: key}
}

// Key returns the vault key this slot is bound to.
func (s *Slot[T]) Key() string { return s.key }

// Read returns the slot value, or fallback when nothing usable is stored
// (key absent, backend unavailable, or the stored blob fails to parse).
// The stored JSON is decoded over a copy of fallback, so fields missing
// from an older persisted blob keep their fallback values rather than
// collapsing to zero. After the first call the cached value is returned,
// which reflects every Write/Update made through this slot even if
// persisting them failed.
func (s *Slot[T]) Read(fallback T) T {
	if s.loaded {
		return s.value
	}
	s.value = fallback
	s.loaded = true
	raw, ok := s.vault.Get(s.key)
	if !ok {
		return s.value
	}
	v := fallback
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.vault.log.Warn("slot holds malformed JSON, using fallback",
			zap.String("key", s.key), zap.Error(err))
		return s.value
	}
	s.value = v
	return s.value
}

// Write replaces the slot value. The cache is updated first; persistence is
// best-effort and a failure never rolls the cache back.
func (s *Slot[T]) Write(v T) {
	s.value = v
	s.loaded = true
	s.persist()
}

// Update applies fn to the current value (reading the backend first if this
// slot was never touched) and writes the result. The zero value of T is
// passed to fn when nothing is stored.
func (s *Slot[T]) Update(fn func(prev T) T) {
	var zero T
	prev := s.Read(zero)
	s.Write(fn(prev))
}

// Clear drops the persisted value and resets the cache to unloaded, so the
// next Read starts from its fallback again.
func (s *Slot[T]) Clear() {
	var zero T
	s.value = zero
	s.loaded = false
	s.vault.Delete(s.key)
}

func (s *Slot[T]) persist() {
	data, err := json.Marshal(s.value)
	if err != nil {
		s.vault.log.Warn("slot value not serializable, kept in memory only",
			zap.String("key", s.key), zap.Error(err))
		return
	}
	s.vault.Set(s.key, string(data))
}
