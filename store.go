package premiumo

import (
	"encoding/json"
	"errors"
	"log"
)

// Storage keys. The backup key is owned exclusively by the Store and always
// lags one write behind the primary, a single-generation undo buffer.
const (
	KeyTrades       = "premiumo-plus-trades"
	KeyTradesBackup = "premiumo-plus-trades-backup"
	KeyPreferences  = "premiumo-plus-preferences"
)

// Store reads and writes the trade payload on a KV backend, with backup
// based recovery. A Store with a nil KV models an unavailable storage
// medium: every load returns the default payload and every save reports
// failure, without logging. That is an expected condition, not an error.
type Store struct {
	kv KV
}

// NewStore returns a Store on the given backend. kv may be nil.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// LoadPayload reads and validates the persisted payload. An absent or empty
// primary key yields the default payload. A primary key that is not valid
// JSON is treated as corruption: the backup key is tried, and failing that
// the default payload is returned. Whatever was read is passed through
// ValidatePayload, so the result is always well formed.
func (s *Store) LoadPayload() StoragePayload {
	if s == nil || s.kv == nil {
		return DefaultPayload()
	}
	raw, ok := s.kv.Get(KeyTrades)
	if !ok || raw == "" {
		return DefaultPayload()
	}
	if json.Valid([]byte(raw)) {
		return ValidatePayload([]byte(raw))
	}
	backup, ok := s.kv.Get(KeyTradesBackup)
	if ok && backup != "" && json.Valid([]byte(backup)) {
		return ValidatePayload([]byte(backup))
	}
	return DefaultPayload()
}

// SavePayload persists the payload, rotating the current primary value into
// the backup key first. It reports false when the write did not succeed;
// callers must treat that as "not guaranteed persisted". Failed writes are
// not retried or queued.
func (s *Store) SavePayload(p StoragePayload) bool {
	if s == nil || s.kv == nil {
		return false
	}
	if current, ok := s.kv.Get(KeyTrades); ok {
		// Best effort: a failed backup rotation must not block the save.
		if err := s.kv.Set(KeyTradesBackup, current); err != nil {
			log.Printf("warning: could not rotate trade backup: %v", err)
		}
	}
	if p.Trades == nil {
		p.Trades = []Trade{}
	}
	data, err := json.Marshal(StoragePayload{V: p.V, Trades: p.Trades})
	if err != nil {
		return false
	}
	return s.kv.Set(KeyTrades, string(data)) == nil
}

// ClearAll removes every stored key: trades, their backup, and preferences.
func (s *Store) ClearAll() error {
	if s == nil || s.kv == nil {
		return nil
	}
	return errors.Join(
		s.kv.Delete(KeyTrades),
		s.kv.Delete(KeyTradesBackup),
		s.kv.Delete(KeyPreferences),
	)
}
