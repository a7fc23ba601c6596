package premiumo

// KV is the small synchronous key-value port the persistence layer sits on.
// It is sized for small-object access so the same store logic can run atop
// different embedded backends (a plain directory, SQLite, an in-memory map)
// without touching the schema or the repository.
type KV interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool)
	// Set writes the value for key, creating it if needed.
	Set(key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryKV is a map-backed KV for tests and ephemeral runs.
type MemoryKV struct {
	values map[string]string
}

// NewMemoryKV returns an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.values, key)
	return nil
}

var _ KV = (*MemoryKV)(nil)
