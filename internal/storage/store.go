// Package storage provides the namespaced key-value persistence the
// game records live under. Each record (scores, settings, tutorial,
// hints) is stored under its own key. A failed backend degrades to the
// in-memory store so the game stays playable without persistence.
package storage

// Store is a key-value store for persisted game records.
type Store interface {
	// Get returns the value for key. The second return value is false
	// when the key has never been written.
	Get(key string) ([]byte, bool, error)
	// Put writes the value for key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys returns all keys with a stored value.
	Keys() ([]string, error)
}

// MemStore is an in-memory Store, used in tests and as the fallback
// when the file backend is unavailable.
type MemStore struct {
	values map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (m *MemStore) Get(key string) ([]byte, bool, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemStore) Put(key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

func (m *MemStore) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func (m *MemStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys, nil
}
