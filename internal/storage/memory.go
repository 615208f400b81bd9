package storage

// MemStore is an in-memory Store used by tests and by sessions running
// with persistence disabled.
type MemStore struct {
	values map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}
