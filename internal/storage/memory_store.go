package storage

import "sort"

// MemoryStore is a volatile Provider used by tests and dry runs
type MemoryStore struct {
	records map[string][]byte
	writes  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error {
	s.records = make(map[string][]byte)
	return nil
}

func (s *MemoryStore) Load() error {
	if s.records == nil {
		s.records = make(map[string][]byte)
	}
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	if s.records == nil {
		return nil, ErrNotLoaded
	}
	v, ok := s.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	if s.records == nil {
		return ErrNotLoaded
	}
	s.records[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	if s.records == nil {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Writes reports how many Set calls have succeeded
func (s *MemoryStore) Writes() int {
	return s.writes
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
