package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type document struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

// JSONStore keeps every record in a single JSON file, rewritten on each Set
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Records == nil {
		doc.Records = make(map[string]json.RawMessage)
	}
	s.doc = doc

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	// Marshal keeps every record compact; indenting would rewrite the stored bytes.
	data, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a sibling file first so a crash never leaves a truncated document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}

	raw, ok := s.doc.Records[key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Set stores value under key. Values that are not valid JSON are stored as JSON strings
// so the document itself always stays parseable.
func (s *JSONStore) Set(key string, value []byte) error {
	if s.doc == nil {
		return ErrNotLoaded
	}

	var raw bytes.Buffer
	if json.Valid(value) {
		if err := json.Compact(&raw, value); err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
	} else {
		quoted, err := json.Marshal(string(value))
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		raw.Write(quoted)
	}

	s.doc.Records[key] = json.RawMessage(raw.Bytes())
	return s.save()
}

func (s *JSONStore) Keys() ([]string, error) {
	if s.doc == nil {
		return nil, ErrNotLoaded
	}

	keys := make([]string, 0, len(s.doc.Records))
	for k := range s.doc.Records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// JSONStore is not safe for concurrent use, and running multiple studylit processes
// against the same file may lose writes.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
