package tracker

import (
	"slices"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
)

// LogStore is the ordered collection of committed sessions. Every mutation is written
// through to the provider before it returns; when the write fails the in-memory log is
// restored so memory and storage never disagree.
type LogStore struct {
	provider storage.Provider
	entries  []models.LogEntry
}

func NewLogStore(p storage.Provider, entries []models.LogEntry) *LogStore {
	return &LogStore{
		provider: p,
		entries:  slices.Clone(entries),
	}
}

// Append adds entries to the end of the log and persists the full log once
func (s *LogStore) Append(entries ...models.LogEntry) error {
	prev := s.entries
	next := make([]models.LogEntry, 0, len(prev)+len(entries))
	next = append(next, prev...)
	next = append(next, entries...)

	s.entries = next
	if err := state.SaveLog(s.provider, s.entries); err != nil {
		s.entries = prev
		return err
	}
	return nil
}

// Remove drops every entry with the given id and persists. An unknown id still persists
// the unchanged log and reports zero removed.
func (s *LogStore) Remove(id string) (int, error) {
	prev := s.entries
	next := slices.DeleteFunc(slices.Clone(prev), func(e models.LogEntry) bool {
		return e.ID == id
	})

	s.entries = next
	if err := state.SaveLog(s.provider, s.entries); err != nil {
		s.entries = prev
		return 0, err
	}
	return len(prev) - len(next), nil
}

// All returns a copy of the log in insertion order
func (s *LogStore) All() []models.LogEntry {
	return slices.Clone(s.entries)
}

// Recent returns up to n entries, newest first. n <= 0 returns every entry.
func (s *LogStore) Recent(n int) []models.LogEntry {
	out := slices.Clone(s.entries)
	slices.Reverse(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func (s *LogStore) Find(id string) (models.LogEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.LogEntry{}, false
}

func (s *LogStore) Len() int {
	return len(s.entries)
}
