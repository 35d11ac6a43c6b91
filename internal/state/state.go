// Package state maps the study log and badge list onto storage keys.
//
// Loading never fails: a missing key, a blob that does not parse, or a blob that fails
// validation yields the empty log or the default badges, and the problem is logged.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// LoadLog reads the study log. Any failure produces an empty log.
func LoadLog(p storage.Provider) []models.LogEntry {
	data, err := p.Get(constants.KeyStudyLog)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read study log, starting empty", "error", err)
		}
		return []models.LogEntry{}
	}

	entries, err := DecodeLog(data)
	if err != nil {
		logger.Warn("Discarding unreadable study log", "error", err)
		return []models.LogEntry{}
	}
	return entries
}

// DecodeLog parses and validates a serialized log
func DecodeLog(data []byte) ([]models.LogEntry, error) {
	var entries []models.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid study log JSON: %w", err)
	}
	if entries == nil {
		return nil, errors.New("study log is not a list")
	}
	for i := range entries {
		if err := ValidateEntry(entries[i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return entries, nil
}

// ValidateEntry checks a single log entry against the persisted schema
func ValidateEntry(e models.LogEntry) error {
	return getValidator().Struct(e)
}

// LoadBadges reads the badge list and merges it onto the templates. Any failure produces
// the default, unearned badges.
func LoadBadges(p storage.Provider) []models.Badge {
	data, err := p.Get(constants.KeyBadges)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read badges, using defaults", "error", err)
		}
		return models.DefaultBadges()
	}

	badges, err := DecodeBadges(data)
	if err != nil {
		logger.Warn("Discarding unreadable badges", "error", err)
		return models.DefaultBadges()
	}
	return badges
}

// DecodeBadges parses and validates a serialized badge list. The result always holds the
// full template set in threshold order; only DateEarned is taken from data.
func DecodeBadges(data []byte) ([]models.Badge, error) {
	var stored []models.Badge
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("invalid badges JSON: %w", err)
	}
	if stored == nil {
		return nil, errors.New("badges is not a list")
	}

	earned := make(map[string]string, len(stored))
	for i, b := range stored {
		if err := getValidator().Struct(b); err != nil {
			return nil, fmt.Errorf("badge %d: %w", i, err)
		}
		if _, dup := earned[b.ID]; dup {
			return nil, fmt.Errorf("duplicate badge id %q", b.ID)
		}
		earned[b.ID] = b.DateEarned
	}

	out := models.DefaultBadges()
	known := make(map[string]bool, len(out))
	for i := range out {
		known[out[i].ID] = true
		out[i].DateEarned = earned[out[i].ID]
	}
	for id := range earned {
		if !known[id] {
			return nil, fmt.Errorf("unknown badge id %q", id)
		}
	}
	return out, nil
}

func SaveLog(p storage.Provider, entries []models.LogEntry) error {
	if entries == nil {
		entries = []models.LogEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode study log: %w", err)
	}
	if err := p.Set(constants.KeyStudyLog, data); err != nil {
		return fmt.Errorf("failed to save study log: %w", err)
	}
	return nil
}

func SaveBadges(p storage.Provider, badges []models.Badge) error {
	data, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("failed to encode badges: %w", err)
	}
	if err := p.Set(constants.KeyBadges, data); err != nil {
		return fmt.Errorf("failed to save badges: %w", err)
	}
	return nil
}
