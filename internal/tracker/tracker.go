// Package tracker wires the log store, aggregator and badge engine into one synchronous
// pipeline: mutate the log, recompute the total, evaluate badges, persist, notify.
package tracker

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/aggregator"
	"github.com/julianstephens/studylit/internal/badges"
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/logger"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/state"
	"github.com/julianstephens/studylit/internal/storage"
)

var (
	ErrInvalidHours = errors.New("hours must be a finite number >= 0")
	ErrEmptySubject = errors.New("subject id cannot be empty")
	// ErrBadgesNotSaved means the log change was persisted but the award write was not;
	// the next evaluation retries it
	ErrBadgesNotSaved = errors.New("badges could not be saved")
)

type Tracker struct {
	mu sync.Mutex

	provider storage.Provider
	log      *LogStore
	badges   []models.Badge
	engine   *badges.Engine
	notifier Notifier
	subjects []models.Subject

	now   func() time.Time
	newID func() string
}

type Option func(*Tracker)

// WithClock sets the clock used for entry dates and badge award dates
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithIDGenerator replaces the uuid generator used for new entries
func WithIDGenerator(fn func() string) Option {
	return func(t *Tracker) {
		t.newID = fn
	}
}

func WithNotifier(n Notifier) Option {
	return func(t *Tracker) {
		t.notifier = n
	}
}

// New loads the log and badges from p. Loading never fails; unreadable data starts the
// tracker from an empty log and unearned badges.
func New(p storage.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		provider: p,
		subjects: models.Subjects(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.engine = badges.New(badges.WithClock(t.now))
	t.log = NewLogStore(p, state.LoadLog(p))
	t.badges = state.LoadBadges(p)

	logger.Debug("Tracker loaded", "entries", t.log.Len(), "earned", badges.EarnedCount(t.badges))
	return t
}

// RecordSession appends a new session and returns the badges it earned
func (t *Tracker) RecordSession(subjectID string, hours float64) (models.LogEntry, []models.Badge, error) {
	if subjectID == "" {
		return models.LogEntry{}, nil, ErrEmptySubject
	}
	if !validHours(hours) {
		return models.LogEntry{}, nil, ErrInvalidHours
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	entry := models.LogEntry{
		ID:        t.newID(),
		Date:      t.now().UTC().Format(time.RFC3339),
		Hours:     hours,
		SubjectID: subjectID,
	}
	if err := t.log.Append(entry); err != nil {
		return models.LogEntry{}, nil, err
	}
	logger.Info("Session recorded", "id", entry.ID, "subject", subjectID, "hours", hours)

	earned, err := t.evaluate()
	return entry, earned, err
}

// DeleteSession removes the session with the given id and re-runs evaluation. Badges are
// never revoked, so the returned slice is normally empty.
func (t *Tracker) DeleteSession(id string) ([]models.Badge, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed, err := t.log.Remove(id)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		logger.Debug("Delete matched no session", "id", id)
	} else {
		logger.Info("Session deleted", "id", id)
	}

	return t.evaluate()
}

// Import appends a batch of sessions with a single log write and a single evaluation.
// Missing ids and dates are filled in; entries that still fail validation abort the
// whole batch.
func (t *Tracker) Import(entries []models.LogEntry) ([]models.Badge, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	batch := make([]models.LogEntry, 0, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			e.ID = t.newID()
		}
		if e.Date == "" {
			e.Date = t.now().UTC().Format(time.RFC3339)
		}
		if !validHours(e.Hours) {
			return nil, fmt.Errorf("entry %d: %w", i, ErrInvalidHours)
		}
		if err := state.ValidateEntry(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		batch = append(batch, e)
	}
	if len(batch) == 0 {
		return nil, nil
	}

	if err := t.log.Append(batch...); err != nil {
		return nil, err
	}
	logger.Info("Sessions imported", "count", len(batch))

	return t.evaluate()
}

// Evaluate re-checks badges against the current log without changing it
func (t *Tracker) Evaluate() ([]models.Badge, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.evaluate()
}

// evaluate must be called with t.mu held. The badge collection is replaced and
// persisted once per pass, however many thresholds were crossed.
func (t *Tracker) evaluate() ([]models.Badge, error) {
	total := aggregator.TotalHours(t.log.entries)
	updated, earned := t.engine.Evaluate(total, t.badges)
	if len(earned) == 0 {
		return nil, nil
	}

	if err := state.SaveBadges(t.provider, updated); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadgesNotSaved, err)
	}
	t.badges = updated

	for _, b := range earned {
		logger.Info("Badge earned", "badge", b.ID, "total", total)
		if t.notifier == nil {
			continue
		}
		if err := t.notifier.Notify(b); err != nil {
			logger.Warn("Failed to deliver badge notification", "badge", b.ID, "error", err)
		}
	}
	return earned, nil
}

func validHours(h float64) bool {
	return h >= 0 && !math.IsInf(h, 0) && !math.IsNaN(h)
}

func (t *Tracker) Entries() []models.LogEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.log.All()
}

func (t *Tracker) Recent(n int) []models.LogEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.log.Recent(n)
}

func (t *Tracker) Find(id string) (models.LogEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.log.Find(id)
}

func (t *Tracker) TotalHours() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return aggregator.TotalHours(t.log.entries)
}

func (t *Tracker) SubjectTotals() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return aggregator.SubjectTotals(t.log.entries, t.subjects)
}

func (t *Tracker) Breakdown() []aggregator.SubjectTotal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return aggregator.Breakdown(t.log.entries, t.subjects)
}

// HoursToday sums today's sessions in local time
func (t *Tracker) HoursToday() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return aggregator.HoursOn(t.log.entries, t.now().Local().Format(constants.DateFormat))
}

func (t *Tracker) Badges() []models.Badge {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.badges)
}

// NextBadge returns the next badge to earn and the hours remaining
func (t *Tracker) NextBadge() (models.Badge, float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.Next(aggregator.TotalHours(t.log.entries), t.badges)
}
