package badges

import (
	"time"

	"github.com/julianstephens/studylit/internal/models"
)

// Engine awards badges when the total logged hours reach their thresholds.
// Awards are one-way: an earned badge keeps its DateEarned forever.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the clock used to stamp award dates
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates a badge engine
func New(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate walks the badges in catalog order and stamps every unearned badge whose
// threshold is met by totalHours. It returns the full replacement badge collection and
// the badges that became earned during this pass. The input slice is not modified.
//
// All awards from one pass share a single timestamp and are returned together so the
// caller can persist them as one write.
func (e *Engine) Evaluate(totalHours float64, current []models.Badge) ([]models.Badge, []models.Badge) {
	updated := make([]models.Badge, len(current))
	copy(updated, current)

	var newlyEarned []models.Badge
	stamp := ""
	for i, badge := range updated {
		if badge.Earned() || totalHours < badge.HoursRequired {
			continue
		}
		if stamp == "" {
			stamp = e.now().UTC().Format(time.RFC3339)
		}
		badge.DateEarned = stamp
		updated[i] = badge
		newlyEarned = append(newlyEarned, badge)
	}

	return updated, newlyEarned
}

// Next returns the lowest-threshold unearned badge and the hours still needed to earn it.
// ok is false once every badge has been earned.
func (e *Engine) Next(totalHours float64, current []models.Badge) (next models.Badge, remaining float64, ok bool) {
	for _, badge := range current {
		if badge.Earned() {
			continue
		}
		if !ok || badge.HoursRequired < next.HoursRequired {
			next = badge
			ok = true
		}
	}
	if !ok {
		return models.Badge{}, 0, false
	}
	remaining = next.HoursRequired - totalHours
	if remaining < 0 {
		remaining = 0
	}
	return next, remaining, true
}

// EarnedCount returns how many badges have been awarded
func EarnedCount(current []models.Badge) int {
	n := 0
	for _, b := range current {
		if b.Earned() {
			n++
		}
	}
	return n
}
