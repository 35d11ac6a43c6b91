package models

import "time"

// Badge is an achievement definition merged with its award state.
// An empty DateEarned means the badge has not been earned yet.
type Badge struct {
	ID            string  `json:"id" validate:"required"`
	Emoji         string  `json:"emoji"`
	Name          string  `json:"name"`
	HoursRequired float64 `json:"hoursRequired" validate:"gt=0"`
	DateEarned    string  `json:"dateEarned" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"` // RFC3339 timestamp or empty
}

var badgeTemplates = []Badge{
	{ID: "badge1", Emoji: "🌟", Name: "Study Star", HoursRequired: 15},
	{ID: "badge2", Emoji: "🎯", Name: "Focus Master", HoursRequired: 30},
	{ID: "badge3", Emoji: "⚡", Name: "Power Learner", HoursRequired: 50},
	{ID: "badge4", Emoji: "🏆", Name: "Study Champion", HoursRequired: 100},
	{ID: "badge5", Emoji: "👑", Name: "Knowledge King", HoursRequired: 200},
}

// DefaultBadges returns a fresh, unearned copy of the badge templates in threshold order
func DefaultBadges() []Badge {
	out := make([]Badge, len(badgeTemplates))
	copy(out, badgeTemplates)
	return out
}

// Earned reports whether the badge has been awarded
func (b Badge) Earned() bool {
	return b.DateEarned != ""
}

// EarnedAt parses DateEarned. ok is false for unearned badges or unparsable dates.
func (b Badge) EarnedAt() (time.Time, bool) {
	if !b.Earned() {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, b.DateEarned)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
