package models

import "time"

// LogEntry is a single committed study session
type LogEntry struct {
	ID        string  `json:"id" validate:"required"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"` // RFC3339 timestamp
	Hours     float64 `json:"hours" validate:"gte=0"`
	SubjectID string  `json:"subjectId" validate:"required"`
}

// Time parses the entry date. The zero time is returned for unparsable dates.
func (e LogEntry) Time() time.Time {
	t, err := time.Parse(time.RFC3339, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
