// Package aggregator derives hour totals from the study log. Every function is a pure
// function of its inputs; nothing is cached between calls.
package aggregator

import (
	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

// SubjectTotal pairs a catalog subject with the hours logged against it
type SubjectTotal struct {
	Subject models.Subject
	Hours   float64
}

// TotalHours sums the hours of every entry, including entries whose subject is unknown
func TotalHours(log []models.LogEntry) float64 {
	var total float64
	for _, entry := range log {
		total += entry.Hours
	}
	return total
}

// SubjectTotals returns the hours logged per catalog subject. Every subject is present,
// subjects without entries report 0, and entries referencing subjects outside the
// catalog are excluded from every total.
func SubjectTotals(log []models.LogEntry, subjects []models.Subject) map[string]float64 {
	totals := make(map[string]float64, len(subjects))
	for _, s := range subjects {
		totals[s.ID] = 0
	}
	for _, entry := range log {
		if _, ok := totals[entry.SubjectID]; ok {
			totals[entry.SubjectID] += entry.Hours
		}
	}
	return totals
}

// Breakdown returns the per-subject totals in catalog order
func Breakdown(log []models.LogEntry, subjects []models.Subject) []SubjectTotal {
	totals := SubjectTotals(log, subjects)
	out := make([]SubjectTotal, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, SubjectTotal{Subject: s, Hours: totals[s.ID]})
	}
	return out
}

// HoursOn sums the hours of entries dated on the given day (YYYY-MM-DD, local time).
// Entries with unparsable dates are skipped.
func HoursOn(log []models.LogEntry, day string) float64 {
	var total float64
	for _, entry := range log {
		t := entry.Time()
		if t.IsZero() {
			continue
		}
		if t.Local().Format(constants.DateFormat) == day {
			total += entry.Hours
		}
	}
	return total
}
