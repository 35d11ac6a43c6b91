package models

import "github.com/julianstephens/studylit/internal/constants"

// Subject is a fixed category of study. Subjects are compiled in and never persisted;
// log entries refer to them by ID.
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

var subjectCatalog = []Subject{
	{ID: "precalc", Name: "Pre-Calculus", Emoji: "📐"},
	{ID: "hlit", Name: "Honors Literature", Emoji: "📚"},
	{ID: "webdesign", Name: "Web Design", Emoji: "💻"},
	{ID: "japanese", Name: "Japanese", Emoji: "🏯"},
	{ID: "apworld", Name: "AP World History", Emoji: "🌍"},
	{ID: "deca", Name: "DECA", Emoji: "💼"},
	{ID: "chemistry", Name: "Chemistry", Emoji: "🧪"},
	{ID: "sat", Name: "SAT", Emoji: "📝"},
}

// Subjects returns the subject catalog in display order
func Subjects() []Subject {
	out := make([]Subject, len(subjectCatalog))
	copy(out, subjectCatalog)
	return out
}

// LookupSubject finds a catalog subject by ID
func LookupSubject(id string) (Subject, bool) {
	for _, s := range subjectCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}

// SubjectLabel renders a subject reference for display. Dangling references render as
// a placeholder instead of failing.
func SubjectLabel(id string) string {
	s, ok := LookupSubject(id)
	if !ok {
		return constants.UnknownSubjectLabel
	}
	return s.Emoji + " " + s.Name
}
