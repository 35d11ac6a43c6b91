package state

import (
	"reflect"
	"testing"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/storage"
)

func newStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	s := storage.NewMemoryStore()
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s
}

func TestLoadLog_Missing(t *testing.T) {
	s := newStore(t)
	got := LoadLog(s)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil log, got %v", got)
	}
}

func TestLoadLog_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "{{not json"},
		{"object instead of list", `{"id":"a"}`},
		{"null", "null"},
		{"negative hours", `[{"id":"a","date":"2024-01-01T10:00:00Z","hours":-1,"subjectId":"sat"}]`},
		{"missing id", `[{"date":"2024-01-01T10:00:00Z","hours":1,"subjectId":"sat"}]`},
		{"bad date", `[{"id":"a","date":"yesterday","hours":1,"subjectId":"sat"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			if err := s.Set(constants.KeyStudyLog, []byte(tt.data)); err != nil {
				t.Fatal(err)
			}
			if got := LoadLog(s); len(got) != 0 {
				t.Errorf("expected empty log, got %v", got)
			}
		})
	}
}

func TestLogRoundTrip(t *testing.T) {
	s := newStore(t)
	entries := []models.LogEntry{
		{ID: "1", Date: "2024-03-01T09:30:00Z", Hours: 2.5, SubjectID: "precalc"},
		{ID: "2", Date: "2024-03-01T18:00:00-05:00", Hours: 0, SubjectID: "retired-subject"},
	}
	if err := SaveLog(s, entries); err != nil {
		t.Fatalf("SaveLog failed: %v", err)
	}
	if got := LoadLog(s); !reflect.DeepEqual(got, entries) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", got, entries)
	}
}

func TestSaveLog_NilWritesEmptyList(t *testing.T) {
	s := newStore(t)
	if err := SaveLog(s, nil); err != nil {
		t.Fatal(err)
	}
	data, _ := s.Get(constants.KeyStudyLog)
	if string(data) != "[]" {
		t.Errorf("expected [], got %s", data)
	}
}

func TestLoadBadges_Missing(t *testing.T) {
	s := newStore(t)
	if got := LoadBadges(s); !reflect.DeepEqual(got, models.DefaultBadges()) {
		t.Errorf("expected defaults, got %v", got)
	}
}

func TestLoadBadges_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"garbage", "]["},
		{"null", "null"},
		{"unknown id", `[{"id":"badge9","hoursRequired":5,"dateEarned":""}]`},
		{"duplicate id", `[{"id":"badge1","hoursRequired":15},{"id":"badge1","hoursRequired":15}]`},
		{"bad date", `[{"id":"badge1","hoursRequired":15,"dateEarned":"last week"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			if err := s.Set(constants.KeyBadges, []byte(tt.data)); err != nil {
				t.Fatal(err)
			}
			if got := LoadBadges(s); !reflect.DeepEqual(got, models.DefaultBadges()) {
				t.Errorf("expected defaults, got %v", got)
			}
		})
	}
}

func TestLoadBadges_MergesOntoTemplates(t *testing.T) {
	s := newStore(t)
	data := `[{"id":"badge2","emoji":"?","name":"Renamed","hoursRequired":1,"dateEarned":"2024-02-02T12:00:00Z"}]`
	if err := s.Set(constants.KeyBadges, []byte(data)); err != nil {
		t.Fatal(err)
	}

	got := LoadBadges(s)
	want := models.DefaultBadges()
	want[1].DateEarned = "2024-02-02T12:00:00Z"
	if !reflect.DeepEqual(got, want) {
		t.Errorf("merge mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestBadgesRoundTrip(t *testing.T) {
	s := newStore(t)
	badges := models.DefaultBadges()
	badges[0].DateEarned = "2024-01-05T08:00:00Z"
	badges[1].DateEarned = "2024-01-05T08:00:00Z"

	if err := SaveBadges(s, badges); err != nil {
		t.Fatalf("SaveBadges failed: %v", err)
	}
	if got := LoadBadges(s); !reflect.DeepEqual(got, badges) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", got, badges)
	}
}
